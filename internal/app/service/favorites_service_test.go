package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFavoritesService_ToggleTwice(t *testing.T) {
	favorites := NewFavoritesService()

	assert.True(t, favorites.Toggle("5"))
	assert.True(t, favorites.IsFavorite("5"))

	assert.False(t, favorites.Toggle("5"))
	assert.False(t, favorites.IsFavorite("5"))
	assert.Equal(t, 0, favorites.Count())
}

func TestFavoritesService_ListIsSorted(t *testing.T) {
	favorites := NewFavoritesService()
	favorites.Toggle("4")
	favorites.Toggle("1")
	favorites.Toggle("2")

	assert.Equal(t, []string{"1", "2", "4"}, favorites.List())
	assert.Equal(t, 3, favorites.Count())
	assert.False(t, favorites.IsFavorite("3"))
}
