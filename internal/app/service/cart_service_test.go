package service

import (
	"testing"

	"github.com/citra/storefront/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCartServiceTest(t *testing.T) (CartService, model.Product, model.Product) {
	t.Helper()
	products := catalogProducts()
	return NewCartService(), products[0], products[1]
}

func TestCartService_AddTwice(t *testing.T) {
	cart, lipstick, _ := setupCartServiceTest(t)

	cart.Add(lipstick)
	line := cart.Add(lipstick)

	assert.Equal(t, 2, line.Quantity)
	assert.Len(t, cart.Lines(), 1)
	assert.Equal(t, int64(178000), cart.Total())
	assert.Equal(t, 2, cart.Count())
}

func TestCartService_TotalUsesSnapshotPrice(t *testing.T) {
	cart, lipstick, foundation := setupCartServiceTest(t)

	cart.Add(lipstick)
	cart.Add(foundation)

	lipstick.Price = 1
	lipstick.Name = "Renamed"
	cart.Add(lipstick)

	line, ok := cart.Line("1")
	require.True(t, ok)
	assert.Equal(t, "ROSE ALL DAY Liquid Lipstick", line.Snapshot.Name)
	assert.Equal(t, int64(89000*2+156000), cart.Total())
	assert.Equal(t, 3, cart.Count())
}

func TestCartService_AdjustQuantity(t *testing.T) {
	cart, lipstick, _ := setupCartServiceTest(t)
	cart.Add(lipstick)

	line, err := cart.AdjustQuantity("1", 4)
	require.NoError(t, err)
	assert.Equal(t, 5, line.Quantity)

	line, err = cart.AdjustQuantity("1", -10)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity, "never below 1")
	assert.Len(t, cart.Lines(), 1)

	_, err = cart.AdjustQuantity("missing", 1)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestCartService_SetQuantity(t *testing.T) {
	cart, lipstick, _ := setupCartServiceTest(t)
	cart.Add(lipstick)

	require.NoError(t, cart.SetQuantity("1", 7))
	assert.Equal(t, 7, cart.Count())

	require.NoError(t, cart.SetQuantity("1", 0))
	assert.Empty(t, cart.Lines())
	assert.Equal(t, int64(0), cart.Total())

	err := cart.SetQuantity("1", 3)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Empty(t, cart.Lines(), "set on an absent line never inserts")

	assert.NoError(t, cart.SetQuantity("missing", -1))
}

func TestCartService_RemoveAndClear(t *testing.T) {
	cart, lipstick, foundation := setupCartServiceTest(t)
	cart.Add(lipstick)
	cart.Add(foundation)

	assert.True(t, cart.Remove("1"))
	assert.False(t, cart.Remove("1"))
	assert.Equal(t, []string{"2"}, []string{cart.Lines()[0].ProductID})

	cart.Clear()
	assert.Equal(t, 0, cart.Count())
	assert.Empty(t, cart.Lines())
}

func TestCartService_LinesIsACopy(t *testing.T) {
	cart, lipstick, _ := setupCartServiceTest(t)
	cart.Add(lipstick)

	lines := cart.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, cart.Count())
}
