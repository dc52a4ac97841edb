package controller

import (
	"net/http"
	"testing"

	"github.com/citra/storefront/internal/app/service"
	"github.com/stretchr/testify/assert"
)

func TestFavoritesController_Toggle(t *testing.T) {
	storefront, router := setupControllerTest(t, service.StorefrontOptions{})
	ctrl := NewFavoritesController(storefront)
	sid := storefront.NewSession().ID

	favorites := router.Group("/favorites", withSession(sid))
	favorites.GET("", ctrl.GetFavorites)
	favorites.GET("/:productId", ctrl.IsFavorite)
	favorites.POST("/:productId", ctrl.ToggleFavorite)

	w := doRequest(router, http.MethodPost, "/favorites/4", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["favorite"])

	w = doRequest(router, http.MethodGet, "/favorites/4", nil)
	assert.Equal(t, true, decode(t, w)["favorite"])

	w = doRequest(router, http.MethodGet, "/favorites", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"4"}, decode(t, w)["productIds"])

	w = doRequest(router, http.MethodPost, "/favorites/4", nil)
	assert.Equal(t, false, decode(t, w)["favorite"])
}
