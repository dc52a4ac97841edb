package controller

import (
	"net/http"

	"github.com/citra/storefront/internal/app/service"
	"github.com/gin-gonic/gin"
)

type FavoritesController struct {
	shopper service.ShopperService
}

func NewFavoritesController(shopper service.ShopperService) *FavoritesController {
	return &FavoritesController{shopper: shopper}
}

// GetFavorites
// GET /api/v1/sessions/:sid/favorites
func (ctrl *FavoritesController) GetFavorites(c *gin.Context) {
	ids, err := ctrl.shopper.Favorites(sessionID(c))
	if err != nil {
		respondError(c, "Failed to fetch favorites", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"productIds": ids,
		"count":      len(ids),
	})
}

// IsFavorite
// GET /api/v1/sessions/:sid/favorites/:productId
func (ctrl *FavoritesController) IsFavorite(c *gin.Context) {
	productID := c.Param("productId")
	fav, err := ctrl.shopper.IsFavorite(sessionID(c), productID)
	if err != nil {
		respondError(c, "Failed to check favorite", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"productId": productID,
		"favorite":  fav,
	})
}

// ToggleFavorite adds or removes the product
// POST /api/v1/sessions/:sid/favorites/:productId
func (ctrl *FavoritesController) ToggleFavorite(c *gin.Context) {
	productID := c.Param("productId")
	fav, err := ctrl.shopper.ToggleFavorite(sessionID(c), productID)
	if err != nil {
		respondError(c, "Failed to toggle favorite", err, map[string]interface{}{
			"product_id": productID,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"productId": productID,
		"favorite":  fav,
	})
}
