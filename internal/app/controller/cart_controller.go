package controller

import (
	"net/http"

	"github.com/citra/storefront/internal/app/service"
	"github.com/citra/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	shopper service.ShopperService
}

func NewCartController(shopper service.ShopperService) *CartController {
	return &CartController{shopper: shopper}
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// SetQuantityRequest uses a pointer so an explicit 0 is distinguishable from a missing field
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type AdjustQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

// GetCart returns lines, count and total
// GET /api/v1/sessions/:sid/cart
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart, err := ctrl.shopper.Cart(sessionID(c))
	if err != nil {
		respondError(c, "Failed to fetch cart", err, nil)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AddToCart adds one unit of a product
// POST /api/v1/sessions/:sid/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	log.Debug("Adding item to cart", map[string]interface{}{
		"session_id": sessionID(c),
		"product_id": req.ProductID,
	})

	cart, err := ctrl.shopper.AddToCart(sessionID(c), req.ProductID)
	if err != nil {
		respondError(c, "Failed to add item to cart", err, map[string]interface{}{
			"session_id": sessionID(c),
			"product_id": req.ProductID,
		})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// SetQuantity sets an existing line; 0 or less removes it
// PUT /api/v1/sessions/:sid/cart/:productId
func (ctrl *CartController) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	productID := c.Param("productId")
	cart, err := ctrl.shopper.SetCartQuantity(sessionID(c), productID, *req.Quantity)
	if err != nil {
		respondError(c, "Failed to set cart quantity", err, map[string]interface{}{
			"session_id": sessionID(c),
			"product_id": productID,
			"quantity":   *req.Quantity,
		})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// AdjustQuantity changes a line by delta, never below 1
// PATCH /api/v1/sessions/:sid/cart/:productId
func (ctrl *CartController) AdjustQuantity(c *gin.Context) {
	var req AdjustQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	productID := c.Param("productId")
	cart, err := ctrl.shopper.AdjustCartQuantity(sessionID(c), productID, *req.Delta)
	if err != nil {
		respondError(c, "Failed to adjust cart quantity", err, map[string]interface{}{
			"session_id": sessionID(c),
			"product_id": productID,
			"delta":      *req.Delta,
		})
		return
	}
	c.JSON(http.StatusOK, cart)
}

// RemoveFromCart
// DELETE /api/v1/sessions/:sid/cart/:productId
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	cart, err := ctrl.shopper.RemoveFromCart(sessionID(c), c.Param("productId"))
	if err != nil {
		respondError(c, "Failed to remove cart item", err, nil)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// ClearCart
// DELETE /api/v1/sessions/:sid/cart
func (ctrl *CartController) ClearCart(c *gin.Context) {
	cart, err := ctrl.shopper.ClearCart(sessionID(c))
	if err != nil {
		respondError(c, "Failed to clear cart", err, nil)
		return
	}
	c.JSON(http.StatusOK, cart)
}
