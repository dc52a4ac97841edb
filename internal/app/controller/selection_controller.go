package controller

import (
	"net/http"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/app/service"
	"github.com/citra/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SelectionController struct {
	shopper service.ShopperService
}

func NewSelectionController(shopper service.ShopperService) *SelectionController {
	return &SelectionController{shopper: shopper}
}

// SelectRequest carries one level of the taxonomy; re-sending the selected id toggles it off
type SelectRequest struct {
	ID string `json:"id"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

type NavigateRequest struct {
	CategoryID       string `json:"categoryId"`
	SubCategoryID    string `json:"subCategoryId"`
	SubSubCategoryID string `json:"subSubCategoryId"`
}

// GetSelection
// GET /api/v1/sessions/:sid/selection
func (ctrl *SelectionController) GetSelection(c *gin.Context) {
	sel, err := ctrl.shopper.Selection(sessionID(c))
	if err != nil {
		respondError(c, "Failed to fetch selection", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

// Navigate jumps to a full path
// PUT /api/v1/sessions/:sid/selection
func (ctrl *SelectionController) Navigate(c *gin.Context) {
	var req NavigateRequest
	if !bindJSON(c, &req) {
		return
	}
	path := model.CategoryPath{
		CategoryID:       req.CategoryID,
		SubCategoryID:    req.SubCategoryID,
		SubSubCategoryID: req.SubSubCategoryID,
	}
	ctrl.respond(c, "navigate", path.String())(ctrl.shopper.Navigate(sessionID(c), path))
}

// ResetSelection clears every level and the search text
// DELETE /api/v1/sessions/:sid/selection
func (ctrl *SelectionController) ResetSelection(c *gin.Context) {
	ctrl.respond(c, "reset", "")(ctrl.shopper.ResetSelection(sessionID(c)))
}

// SelectCategory
// PUT /api/v1/sessions/:sid/selection/category
func (ctrl *SelectionController) SelectCategory(c *gin.Context) {
	var req SelectRequest
	if !bindJSON(c, &req) {
		return
	}
	ctrl.respond(c, "select category", req.ID)(ctrl.shopper.SelectCategory(sessionID(c), req.ID))
}

// SelectSubCategory
// PUT /api/v1/sessions/:sid/selection/subcategory
func (ctrl *SelectionController) SelectSubCategory(c *gin.Context) {
	var req SelectRequest
	if !bindJSON(c, &req) {
		return
	}
	ctrl.respond(c, "select sub-category", req.ID)(ctrl.shopper.SelectSubCategory(sessionID(c), req.ID))
}

// SelectSubSubCategory
// PUT /api/v1/sessions/:sid/selection/subsubcategory
func (ctrl *SelectionController) SelectSubSubCategory(c *gin.Context) {
	var req SelectRequest
	if !bindJSON(c, &req) {
		return
	}
	ctrl.respond(c, "select sub-sub-category", req.ID)(ctrl.shopper.SelectSubSubCategory(sessionID(c), req.ID))
}

// SetSearch
// PUT /api/v1/sessions/:sid/selection/search
func (ctrl *SelectionController) SetSearch(c *gin.Context) {
	var req SearchRequest
	if !bindJSON(c, &req) {
		return
	}
	ctrl.respond(c, "search", req.Query)(ctrl.shopper.SetSearch(sessionID(c), req.Query))
}

func (ctrl *SelectionController) respond(c *gin.Context, action, target string) func(model.Selection, error) {
	return func(sel model.Selection, err error) {
		if err != nil {
			respondError(c, "Selection change rejected", err, map[string]interface{}{
				"session_id": sessionID(c),
				"action":     action,
				"target":     target,
			})
			return
		}
		middleware.GetLoggerFromContext(c).Debug("Selection changed", map[string]interface{}{
			"session_id": sessionID(c),
			"action":     action,
			"selection":  sel.Path().String(),
		})
		c.JSON(http.StatusOK, gin.H{"selection": sel})
	}
}

// ListProducts is the filtered listing for the current selection
// GET /api/v1/sessions/:sid/products
func (ctrl *SelectionController) ListProducts(c *gin.Context) {
	products, err := ctrl.shopper.Products(sessionID(c))
	if err != nil {
		respondError(c, "Failed to filter products", err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}
