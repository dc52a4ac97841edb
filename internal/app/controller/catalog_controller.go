package controller

import (
	"net/http"

	"github.com/citra/storefront/internal/app/service"
	"github.com/citra/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog service.CatalogService
}

func NewCatalogController(catalog service.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// GetCategories returns the whole taxonomy tree
// GET /api/v1/categories
func (ctrl *CatalogController) GetCategories(c *gin.Context) {
	categories := ctrl.catalog.Categories()
	c.JSON(http.StatusOK, gin.H{
		"categories": categories,
		"count":      len(categories),
	})
}

// GetCategory returns one category with its sub-categories
// GET /api/v1/categories/:categoryId
func (ctrl *CatalogController) GetCategory(c *gin.Context) {
	category, err := ctrl.catalog.Category(c.Param("categoryId"))
	if err != nil {
		respondError(c, "Category not found", err, map[string]interface{}{
			"category_id": c.Param("categoryId"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"category": category,
	})
}

// GetSubCategoryOptions lists sub-categories for product forms
// GET /api/v1/categories/:categoryId/subcategories
func (ctrl *CatalogController) GetSubCategoryOptions(c *gin.Context) {
	options, err := ctrl.catalog.SubCategoryOptions(c.Param("categoryId"))
	if err != nil {
		respondError(c, "Category not found", err, map[string]interface{}{
			"category_id": c.Param("categoryId"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"subCategories": options,
	})
}

// GetBanners
// GET /api/v1/banners
func (ctrl *CatalogController) GetBanners(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"banners": ctrl.catalog.Banners(),
	})
}

// GetHome returns the banners, categories and product sections of the home page
// GET /api/v1/home
func (ctrl *CatalogController) GetHome(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	home := ctrl.catalog.Home()

	log.Debug("Home page assembled", map[string]interface{}{
		"new_arrivals": len(home.NewArrivals),
		"bestsellers":  len(home.Bestsellers),
		"best_deals":   len(home.BestDeals),
	})
	c.JSON(http.StatusOK, home)
}

// GetProduct
// GET /api/v1/products/:id
func (ctrl *CatalogController) GetProduct(c *gin.Context) {
	product, err := ctrl.catalog.Product(c.Param("id"))
	if err != nil {
		respondError(c, "Product not found", err, map[string]interface{}{
			"product_id": c.Param("id"),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product":         product,
		"discountPercent": product.DiscountPercent(),
	})
}
