package router

import (
	"net/http"

	"github.com/citra/storefront/config"
	"github.com/citra/storefront/internal/app/controller"
	"github.com/citra/storefront/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type Router struct {
	sessionController   *controller.SessionController
	catalogController   *controller.CatalogController
	selectionController *controller.SelectionController
	cartController      *controller.CartController
	favoritesController *controller.FavoritesController
	adminController     *controller.AdminController
	sessionMiddleware   *middleware.SessionMiddleware
	config              *config.Config
}

func NewRouter(
	sessionController *controller.SessionController,
	catalogController *controller.CatalogController,
	selectionController *controller.SelectionController,
	cartController *controller.CartController,
	favoritesController *controller.FavoritesController,
	adminController *controller.AdminController,
	sessionMiddleware *middleware.SessionMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		sessionController:   sessionController,
		catalogController:   catalogController,
		selectionController: selectionController,
		cartController:      cartController,
		favoritesController: favoritesController,
		adminController:     adminController,
		sessionMiddleware:   sessionMiddleware,
		config:              cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	// unknown-shape input is rejected at the boundary
	binding.EnableDecoderDisallowUnknownFields = true

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Storefront API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/categories", r.catalogController.GetCategories)
		v1.GET("/categories/:categoryId", r.catalogController.GetCategory)
		v1.GET("/categories/:categoryId/subcategories", r.catalogController.GetSubCategoryOptions)
		v1.GET("/banners", r.catalogController.GetBanners)
		v1.GET("/home", r.catalogController.GetHome)
		v1.GET("/products/:id", r.catalogController.GetProduct)

		v1.POST("/sessions", r.sessionController.CreateSession)
		v1.DELETE("/sessions/:sid", r.sessionController.EndSession)

		sessions := v1.Group("/sessions/:sid")
		sessions.Use(r.sessionMiddleware.RequireSession())
		{
			sessions.GET("", r.sessionController.GetSession)
			sessions.PUT("/admin", r.sessionController.SetAdminMode)

			selection := sessions.Group("/selection")
			{
				selection.GET("", r.selectionController.GetSelection)
				selection.PUT("", r.selectionController.Navigate)
				selection.DELETE("", r.selectionController.ResetSelection)
				selection.PUT("/category", r.selectionController.SelectCategory)
				selection.PUT("/subcategory", r.selectionController.SelectSubCategory)
				selection.PUT("/subsubcategory", r.selectionController.SelectSubSubCategory)
				selection.PUT("/search", r.selectionController.SetSearch)
			}

			sessions.GET("/products", r.selectionController.ListProducts)

			cart := sessions.Group("/cart")
			{
				cart.GET("", r.cartController.GetCart)
				cart.POST("", r.cartController.AddToCart)
				cart.DELETE("", r.cartController.ClearCart)
				cart.PUT("/:productId", r.cartController.SetQuantity)
				cart.PATCH("/:productId", r.cartController.AdjustQuantity)
				cart.DELETE("/:productId", r.cartController.RemoveFromCart)
			}

			favorites := sessions.Group("/favorites")
			{
				favorites.GET("", r.favoritesController.GetFavorites)
				favorites.GET("/:productId", r.favoritesController.IsFavorite)
				favorites.POST("/:productId", r.favoritesController.ToggleFavorite)
			}

			admin := sessions.Group("/admin")
			admin.Use(r.sessionMiddleware.RequireAdmin())
			{
				admin.POST("/categories", r.adminController.CreateCategory)
				admin.DELETE("/categories/:categoryId", r.adminController.DeleteCategory)
				admin.POST("/categories/:categoryId/subcategories", r.adminController.CreateSubCategory)
				admin.DELETE("/categories/:categoryId/subcategories/:subCategoryId", r.adminController.DeleteSubCategory)
				admin.POST("/categories/:categoryId/subcategories/:subCategoryId/subsubcategories", r.adminController.CreateSubSubCategory)
				admin.DELETE("/categories/:categoryId/subcategories/:subCategoryId/subsubcategories/:subSubCategoryId", r.adminController.DeleteSubSubCategory)

				admin.POST("/products", r.adminController.CreateProduct)
				admin.GET("/products/export", r.adminController.ExportProducts)
				admin.PUT("/products/:id", r.adminController.UpdateProduct)
				admin.DELETE("/products/:id", r.adminController.DeleteProduct)

				admin.POST("/banners", r.adminController.AddBanner)
				admin.PUT("/banners", r.adminController.ReplaceBanners)
				admin.DELETE("/banners/:index", r.adminController.DeleteBanner)

				admin.GET("/confirmations", r.adminController.GetPendingActions)
				admin.POST("/confirmations/:actionId", r.adminController.Confirm)
				admin.DELETE("/confirmations/:actionId", r.adminController.Cancel)

				admin.GET("/integrity", r.adminController.GetIntegrity)
				admin.GET("/notifications", r.adminController.GetNotifications)
				admin.POST("/catalog/snapshot", r.adminController.SaveSnapshot)
			}
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-Request-ID, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
