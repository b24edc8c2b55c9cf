package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/debghosh/kreations/controllers/admin"
	collectionControllers "github.com/debghosh/kreations/controllers/collection"
	productcontroller "github.com/debghosh/kreations/controllers/product"
	"github.com/debghosh/kreations/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT with
// the admin role.
func SetupAdminRoutes(r *gin.Engine, deps *Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.Catalog, deps.Feed))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.Catalog, deps.Feed))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.Catalog, deps.Feed))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.Catalog))
		}

		// ─────────── Curated Collection Management ───────────
		colAdmin := adminGroup.Group("/collections")
		{
			colAdmin.GET("", collectionControllers.GetCollections(deps.AdminCollections))
			colAdmin.POST("", collectionControllers.CreateCollection(deps.AdminCollections, deps.Feed))
			colAdmin.GET("/:id", collectionControllers.GetCollectionByID(deps.AdminCollections))
			colAdmin.PUT("/:id", collectionControllers.UpdateCollection(deps.AdminCollections, deps.Feed))
			colAdmin.DELETE("/:id", collectionControllers.DeleteCollection(deps.AdminCollections, deps.Feed))
			colAdmin.POST("/:id/items", collectionControllers.AddCollectionItem(deps.AdminCollections))
			colAdmin.DELETE("/:id/items/:item_id", collectionControllers.RemoveCollectionItem(deps.AdminCollections))
		}

		// ─────────── Dashboard ───────────
		adminGroup.GET("/metrics", adminControllers.GetMetrics(deps.Catalog, deps.AdminCollections))
		adminGroup.GET("/live", deps.Feed.Handler)
	}
}
