package routes

import (
	"github.com/gin-gonic/gin"

	collectionControllers "github.com/debghosh/kreations/controllers/collection"
	productcontroller "github.com/debghosh/kreations/controllers/product"
)

// SetupPublicRoutes registers the catalog browsing endpoints. Browsing needs
// no session; only marking and curating do.
func SetupPublicRoutes(r *gin.Engine, deps *Deps) {
	productGroup := r.Group("/products")
	{
		productGroup.GET("", productcontroller.GetProducts(deps.Catalog))                                       // GET /products?category=&search=&sort=
		productGroup.GET("/featured", productcontroller.GetFeaturedProducts(deps.Catalog))                      // GET /products/featured
		productGroup.GET("/featured-collections", collectionControllers.GetFeaturedCollections(deps.AdminCollections)) // GET /products/featured-collections
		productGroup.GET("/:id", productcontroller.GetProductByID(deps.Catalog))                                // GET /products/:id
	}
}
