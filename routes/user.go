package routes

import (
	"github.com/gin-gonic/gin"

	collectionControllers "github.com/debghosh/kreations/controllers/collection"
	membershipControllers "github.com/debghosh/kreations/controllers/membership"
	"github.com/debghosh/kreations/membership"
	"github.com/debghosh/kreations/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps *Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Favorites & Saved Items ────────────────
		registerSetRoutes(userGroup.Group("/favorites"), deps, deps.Favorites)
		registerSetRoutes(userGroup.Group("/saved"), deps, deps.Saved)

		// ──────────────── Collections ────────────────
		colGroup := userGroup.Group("/collections")
		{
			colGroup.GET("", collectionControllers.GetCollections(deps.UserCollections))                            // GET    /user/collections
			colGroup.POST("", collectionControllers.CreateCollection(deps.UserCollections, nil))                    // POST   /user/collections
			colGroup.GET("/:id", collectionControllers.GetCollectionByID(deps.UserCollections))                     // GET    /user/collections/:id
			colGroup.PUT("/:id", collectionControllers.UpdateCollection(deps.UserCollections, nil))                 // PUT    /user/collections/:id
			colGroup.DELETE("/:id", collectionControllers.DeleteCollection(deps.UserCollections, nil))              // DELETE /user/collections/:id
			colGroup.POST("/:id/items", collectionControllers.AddCollectionItem(deps.UserCollections))              // POST   /user/collections/:id/items
			colGroup.DELETE("/:id/items/:item_id", collectionControllers.RemoveCollectionItem(deps.UserCollections)) // DELETE /user/collections/:id/items/:item_id
		}
	}
}

// registerSetRoutes wires the shared membership-set handlers onto one group;
// favorites and saved items get identical surfaces.
func registerSetRoutes(g *gin.RouterGroup, deps *Deps, set *membership.Set) {
	g.GET("", membershipControllers.GetItems(set))
	g.POST("", membershipControllers.AddItem(set, deps.Catalog))
	g.POST("/toggle", membershipControllers.ToggleItem(set, deps.Catalog))
	g.GET("/:item_id", membershipControllers.ContainsItem(set))
	g.DELETE("/:item_id", membershipControllers.RemoveItem(set))
}
