package routes

import (
	"github.com/gin-gonic/gin"

	adminControllers "github.com/debghosh/kreations/controllers/admin"

	"github.com/debghosh/kreations/catalog"
	"github.com/debghosh/kreations/collections"
	"github.com/debghosh/kreations/membership"
	"github.com/debghosh/kreations/session"
	"github.com/debghosh/kreations/storage"
)

// Deps bundles the managers every route group draws from, all built over the
// one Store.
type Deps struct {
	Sessions         *session.Manager
	Favorites        *membership.Set
	Saved            *membership.Set
	UserCollections  *collections.Manager
	AdminCollections *collections.Manager
	Catalog          *catalog.Catalog
	Feed             *adminControllers.Feed
}

func NewDeps(store storage.Store) *Deps {
	return &Deps{
		Sessions:         session.NewManager(store),
		Favorites:        membership.Favorites(store),
		Saved:            membership.SavedItems(store),
		UserCollections:  collections.NewUserManager(store),
		AdminCollections: collections.NewAdminManager(store),
		Catalog:          catalog.New(store),
		Feed:             adminControllers.NewFeed(),
	}
}

// SetupRoutes is the single entry-point that wires up the Auth, Public,
// User, and Admin route groups.
func SetupRoutes(r *gin.Engine, deps *Deps) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// 2️⃣ Public catalog browsing (no middleware)
	SetupPublicRoutes(r, deps)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// 4️⃣ Admin routes (JWT + role-protected)
	SetupAdminRoutes(r, deps)
}
