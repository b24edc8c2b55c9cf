package collectionControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	adminControllers "github.com/debghosh/kreations/controllers/admin"

	"github.com/debghosh/kreations/collections"
)

type CreateInput struct {
	Name     string   `json:"name"`
	ItemIDs  []string `json:"item_ids"`
	Featured bool     `json:"featured"`
}

type UpdateInput struct {
	Name     *string `json:"name"`
	Featured *bool   `json:"featured"`
}

type CollectionItemInput struct {
	ItemID string `json:"item_id" binding:"required"`
}

// The same handler set serves both collection spaces. User routes bind the
// per-user manager and take the owner from the JWT; admin routes bind the
// global manager (owner resolves to the shared admin key) and additionally
// broadcast changes on the live feed.

func owner(c *gin.Context, mgr *collections.Manager) (string, bool) {
	if mgr.IsAdmin() {
		return "", true
	}
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

// POST /user/collections, POST /admin/collections
func CreateCollection(mgr *collections.Manager, feed *adminControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		own, ok := owner(c, mgr)
		if !ok {
			return
		}

		var input CreateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		col, err := mgr.Create(c.Request.Context(), own, input.Name, input.ItemIDs, input.Featured)
		if err != nil {
			switch {
			case errors.Is(err, collections.ErrInvalidName):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Collection name is required"})
			case errors.Is(err, collections.ErrEmptySelection):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Select at least one item"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create collection"})
			}
			return
		}

		if mgr.IsAdmin() {
			feed.Broadcast("collection.created", col)
		}
		c.JSON(http.StatusCreated, col)
	}
}

// GET /user/collections, GET /admin/collections
func GetCollections(mgr *collections.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		own, ok := owner(c, mgr)
		if !ok {
			return
		}

		list, err := mgr.List(c.Request.Context(), own)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collections"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"collections": list, "count": len(list)})
	}
}

// GET .../collections/:id
func GetCollectionByID(mgr *collections.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		own, ok := owner(c, mgr)
		if !ok {
			return
		}

		col, err := mgr.GetByID(c.Request.Context(), own, c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collection"})
			return
		}
		if col == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}
		c.JSON(http.StatusOK, col)
	}
}

// PUT .../collections/:id
func UpdateCollection(mgr *collections.Manager, feed *adminControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		own, ok := owner(c, mgr)
		if !ok {
			return
		}

		var input UpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		col, err := mgr.ApplyUpdate(c.Request.Context(), own, c.Param("id"), collections.Update{
			Name:     input.Name,
			Featured: input.Featured,
		})
		if err != nil {
			if errors.Is(err, collections.ErrInvalidName) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Collection name is required"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update collection"})
			return
		}
		if col == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Collection not found"})
			return
		}

		if mgr.IsAdmin() {
			feed.Broadcast("collection.updated", col)
		}
		c.JSON(http.StatusOK, col)
	}
}

// DELETE .../collections/:id — deleting an unknown id is a no-op, so the
// response is 200 either way.
func DeleteCollection(mgr *collections.Manager, feed *adminControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		own, ok := owner(c, mgr)
		if !ok {
			return
		}
		id := c.Param("id")

		if err := mgr.Delete(c.Request.Context(), own, id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete collection"})
			return
		}

		if mgr.IsAdmin() {
			feed.Broadcast("collection.deleted", gin.H{"id": id})
		}
		c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
	}
}

// POST .../collections/:id/items
func AddCollectionItem(mgr *collections.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		own, ok := owner(c, mgr)
		if !ok {
			return
		}

		var input CollectionItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := mgr.AddItem(c.Request.Context(), own, c.Param("id"), input.ItemID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added"})
	}
}

// DELETE .../collections/:id/items/:item_id
func RemoveCollectionItem(mgr *collections.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		own, ok := owner(c, mgr)
		if !ok {
			return
		}

		if err := mgr.RemoveItem(c.Request.Context(), own, c.Param("id"), c.Param("item_id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}

// GET /products/featured-collections — the homepage strip of admin
// collections flagged featured. Public, no session required.
func GetFeaturedCollections(adminMgr *collections.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := adminMgr.Featured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collections"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"collections": list, "count": len(list)})
	}
}
