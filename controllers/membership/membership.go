package membershipControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debghosh/kreations/catalog"
	"github.com/debghosh/kreations/membership"
)

type ItemInput struct {
	ItemID string `json:"item_id" binding:"required"`
}

// One handler set serves both membership sets (favorites, saved items); the
// route group decides which Set instance it binds.

// GET /user/{favorites|saved}
func GetItems(set *membership.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		ids, err := set.List(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": ids, "count": len(ids)})
	}
}

// POST /user/{favorites|saved}/toggle
func ToggleItem(set *membership.Set, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validate against the catalog before touching the set
		item, err := cat.ByID(c.Request.Context(), input.ItemID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate item"})
			return
		}
		if item == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}

		active, err := set.Toggle(c.Request.Context(), userID, input.ItemID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle item"})
			return
		}

		count, err := set.Count(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item_id": input.ItemID, "active": active, "count": count})
	}
}

// POST /user/{favorites|saved}
func AddItem(set *membership.Set, cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var input ItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := cat.ByID(c.Request.Context(), input.ItemID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate item"})
			return
		}
		if item == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Item does not exist"})
			return
		}

		if err := set.Add(c.Request.Context(), userID, input.ItemID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"item_id": input.ItemID, "active": true})
	}
}

// DELETE /user/{favorites|saved}/:item_id
func RemoveItem(set *membership.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("item_id")

		if err := set.Remove(c.Request.Context(), userID, itemID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item_id": itemID, "active": false})
	}
}

// GET /user/{favorites|saved}/:item_id
func ContainsItem(set *membership.Set) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		itemID := c.Param("item_id")

		active, err := set.Contains(c.Request.Context(), userID, itemID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"item_id": itemID, "active": active})
	}
}
