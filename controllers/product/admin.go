package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	adminControllers "github.com/debghosh/kreations/controllers/admin"

	"github.com/debghosh/kreations/catalog"
	"github.com/debghosh/kreations/models"
)

// CreateProduct adds an item to the catalog. The first admin write
// materializes the seed list into persisted state.
// POST /admin/products
func CreateProduct(cat *catalog.Catalog, feed *adminControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Item
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		created, err := cat.Create(c.Request.Context(), item)
		if err != nil {
			if errors.Is(err, catalog.ErrInvalidItem) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required and price must be non-negative"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		feed.Broadcast("product.created", created)
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateProduct shallow-merges the supplied fields into an existing item.
// PUT /admin/products/:id
func UpdateProduct(cat *catalog.Catalog, feed *adminControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input catalog.ItemUpdate
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, err := cat.Update(c.Request.Context(), c.Param("id"), input)
		if err != nil {
			if errors.Is(err, catalog.ErrInvalidItem) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		feed.Broadcast("product.updated", item)
		c.JSON(http.StatusOK, item)
	}
}

// DeleteProduct removes an item; an unknown id is a no-op.
// DELETE /admin/products/:id
func DeleteProduct(cat *catalog.Catalog, feed *adminControllers.Feed) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := cat.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}

		feed.Broadcast("product.deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
