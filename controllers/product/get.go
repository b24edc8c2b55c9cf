package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debghosh/kreations/catalog"
)

// GetProducts returns the catalog, optionally narrowed by category and a
// search query, ordered by the sort key.
// GET /products?category=wax&search=candle&sort=price-low
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.DefaultQuery("category", catalog.CategoryAll)

		items, err := cat.ByCategory(c.Request.Context(), category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		items = catalog.Search(items, c.Query("search"), c.DefaultQuery("sort", catalog.SortPopularity))
		c.JSON(http.StatusOK, gin.H{"products": items, "count": len(items)})
	}
}

// GetProductByID returns a single product.
// GET /products/:id
func GetProductByID(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		item, err := cat.ByID(c.Request.Context(), id)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

// GetFeaturedProducts returns the homepage items.
// GET /products/featured
func GetFeaturedProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cat.Featured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": items, "count": len(items)})
	}
}
