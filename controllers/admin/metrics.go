package adminControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debghosh/kreations/catalog"
	"github.com/debghosh/kreations/collections"
)

// GET /admin/metrics
//
// The dashboard header counters: product, collection and featured totals.
func GetMetrics(cat *catalog.Catalog, adminCols *collections.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cat.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		cols, err := adminCols.List(c.Request.Context(), "")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch collections"})
			return
		}

		featuredProducts := 0
		inStock := 0
		for _, item := range items {
			if item.Featured {
				featuredProducts++
			}
			if item.InStock {
				inStock++
			}
		}
		featuredCollections := 0
		for _, col := range cols {
			if col.Featured {
				featuredCollections++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products":       len(items),
			"in_stock":             inStock,
			"featured_products":    featuredProducts,
			"total_collections":    len(cols),
			"featured_collections": featuredCollections,
		})
	}
}
