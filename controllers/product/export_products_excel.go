package productcontroller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/debghosh/kreations/catalog"
)

// ExportProductsToExcel streams the full catalog as an .xlsx download.
// GET /admin/products/export-excel
func ExportProductsToExcel(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cat.All(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Title", "Category", "Subcategory", "Price",
			"Description", "Image", "Tags", "Featured", "InStock", "Popularity",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, item := range items {
			row := sheet.AddRow()

			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(item.Title)
			row.AddCell().SetValue(item.Category)
			row.AddCell().SetValue(item.Subcategory)
			row.AddCell().SetValue(item.Price)
			row.AddCell().SetValue(item.Description)
			row.AddCell().SetValue(item.Image)
			row.AddCell().SetValue(strings.Join(item.Tags, ","))
			row.AddCell().SetValue(item.Featured)
			row.AddCell().SetValue(item.InStock)
			row.AddCell().SetValue(item.Popularity)
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
