package productcontroller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tealeg/xlsx"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// POST /api/admin/products/import-excel
//
// Bulk catalog import. Rows carrying a known product id update that
// product, rows without one create a new product, malformed rows are
// skipped. The whole import lands in one store write.
func ImportProductsFromExcel(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		doc := st.Snapshot()

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			id := get(0)
			name := get(1)
			brand := get(2)
			category := get(3)
			price, err1 := strconv.ParseFloat(get(4), 64)
			rating, _ := strconv.ParseFloat(get(5), 64)
			reviewCount, _ := strconv.Atoi(get(6))
			stock, err2 := strconv.Atoi(get(7))
			images := get(8)
			shortDescription := get(9)
			description := get(10)

			if name == "" || err1 != nil || err2 != nil || price < 0 || stock < 0 {
				skippedCount++
				continue
			}

			var imageList []string
			for _, part := range strings.Split(images, ",") {
				if part = strings.TrimSpace(part); part != "" {
					imageList = append(imageList, part)
				}
			}

			if id != "" {
				if existing := doc.Product(id); existing != nil {
					existing.Name = name
					existing.Brand = brand
					existing.Category = category
					existing.Price = price
					existing.Rating = rating
					existing.ReviewCount = reviewCount
					existing.Stock = stock
					existing.Images = imageList
					existing.ShortDescription = shortDescription
					existing.Description = description
					updatedCount++
					continue
				}
			}

			doc.Products = append(doc.Products, models.Product{
				ID:               "p_" + uuid.NewString()[:8],
				Name:             name,
				Brand:            brand,
				Category:         category,
				Price:            price,
				Rating:           rating,
				ReviewCount:      reviewCount,
				Stock:            stock,
				Images:           imageList,
				ShortDescription: shortDescription,
				Description:      description,
				Highlights:       []string{},
				Specs:            map[string]string{},
			})
			createdCount++
		}

		if createdCount > 0 || updatedCount > 0 {
			if err := st.Submit(doc); err != nil {
				if errors.Is(err, store.ErrConflict) {
					c.JSON(http.StatusConflict, gin.H{"error": "Catalog changed concurrently, please retry"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save imported products"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":       "Import completed",
			"created_count": createdCount,
			"updated_count": updatedCount,
			"skipped_count": skippedCount,
		})
	}
}
