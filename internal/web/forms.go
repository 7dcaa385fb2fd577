package web

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/electromart/inventory/internal/models"
)

// errBadSpecifications rejects a specifications field that is not a JSON
// object.
var errBadSpecifications = errors.New("specifications must be a JSON object")

// parseItemForm reads the item form fields into a normalized ItemInput.
// Numeric coercion is forgiving: unparseable or negative price and stock
// read as zero, matching how the forms have always behaved. Only the
// specifications field can fail, since silently dropping user JSON would
// lose data.
func parseItemForm(c *gin.Context) (models.ItemInput, error) {
	in := models.ItemInput{
		Name:          c.PostForm("name"),
		CategoryID:    parseFormInt64(c.PostForm("category_id")),
		Brand:         optionalField(c.PostForm("brand")),
		Model:         optionalField(c.PostForm("model")),
		Description:   optionalField(c.PostForm("description")),
		SKU:           optionalField(c.PostForm("sku")),
		ImageURL:      optionalField(c.PostForm("image_url")),
		Price:         parseFormFloat(c.PostForm("price")),
		StockQuantity: int(parseFormInt64(c.PostForm("stock_quantity"))),
	}

	if raw := strings.TrimSpace(c.PostForm("specifications")); raw != "" {
		var specs map[string]any
		if err := json.Unmarshal([]byte(raw), &specs); err != nil {
			return in, errBadSpecifications
		}
		in.Specifications = specs
	}

	in.Normalize()

	return in, nil
}

// parseCategoryForm reads the category form fields into a normalized
// CategoryInput.
func parseCategoryForm(c *gin.Context) models.CategoryInput {
	in := models.CategoryInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
	}
	in.Normalize()

	return in
}

func optionalField(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	return &s
}

func parseFormFloat(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}

	return v
}

func parseFormInt64(s string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v < 0 {
		return 0
	}

	return v
}
