// Package diff computes field-level changes between an item's persisted
// state and a proposed update. It is pure computation over two snapshots:
// no I/O, no side effects.
package diff

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/electromart/inventory/internal/models"
)

// noneLabel stands in for an absent optional value in human-readable summaries.
const noneLabel = "none"

// FieldChange is one changed field: the normalized old/new values to
// persist (nil for absent) and a human-readable summary line.
type FieldChange struct {
	Field   string
	Old     *string
	New     *string
	Summary string
}

// Changes compares the tracked fields of the current item against the
// proposed input and returns one FieldChange per differing field, in a
// fixed order: name, category, price, stock, brand, model, sku.
//
// oldCategoryName and newCategoryName are the resolved display names for
// the two category IDs; pass "" when a name could not be resolved and the
// raw ID is used instead.
func Changes(cur models.Item, in models.ItemInput, oldCategoryName, newCategoryName string) []FieldChange {
	var changes []FieldChange

	if c, ok := textChange("Name", "name", cur.Name, in.Name); ok {
		changes = append(changes, c)
	}

	if cur.CategoryID != in.CategoryID {
		oldLabel := categoryLabel(oldCategoryName, cur.CategoryID)
		newLabel := categoryLabel(newCategoryName, in.CategoryID)
		changes = append(changes, FieldChange{
			Field:   "category",
			Old:     &oldLabel,
			New:     &newLabel,
			Summary: fmt.Sprintf("Category: %q → %q", oldLabel, newLabel),
		})
	}

	// Prices compare equal after normalization to two decimals, so "10"
	// and "10.00" are the same value.
	oldPrice := formatPrice(cur.Price)
	newPrice := formatPrice(in.Price)

	if oldPrice != newPrice {
		changes = append(changes, FieldChange{
			Field:   "price",
			Old:     &oldPrice,
			New:     &newPrice,
			Summary: fmt.Sprintf("Price: $%s → $%s", oldPrice, newPrice),
		})
	}

	if cur.StockQuantity != in.StockQuantity {
		oldStock := strconv.Itoa(cur.StockQuantity)
		newStock := strconv.Itoa(in.StockQuantity)
		changes = append(changes, FieldChange{
			Field:   "stock",
			Old:     &oldStock,
			New:     &newStock,
			Summary: fmt.Sprintf("Stock: %s → %s", oldStock, newStock),
		})
	}

	if c, ok := optionalTextChange("Brand", "brand", cur.Brand, in.Brand); ok {
		changes = append(changes, c)
	}

	if c, ok := optionalTextChange("Model", "model", cur.Model, in.Model); ok {
		changes = append(changes, c)
	}

	if c, ok := optionalTextChange("SKU", "sku", cur.SKU, in.SKU); ok {
		changes = append(changes, c)
	}

	return changes
}

// Summaries extracts the human-readable lines from a change set, in order.
func Summaries(changes []FieldChange) []string {
	out := make([]string, 0, len(changes))
	for _, c := range changes {
		out = append(out, c.Summary)
	}

	return out
}

// textChange compares a required text field after trimming.
func textChange(label, field, oldVal, newVal string) (FieldChange, bool) {
	oldVal = strings.TrimSpace(oldVal)
	newVal = strings.TrimSpace(newVal)

	if oldVal == newVal {
		return FieldChange{}, false
	}

	return FieldChange{
		Field:   field,
		Old:     &oldVal,
		New:     &newVal,
		Summary: fmt.Sprintf("%s: %q → %q", label, oldVal, newVal),
	}, true
}

// optionalTextChange compares a nullable text field. Absent on both sides
// is unchanged; absent on one side reads as the "none" label in the
// summary and persists as nil.
func optionalTextChange(label, field string, oldVal, newVal *string) (FieldChange, bool) {
	oldStr := derefTrimmed(oldVal)
	newStr := derefTrimmed(newVal)

	if oldStr == newStr {
		return FieldChange{}, false
	}

	return FieldChange{
		Field:   field,
		Old:     presentOrNil(oldStr),
		New:     presentOrNil(newStr),
		Summary: fmt.Sprintf("%s: %q → %q", label, orNone(oldStr), orNone(newStr)),
	}, true
}

func categoryLabel(name string, id int64) string {
	if name != "" {
		return name
	}

	return strconv.FormatInt(id, 10)
}

func formatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func derefTrimmed(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}

func presentOrNil(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func orNone(s string) string {
	if s == "" {
		return noneLabel
	}

	return s
}
