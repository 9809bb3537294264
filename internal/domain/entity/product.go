package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies a product by the meal it is served at.
type Category string

// Assignable categories. CategoryAll is a filter-only pseudo-category:
// it is accepted when listing products but is never stored on one.
const (
	CategoryAll        Category = "ALL"
	CategoryAgahan     Category = "AGAHAN"
	CategoryTanghalian Category = "TANGHALIAN"
	CategoryHapunan    Category = "HAPUNAN"
	CategoryMerienda   Category = "MERIENDA"
)

// categoryLabels maps each category to its human-readable display name.
var categoryLabels = map[Category]string{
	CategoryAll:        "All",
	CategoryAgahan:     "Agahan",
	CategoryTanghalian: "Tanghalian",
	CategoryHapunan:    "Hapunan",
	CategoryMerienda:   "Merienda",
}

// ParseCategory normalizes a raw category string to its canonical form.
// The second return value is false for unknown categories.
func ParseCategory(raw string) (Category, bool) {
	category := Category(strings.ToUpper(strings.TrimSpace(raw)))
	_, ok := categoryLabels[category]

	return category, ok
}

// IsAssignable reports whether the category may be stored on a product.
func (c Category) IsAssignable() bool {
	_, ok := categoryLabels[c]

	return ok && c != CategoryAll
}

// Label returns the display name for the category, falling back to the
// raw value for categories that predate the current set.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}

	return string(c)
}

// Product is a single item on the menu.
type Product struct {
	ID          uuid.UUID       // The unique identifier for the product.
	Name        string          // The product's display name.
	Description string          // Optional longer description.
	Price       decimal.Decimal // Unit price, exact fixed-point decimal.
	ImageURL    string          // Optional image reference for display.
	Available   bool            // Whether the product can currently be ordered.
	Category    Category        // The meal category this product belongs to.
	CreatedAt   time.Time       // Timestamp of when the product was created.
}

// CategoryOption pairs a category value with its display label, as served
// by the category listing endpoint.
type CategoryOption struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}
