package models

import (
	"strings"
	"time"
)

// LowStockThreshold is the stock quantity below which an item is flagged
// in reports and on the dashboard.
const LowStockThreshold = 5

// Item is a store product with pricing and stock attributes.
type Item struct {
	ID             int64          `json:"id"`
	CategoryID     int64          `json:"category_id"`
	Name           string         `json:"name"`
	Brand          *string        `json:"brand,omitempty"`
	Model          *string        `json:"model,omitempty"`
	Description    *string        `json:"description,omitempty"`
	Specifications map[string]any `json:"specifications,omitempty"`
	Price          float64        `json:"price"`
	StockQuantity  int            `json:"stock_quantity"`
	SKU            *string        `json:"sku,omitempty"`
	ImageURL       *string        `json:"image_url,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	// CategoryName is populated by joined queries only.
	CategoryName string `json:"category_name,omitempty"`
}

// ItemInput is the normalized form payload for creating or updating an item.
// Optional text fields are nil when absent or blank.
type ItemInput struct {
	CategoryID     int64
	Name           string
	Brand          *string
	Model          *string
	Description    *string
	Specifications map[string]any
	Price          float64
	StockQuantity  int
	SKU            *string
	ImageURL       *string
}

// Normalize trims text fields and collapses blank optional fields to nil.
// Negative price and stock are clamped to zero, matching the coercion the
// form layer has always applied.
func (in *ItemInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = trimOptional(in.Brand)
	in.Model = trimOptional(in.Model)
	in.Description = trimOptional(in.Description)
	in.SKU = trimOptional(in.SKU)
	in.ImageURL = trimOptional(in.ImageURL)

	if in.Price < 0 {
		in.Price = 0
	}

	if in.StockQuantity < 0 {
		in.StockQuantity = 0
	}
}

// Validate checks required fields after normalization.
func (in *ItemInput) Validate() error {
	if in.Name == "" {
		return ErrMissingName
	}

	if in.CategoryID <= 0 {
		return ErrMissingCategory
	}

	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}

	return &t
}
