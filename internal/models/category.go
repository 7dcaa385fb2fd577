package models

import (
	"strings"
	"time"
)

// Category groups items under a unique name.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	// ItemCount is populated by list queries only.
	ItemCount int `json:"item_count,omitempty"`
}

// CategoryInput is the normalized form payload for creating or updating a category.
type CategoryInput struct {
	Name        string
	Description string
}

// Normalize trims surrounding whitespace from all fields.
func (in *CategoryInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// Validate checks required fields after normalization.
func (in *CategoryInput) Validate() error {
	if in.Name == "" {
		return ErrMissingName
	}

	return nil
}
