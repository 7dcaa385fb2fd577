package models

import "errors"

// Sentinel errors for validation.
var (
	ErrMissingName     = errors.New("name is required")
	ErrMissingCategory = errors.New("category is required")
)

// Sentinel errors for entity lookups.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Sentinel errors for constraint violations surfaced to forms.
var (
	ErrDuplicateName    = errors.New("category name already exists")
	ErrDuplicateSKU     = errors.New("sku already exists")
	ErrInvalidCategory  = errors.New("category does not exist")
	ErrCategoryHasItems = errors.New("category still has items")
)
