package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/models"
)

// CategoryStore is the data-access interface CategoryService depends on.
type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	Create(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
	HasItems(ctx context.Context, id int64) (bool, error)
}

// categoryItemLister is the slice of ItemStore CategoryService needs to
// assemble a category detail page.
type categoryItemLister interface {
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Item, error)
}

// CategoryService wraps CategoryStore, composing in the item listing for
// category detail pages.
type CategoryService struct {
	store CategoryStore
	items categoryItemLister
	log   *logrus.Logger
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(store CategoryStore, items categoryItemLister, log *logrus.Logger) *CategoryService {
	return &CategoryService{store: store, items: items, log: log}
}

// List returns all categories with item counts (pass-through).
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.List(ctx)
}

// Get returns a single category by ID (pass-through).
func (s *CategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	return s.store.Get(ctx, id)
}

// GetWithItems returns a category together with its items.
func (s *CategoryService) GetWithItems(ctx context.Context, id int64) (*models.Category, []models.Item, error) {
	category, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	items, err := s.items.ListByCategory(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return category, items, nil
}

// Create inserts a new category.
func (s *CategoryService) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	category, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"category_id": category.ID, "name": category.Name}).Info("category created")

	return category, nil
}

// Update overwrites a category's name and description.
func (s *CategoryService) Update(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error) {
	return s.store.Update(ctx, id, in)
}

// Delete removes a category; fails with models.ErrCategoryHasItems while
// items still reference it.
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.log.WithField("category_id", id).Info("category deleted")

	return nil
}

// HasItems reports whether any item references the category (pass-through).
func (s *CategoryService) HasItems(ctx context.Context, id int64) (bool, error) {
	return s.store.HasItems(ctx, id)
}
