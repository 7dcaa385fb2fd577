// Package service provides business logic between the web handlers and
// the data stores.
package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/diff"
	"github.com/electromart/inventory/internal/metrics"
	"github.com/electromart/inventory/internal/models"
)

// ItemStore is the data-access interface ItemService depends on.
type ItemStore interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]models.Item, error)
	Create(ctx context.Context, in models.ItemInput) (*models.Item, error)
	Update(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error)
	Delete(ctx context.Context, id int64) (*models.Item, error)
	Search(ctx context.Context, query string) ([]models.Item, error)
	LowStock(ctx context.Context) ([]models.Item, error)
}

// ChangeRecorder persists the audit records for an item update.
type ChangeRecorder interface {
	Record(ctx context.Context, itemID int64, changes []diff.FieldChange, actor string) error
}

// CategoryResolver resolves category display names for change summaries.
type CategoryResolver interface {
	Get(ctx context.Context, id int64) (*models.Category, error)
}

// ItemService wraps ItemStore with the update change-tracking flow.
type ItemService struct {
	store      ItemStore
	categories CategoryResolver
	changes    ChangeRecorder
	log        *logrus.Logger
}

// NewItemService creates an ItemService.
func NewItemService(store ItemStore, categories CategoryResolver, changes ChangeRecorder, log *logrus.Logger) *ItemService {
	return &ItemService{store: store, categories: categories, changes: changes, log: log}
}

// List returns all items (pass-through).
func (s *ItemService) List(ctx context.Context) ([]models.Item, error) {
	return s.store.List(ctx)
}

// Get returns a single item by ID (pass-through).
func (s *ItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	return s.store.Get(ctx, id)
}

// ListByCategory returns a category's items (pass-through).
func (s *ItemService) ListByCategory(ctx context.Context, categoryID int64) ([]models.Item, error) {
	return s.store.ListByCategory(ctx, categoryID)
}

// Create inserts a new item.
func (s *ItemService) Create(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	item, err := s.store.Create(ctx, in)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"item_id": item.ID, "name": item.Name}).Info("item created")

	return item, nil
}

// Update diffs the proposed fields against the persisted item, applies
// the update, then records the changes as audit rows. The audit write is
// best-effort and non-transactional with the update: a failure there is
// logged and never propagated, so an unprovisioned audit trail cannot
// break item editing.
//
// Returns the updated item and the human-readable change summaries for
// the redirect message.
func (s *ItemService) Update(ctx context.Context, id int64, in models.ItemInput, actor string) (*models.Item, []string, error) {
	cur, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	var oldName, newName string
	if cur.CategoryID != in.CategoryID {
		oldName = cur.CategoryName
		newName = s.categoryName(ctx, in.CategoryID)
	}

	changes := diff.Changes(*cur, in, oldName, newName)

	item, err := s.store.Update(ctx, id, in)
	if err != nil {
		return nil, nil, err
	}

	if len(changes) > 0 {
		if err := s.changes.Record(ctx, id, changes, actor); err != nil {
			s.log.WithError(err).WithField("item_id", id).Warn("recording item changes failed")
		} else {
			metrics.ChangesRecorded.Add(float64(len(changes)))
		}

		s.log.WithFields(logrus.Fields{
			"item_id": id,
			"changes": strings.Join(diff.Summaries(changes), ", "),
		}).Info("item updated")
	}

	return item, diff.Summaries(changes), nil
}

// Delete removes an item and returns the deleted row.
func (s *ItemService) Delete(ctx context.Context, id int64) (*models.Item, error) {
	item, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.WithField("item_id", id).Info("item deleted")

	return item, nil
}

// Search returns items matching the query (pass-through).
func (s *ItemService) Search(ctx context.Context, query string) ([]models.Item, error) {
	return s.store.Search(ctx, query)
}

// LowStock returns items below the low-stock threshold (pass-through).
func (s *ItemService) LowStock(ctx context.Context) ([]models.Item, error) {
	return s.store.LowStock(ctx)
}

// categoryName resolves a category's display name, or "" when the lookup
// fails; the differ then falls back to the raw ID.
func (s *ItemService) categoryName(ctx context.Context, id int64) string {
	c, err := s.categories.Get(ctx, id)
	if err != nil {
		s.log.WithError(err).WithField("category_id", id).Debug("resolving category name")

		return ""
	}

	return c.Name
}
