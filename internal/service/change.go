package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/models"
)

// ChangeStore is the data-access interface ChangeService depends on.
type ChangeStore interface {
	ItemHistory(ctx context.Context, itemID int64) ([]models.ChangeRecord, error)
	RecentChanges(ctx context.Context, limit int) ([]models.ChangeRecord, error)
}

// ChangeService exposes the audit trail reads. History is auxiliary to
// browsing, so read failures are absorbed here: the pages render with an
// empty history rather than erroring.
type ChangeService struct {
	store ChangeStore
	log   *logrus.Logger
}

// NewChangeService creates a ChangeService.
func NewChangeService(store ChangeStore, log *logrus.Logger) *ChangeService {
	return &ChangeService{store: store, log: log}
}

// ItemHistory returns the audit records for an item, newest first. Never
// fails; a read error is logged and reported as no history.
func (s *ChangeService) ItemHistory(ctx context.Context, itemID int64) []models.ChangeRecord {
	records, err := s.store.ItemHistory(ctx, itemID)
	if err != nil {
		s.log.WithError(err).WithField("item_id", itemID).Warn("reading item history failed")

		return nil
	}

	return records
}

// RecentChanges returns the latest audit records across all items, newest
// first. Never fails; a read error is logged and reported as no changes.
func (s *ChangeService) RecentChanges(ctx context.Context, limit int) []models.ChangeRecord {
	records, err := s.store.RecentChanges(ctx, limit)
	if err != nil {
		s.log.WithError(err).Warn("reading recent changes failed")

		return nil
	}

	return records
}
