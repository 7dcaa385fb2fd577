package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/electromart/inventory/internal/metrics"
	"github.com/electromart/inventory/internal/models"
)

// defaultRecentItems is how many newest items the dashboard shows.
const defaultRecentItems = 5

// DashboardStore is the data-access interface DashboardService depends on.
type DashboardStore interface {
	CountItems(ctx context.Context) (int, error)
	CountCategories(ctx context.Context) (int, error)
	InventoryValue(ctx context.Context) (float64, error)
	CountLowStock(ctx context.Context) (int, error)
	CountCategoriesWithItems(ctx context.Context) (int, error)
	CountChangesOn(ctx context.Context, day time.Time) (int, error)
	RecentItems(ctx context.Context, limit int) ([]models.Item, error)
}

// DashboardService aggregates the dashboard statistics. Each statistic is
// queried independently and degrades to zero on failure, so one broken
// query (for example an unprovisioned audit trail) cannot blank the whole
// dashboard.
type DashboardService struct {
	store DashboardStore
	log   *logrus.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewDashboardService creates a DashboardService.
func NewDashboardService(store DashboardStore, log *logrus.Logger) *DashboardService {
	return &DashboardService{store: store, log: log, now: time.Now}
}

// Stats gathers the six dashboard statistics concurrently. Individual
// query failures are logged and zeroed; Stats itself never fails.
func (s *DashboardService) Stats(ctx context.Context) models.DashboardStats {
	var stats models.DashboardStats

	today := s.now()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats.TotalItems = s.intStat(ctx, "total_items", s.store.CountItems)

		return nil
	})
	g.Go(func() error {
		stats.TotalCategories = s.intStat(ctx, "total_categories", s.store.CountCategories)

		return nil
	})
	g.Go(func() error {
		value, err := s.store.InventoryValue(ctx)
		if err != nil {
			s.log.WithError(err).Warn("dashboard stat total_value failed")

			value = 0
		}
		stats.TotalValue = value

		return nil
	})
	g.Go(func() error {
		stats.LowStockItems = s.intStat(ctx, "low_stock_items", s.store.CountLowStock)

		return nil
	})
	g.Go(func() error {
		stats.CategoriesWithItems = s.intStat(ctx, "categories_with_items", s.store.CountCategoriesWithItems)

		return nil
	})
	g.Go(func() error {
		count, err := s.store.CountChangesOn(ctx, today)
		if err != nil {
			s.log.WithError(err).Debug("dashboard stat todays_changes failed")

			count = 0
		}
		stats.TodaysChanges = count

		return nil
	})

	// Every closure returns nil, so Wait only synchronizes.
	_ = g.Wait()

	metrics.ItemCount.Set(float64(stats.TotalItems))
	metrics.CategoryCount.Set(float64(stats.TotalCategories))
	metrics.LowStockCount.Set(float64(stats.LowStockItems))
	metrics.InventoryValue.Set(stats.TotalValue)

	return stats
}

// RecentItems returns the newest items for the dashboard. Never fails; a
// read error is logged and reported as no items.
func (s *DashboardService) RecentItems(ctx context.Context) []models.Item {
	items, err := s.store.RecentItems(ctx, defaultRecentItems)
	if err != nil {
		s.log.WithError(err).Warn("reading recent items failed")

		return nil
	}

	return items
}

func (s *DashboardService) intStat(ctx context.Context, name string, query func(context.Context) (int, error)) int {
	count, err := query(ctx)
	if err != nil {
		s.log.WithError(err).WithField("stat", name).Warn("dashboard stat failed")

		return 0
	}

	return count
}
