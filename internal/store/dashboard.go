package store

import (
	"context"
	"fmt"
	"time"

	"github.com/electromart/inventory/internal/models"
)

// DashboardStore runs the independent aggregate queries behind the
// dashboard. Each query is a separate method so a failure in one (for
// example a missing table) cannot poison the others.
type DashboardStore struct {
	Base
}

// NewDashboardStore creates a DashboardStore.
func NewDashboardStore(base Base) *DashboardStore {
	return &DashboardStore{Base: base}
}

// CountItems returns the total number of items.
func (s *DashboardStore) CountItems(ctx context.Context) (int, error) {
	return s.countQuery(ctx, `SELECT COUNT(*) FROM items`)
}

// CountCategories returns the total number of categories.
func (s *DashboardStore) CountCategories(ctx context.Context) (int, error) {
	return s.countQuery(ctx, `SELECT COUNT(*) FROM categories`)
}

// InventoryValue returns the total value of stock on hand.
func (s *DashboardStore) InventoryValue(ctx context.Context) (float64, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var total float64

	err := s.Pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(price * stock_quantity), 0) FROM items`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing inventory value: %w", err)
	}

	return total, nil
}

// CountLowStock returns the number of items below the low-stock threshold.
func (s *DashboardStore) CountLowStock(ctx context.Context) (int, error) {
	return s.countQuery(ctx,
		`SELECT COUNT(*) FROM items WHERE stock_quantity < $1`,
		models.LowStockThreshold,
	)
}

// CountCategoriesWithItems returns the number of categories that have at
// least one item.
func (s *DashboardStore) CountCategoriesWithItems(ctx context.Context) (int, error) {
	return s.countQuery(ctx, `SELECT COUNT(DISTINCT category_id) FROM items`)
}

// CountChangesOn returns the number of audit records created on the given
// calendar day. Fails with an undefined-table error when the audit trail
// is not provisioned; the caller degrades that to zero.
func (s *DashboardStore) CountChangesOn(ctx context.Context, day time.Time) (int, error) {
	return s.countQuery(ctx,
		`SELECT COUNT(*) FROM item_changes WHERE DATE(changed_at) = $1::date`,
		day.Format("2006-01-02"),
	)
}

// RecentItems returns the most recently created items joined with their
// category name.
func (s *DashboardStore) RecentItems(ctx context.Context, limit int) ([]models.Item, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	rows, err := s.Pool.Query(ctx, fmt.Sprintf(
		`SELECT %s FROM items i JOIN categories c ON i.category_id = c.id
		 ORDER BY i.created_at DESC LIMIT $1`,
		itemColumns,
	), limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent items: %w", err)
	}

	return collectItems(rows)
}

func (s *DashboardStore) countQuery(ctx context.Context, sql string, args ...any) (int, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var count int

	if err := s.Pool.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("dashboard count query: %w", err)
	}

	return count, nil
}
