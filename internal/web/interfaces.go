// Package web serves the HTML pages and the small JSON API.
package web

import (
	"context"

	"github.com/electromart/inventory/internal/models"
)

// ItemService is the item operations surface the handlers consume.
type ItemService interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, id int64) (*models.Item, error)
	Create(ctx context.Context, in models.ItemInput) (*models.Item, error)
	Update(ctx context.Context, id int64, in models.ItemInput, actor string) (*models.Item, []string, error)
	Delete(ctx context.Context, id int64) (*models.Item, error)
	Search(ctx context.Context, query string) ([]models.Item, error)
	LowStock(ctx context.Context) ([]models.Item, error)
}

// CategoryService is the category operations surface the handlers consume.
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Get(ctx context.Context, id int64) (*models.Category, error)
	GetWithItems(ctx context.Context, id int64) (*models.Category, []models.Item, error)
	Create(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	Update(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
	HasItems(ctx context.Context, id int64) (bool, error)
}

// ChangeService reads the audit trail. Both methods absorb failures and
// return empty slices, so the handlers never branch on history errors.
type ChangeService interface {
	ItemHistory(ctx context.Context, itemID int64) []models.ChangeRecord
	RecentChanges(ctx context.Context, limit int) []models.ChangeRecord
}

// DashboardService aggregates the dashboard statistics.
type DashboardService interface {
	Stats(ctx context.Context) models.DashboardStats
	RecentItems(ctx context.Context) []models.Item
}

// Pinger reports database liveness for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}
