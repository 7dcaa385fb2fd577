package web_test

import (
	"context"
	"sync"

	"github.com/electromart/inventory/internal/models"
)

// mockItemService records calls and returns configured responses.
type mockItemService struct {
	mu    sync.Mutex
	calls []string

	list       func(ctx context.Context) ([]models.Item, error)
	get        func(ctx context.Context, id int64) (*models.Item, error)
	create     func(ctx context.Context, in models.ItemInput) (*models.Item, error)
	update     func(ctx context.Context, id int64, in models.ItemInput, actor string) (*models.Item, []string, error)
	deleteItem func(ctx context.Context, id int64) (*models.Item, error)
	search     func(ctx context.Context, query string) ([]models.Item, error)
	lowStock   func(ctx context.Context) ([]models.Item, error)
}

func (m *mockItemService) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockItemService) List(ctx context.Context) ([]models.Item, error) {
	m.record("List")
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx)
}

func (m *mockItemService) Get(ctx context.Context, id int64) (*models.Item, error) {
	m.record("Get")
	return m.get(ctx, id)
}

func (m *mockItemService) Create(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	m.record("Create")
	return m.create(ctx, in)
}

func (m *mockItemService) Update(ctx context.Context, id int64, in models.ItemInput, actor string) (*models.Item, []string, error) {
	m.record("Update")
	return m.update(ctx, id, in, actor)
}

func (m *mockItemService) Delete(ctx context.Context, id int64) (*models.Item, error) {
	m.record("Delete")
	return m.deleteItem(ctx, id)
}

func (m *mockItemService) Search(ctx context.Context, query string) ([]models.Item, error) {
	m.record("Search")
	return m.search(ctx, query)
}

func (m *mockItemService) LowStock(ctx context.Context) ([]models.Item, error) {
	m.record("LowStock")
	return m.lowStock(ctx)
}

// mockCategoryService records calls and returns configured responses.
type mockCategoryService struct {
	mu    sync.Mutex
	calls []string

	list           func(ctx context.Context) ([]models.Category, error)
	get            func(ctx context.Context, id int64) (*models.Category, error)
	getWithItems   func(ctx context.Context, id int64) (*models.Category, []models.Item, error)
	create         func(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	update         func(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error)
	deleteCategory func(ctx context.Context, id int64) error
	hasItems       func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCategoryService) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockCategoryService) List(ctx context.Context) ([]models.Category, error) {
	m.record("List")
	if m.list == nil {
		return nil, nil
	}
	return m.list(ctx)
}

func (m *mockCategoryService) Get(ctx context.Context, id int64) (*models.Category, error) {
	m.record("Get")
	return m.get(ctx, id)
}

func (m *mockCategoryService) GetWithItems(ctx context.Context, id int64) (*models.Category, []models.Item, error) {
	m.record("GetWithItems")
	return m.getWithItems(ctx, id)
}

func (m *mockCategoryService) Create(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	m.record("Create")
	return m.create(ctx, in)
}

func (m *mockCategoryService) Update(ctx context.Context, id int64, in models.CategoryInput) (*models.Category, error) {
	m.record("Update")
	return m.update(ctx, id, in)
}

func (m *mockCategoryService) Delete(ctx context.Context, id int64) error {
	m.record("Delete")
	return m.deleteCategory(ctx, id)
}

func (m *mockCategoryService) HasItems(ctx context.Context, id int64) (bool, error) {
	m.record("HasItems")
	if m.hasItems == nil {
		return false, nil
	}
	return m.hasItems(ctx, id)
}

// mockChangeService returns configured audit reads; nil functions report
// empty history.
type mockChangeService struct {
	itemHistory   func(ctx context.Context, itemID int64) []models.ChangeRecord
	recentChanges func(ctx context.Context, limit int) []models.ChangeRecord
}

func (m *mockChangeService) ItemHistory(ctx context.Context, itemID int64) []models.ChangeRecord {
	if m.itemHistory == nil {
		return nil
	}
	return m.itemHistory(ctx, itemID)
}

func (m *mockChangeService) RecentChanges(ctx context.Context, limit int) []models.ChangeRecord {
	if m.recentChanges == nil {
		return nil
	}
	return m.recentChanges(ctx, limit)
}

// mockDashboardService returns configured aggregates.
type mockDashboardService struct {
	stats       func(ctx context.Context) models.DashboardStats
	recentItems func(ctx context.Context) []models.Item
}

func (m *mockDashboardService) Stats(ctx context.Context) models.DashboardStats {
	if m.stats == nil {
		return models.DashboardStats{}
	}
	return m.stats(ctx)
}

func (m *mockDashboardService) RecentItems(ctx context.Context) []models.Item {
	if m.recentItems == nil {
		return nil
	}
	return m.recentItems(ctx)
}

// mockPinger reports configured database liveness.
type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error { return m.err }
