package service

import (
	"context"
	"sync"
	"time"

	"github.com/electromart/inventory/internal/diff"
	"github.com/electromart/inventory/internal/models"
)

// mockItemStore records calls and returns configured responses.
type mockItemStore struct {
	mu    sync.Mutex
	calls []string

	list           func(ctx context.Context) ([]models.Item, error)
	get            func(ctx context.Context, id int64) (*models.Item, error)
	listByCategory func(ctx context.Context, categoryID int64) ([]models.Item, error)
	create         func(ctx context.Context, in models.ItemInput) (*models.Item, error)
	update         func(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error)
	deleteItem     func(ctx context.Context, id int64) (*models.Item, error)
	search         func(ctx context.Context, query string) ([]models.Item, error)
	lowStock       func(ctx context.Context) ([]models.Item, error)
}

func (m *mockItemStore) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
}

func (m *mockItemStore) List(ctx context.Context) ([]models.Item, error) {
	m.record("List")
	return m.list(ctx)
}

func (m *mockItemStore) Get(ctx context.Context, id int64) (*models.Item, error) {
	m.record("Get")
	return m.get(ctx, id)
}

func (m *mockItemStore) ListByCategory(ctx context.Context, categoryID int64) ([]models.Item, error) {
	m.record("ListByCategory")
	return m.listByCategory(ctx, categoryID)
}

func (m *mockItemStore) Create(ctx context.Context, in models.ItemInput) (*models.Item, error) {
	m.record("Create")
	return m.create(ctx, in)
}

func (m *mockItemStore) Update(ctx context.Context, id int64, in models.ItemInput) (*models.Item, error) {
	m.record("Update")
	return m.update(ctx, id, in)
}

func (m *mockItemStore) Delete(ctx context.Context, id int64) (*models.Item, error) {
	m.record("Delete")
	return m.deleteItem(ctx, id)
}

func (m *mockItemStore) Search(ctx context.Context, query string) ([]models.Item, error) {
	m.record("Search")
	return m.search(ctx, query)
}

func (m *mockItemStore) LowStock(ctx context.Context) ([]models.Item, error) {
	m.record("LowStock")
	return m.lowStock(ctx)
}

// mockChangeRecorder records audit calls.
type mockChangeRecorder struct {
	mu      sync.Mutex
	changes []diff.FieldChange
	itemIDs []int64
	actors  []string

	err error
}

func (m *mockChangeRecorder) Record(_ context.Context, itemID int64, changes []diff.FieldChange, actor string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itemIDs = append(m.itemIDs, itemID)
	m.changes = append(m.changes, changes...)
	m.actors = append(m.actors, actor)
	return m.err
}

// mockCategoryResolver returns a configured category lookup.
type mockCategoryResolver struct {
	get func(ctx context.Context, id int64) (*models.Category, error)
}

func (m *mockCategoryResolver) Get(ctx context.Context, id int64) (*models.Category, error) {
	return m.get(ctx, id)
}

// mockChangeStore returns configured audit reads.
type mockChangeStore struct {
	itemHistory   func(ctx context.Context, itemID int64) ([]models.ChangeRecord, error)
	recentChanges func(ctx context.Context, limit int) ([]models.ChangeRecord, error)
}

func (m *mockChangeStore) ItemHistory(ctx context.Context, itemID int64) ([]models.ChangeRecord, error) {
	return m.itemHistory(ctx, itemID)
}

func (m *mockChangeStore) RecentChanges(ctx context.Context, limit int) ([]models.ChangeRecord, error) {
	return m.recentChanges(ctx, limit)
}

// mockDashboardStore returns configured aggregate queries; any nil
// function reports zero.
type mockDashboardStore struct {
	countItems               func(ctx context.Context) (int, error)
	countCategories          func(ctx context.Context) (int, error)
	inventoryValue           func(ctx context.Context) (float64, error)
	countLowStock            func(ctx context.Context) (int, error)
	countCategoriesWithItems func(ctx context.Context) (int, error)
	countChangesOn           func(ctx context.Context, day time.Time) (int, error)
	recentItems              func(ctx context.Context, limit int) ([]models.Item, error)
}

func (m *mockDashboardStore) CountItems(ctx context.Context) (int, error) {
	if m.countItems == nil {
		return 0, nil
	}
	return m.countItems(ctx)
}

func (m *mockDashboardStore) CountCategories(ctx context.Context) (int, error) {
	if m.countCategories == nil {
		return 0, nil
	}
	return m.countCategories(ctx)
}

func (m *mockDashboardStore) InventoryValue(ctx context.Context) (float64, error) {
	if m.inventoryValue == nil {
		return 0, nil
	}
	return m.inventoryValue(ctx)
}

func (m *mockDashboardStore) CountLowStock(ctx context.Context) (int, error) {
	if m.countLowStock == nil {
		return 0, nil
	}
	return m.countLowStock(ctx)
}

func (m *mockDashboardStore) CountCategoriesWithItems(ctx context.Context) (int, error) {
	if m.countCategoriesWithItems == nil {
		return 0, nil
	}
	return m.countCategoriesWithItems(ctx)
}

func (m *mockDashboardStore) CountChangesOn(ctx context.Context, day time.Time) (int, error) {
	if m.countChangesOn == nil {
		return 0, nil
	}
	return m.countChangesOn(ctx, day)
}

func (m *mockDashboardStore) RecentItems(ctx context.Context, limit int) ([]models.Item, error) {
	if m.recentItems == nil {
		return nil, nil
	}
	return m.recentItems(ctx, limit)
}
