package store_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/db"
	"github.com/electromart/inventory/internal/db/migrations"
	"github.com/electromart/inventory/internal/dbpool"
	"github.com/electromart/inventory/internal/models"
	"github.com/electromart/inventory/internal/store"
)

// testEnv holds shared test infrastructure (single pool across all tests).
type testEnv struct {
	pool *dbpool.Pool
	log  *logrus.Logger
}

var sharedEnv *testEnv

func getTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if sharedEnv != nil {
		return sharedEnv
	}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()

	pool, err := dbpool.NewPool(ctx, dbURL)
	if err != nil {
		t.Fatalf("connecting to test DB: %v", err)
	}

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	if err := db.RunMigrations(ctx, pool, log, migrations.FS); err != nil {
		t.Fatalf("running migrations: %v", err)
	}

	sharedEnv = &testEnv{
		pool: pool,
		log:  log,
	}

	return sharedEnv
}

// setupTestBase returns a Base backed by the shared test database.
func setupTestBase(t *testing.T) store.Base {
	t.Helper()

	env := getTestEnv(t)

	return store.Base{Pool: env.pool, Log: env.log}
}

// createTestCategory inserts a category with a unique name, removed after
// the test.
func createTestCategory(t *testing.T, base store.Base) *models.Category {
	t.Helper()

	ctx := context.Background()
	categories := store.NewCategoryStore(base)

	in := models.CategoryInput{
		Name:        fmt.Sprintf("test-category-%s", uuid.New().String()[:8]),
		Description: "created by store tests",
	}

	category, err := categories.Create(ctx, in)
	if err != nil {
		t.Fatalf("creating test category: %v", err)
	}

	t.Cleanup(func() {
		_ = categories.Delete(context.Background(), category.ID)
	})

	return category
}

// createTestItem inserts an item in the given category, removed after the
// test (before the category cleanup runs).
func createTestItem(t *testing.T, base store.Base, categoryID int64) *models.Item {
	t.Helper()

	ctx := context.Background()
	items := store.NewItemStore(base)

	sku := "SKU-" + uuid.New().String()[:8]
	in := models.ItemInput{
		CategoryID:    categoryID,
		Name:          fmt.Sprintf("test-item-%s", uuid.New().String()[:8]),
		Price:         99.99,
		StockQuantity: 10,
		SKU:           &sku,
	}

	item, err := items.Create(ctx, in)
	if err != nil {
		t.Fatalf("creating test item: %v", err)
	}

	t.Cleanup(func() {
		_, _ = items.Delete(context.Background(), item.ID)
	})

	return item
}
