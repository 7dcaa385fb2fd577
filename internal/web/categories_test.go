package web_test

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/electromart/inventory/internal/models"
)

func categoryFixture() *models.Category {
	return &models.Category{ID: 10, Name: "Gadgets", Description: "Small electronics"}
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	deps := newTestDeps()
	deps.categories.create = func(_ context.Context, in models.CategoryInput) (*models.Category, error) {
		if in.Name != "Gadgets" {
			t.Errorf("name = %q", in.Name)
		}
		return nil, models.ErrDuplicateName
	}
	r := newTestRouter(deps)

	w := doForm(r, "/categories", url.Values{"name": {"Gadgets"}})

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already exists") {
		t.Error("expected duplicate name message")
	}
}

func TestCategoryCreateMissingName(t *testing.T) {
	deps := newTestDeps()
	r := newTestRouter(deps)

	w := doForm(r, "/categories", url.Values{"name": {"  "}})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(deps.categories.calls) != 0 {
		t.Errorf("invalid input must not reach the service, got %v", deps.categories.calls)
	}
}

func TestCategoryShowListsItems(t *testing.T) {
	deps := newTestDeps()
	deps.categories.getWithItems = func(_ context.Context, id int64) (*models.Category, []models.Item, error) {
		if id != 10 {
			t.Errorf("loaded category %d, want 10", id)
		}
		return categoryFixture(), []models.Item{{ID: 1, Name: "Widget", CategoryID: 10}}, nil
	}
	r := newTestRouter(deps)

	w := doGet(r, "/categories/10")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	body := w.Body.String()
	if !strings.Contains(body, "Gadgets") || !strings.Contains(body, "Widget") {
		t.Error("expected category and its item in body")
	}
}

func TestCategoryDeleteBlockedWhileItemsRemain(t *testing.T) {
	deps := newTestDeps()
	deps.categories.deleteCategory = func(_ context.Context, _ int64) error {
		return models.ErrCategoryHasItems
	}
	deps.categories.get = func(_ context.Context, _ int64) (*models.Category, error) {
		return categoryFixture(), nil
	}
	r := newTestRouter(deps)

	w := doForm(r, "/categories/10/delete", nil)

	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	if !strings.Contains(w.Body.String(), "still has items") {
		t.Error("expected guidance message")
	}
}

func TestCategoryDeleteFormWarnsWhenItemsRemain(t *testing.T) {
	deps := newTestDeps()
	deps.categories.get = func(_ context.Context, id int64) (*models.Category, error) {
		if id != 10 {
			t.Errorf("loaded category %d, want 10", id)
		}
		return categoryFixture(), nil
	}
	deps.categories.hasItems = func(_ context.Context, id int64) (bool, error) {
		if id != 10 {
			t.Errorf("checked category %d, want 10", id)
		}
		return true, nil
	}
	r := newTestRouter(deps)

	w := doGet(r, "/categories/10/delete")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "still has items") {
		t.Error("expected up-front warning about remaining items")
	}
}

func TestCategoryDeleteFormEmptyCategory(t *testing.T) {
	deps := newTestDeps()
	deps.categories.get = func(_ context.Context, _ int64) (*models.Category, error) {
		return categoryFixture(), nil
	}
	r := newTestRouter(deps)

	w := doGet(r, "/categories/10/delete")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "can be deleted") {
		t.Error("expected empty-category confirmation text")
	}
}

func TestCategoryDeleteSuccess(t *testing.T) {
	deps := newTestDeps()
	deps.categories.deleteCategory = func(_ context.Context, id int64) error {
		if id != 10 {
			t.Errorf("deleted category %d, want 10", id)
		}
		return nil
	}
	r := newTestRouter(deps)

	w := doForm(r, "/categories/10/delete", nil)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Location"), "/categories?success=") {
		t.Errorf("location = %q", w.Header().Get("Location"))
	}
}

func TestCategoryUpdateNotFound(t *testing.T) {
	deps := newTestDeps()
	deps.categories.update = func(_ context.Context, _ int64, _ models.CategoryInput) (*models.Category, error) {
		return nil, models.ErrCategoryNotFound
	}
	r := newTestRouter(deps)

	w := doForm(r, "/categories/99", url.Values{"name": {"Renamed"}})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
