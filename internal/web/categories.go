package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/models"
)

// CategoryHandler serves the category pages.
type CategoryHandler struct {
	categories CategoryService
	log        *logrus.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(categories CategoryService, log *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, log: log}
}

// List renders the category index with item counts.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing categories")
		renderServerError(c)

		return
	}

	c.HTML(http.StatusOK, "categories_index", withFlash(c, viewData{
		"Title":      "Categories",
		"Categories": categories,
	}))
}

// NewForm renders the blank create form.
func (h *CategoryHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "categories_form", viewData{
		"Title": "New Category",
		"Mode":  "create",
		"Form":  models.CategoryInput{},
	})
}

// Create handles the create form submission.
func (h *CategoryHandler) Create(c *gin.Context) {
	in := parseCategoryForm(c)

	if err := in.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "categories_form", viewData{
			"Title": "New Category",
			"Mode":  "create",
			"Form":  in,
			"Error": "Name is required",
		})

		return
	}

	category, err := h.categories.Create(c.Request.Context(), in)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateName) {
			c.HTML(http.StatusConflict, "categories_form", viewData{
				"Title": "New Category",
				"Mode":  "create",
				"Form":  in,
				"Error": "A category with this name already exists",
			})

			return
		}

		h.log.WithError(err).Error("creating category")
		renderServerError(c)

		return
	}

	redirectWithSuccess(c, fmt.Sprintf("/categories/%d", category.ID), "Category created successfully")
}

// Show renders a category with its items.
func (h *CategoryHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, items, err := h.categories.GetWithItems(c.Request.Context(), id)
	if err != nil {
		h.categoryLookupError(c, err)

		return
	}

	c.HTML(http.StatusOK, "categories_show", withFlash(c, viewData{
		"Title":    category.Name,
		"Category": category,
		"Items":    items,
	}))
}

// EditForm renders the edit form pre-filled from the stored category.
func (h *CategoryHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		h.categoryLookupError(c, err)

		return
	}

	c.HTML(http.StatusOK, "categories_form", viewData{
		"Title":    "Edit " + category.Name,
		"Mode":     "edit",
		"Category": category,
		"Form":     models.CategoryInput{Name: category.Name, Description: category.Description},
	})
}

// Update handles the edit form submission.
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	in := parseCategoryForm(c)

	if err := in.Validate(); err != nil {
		c.HTML(http.StatusBadRequest, "categories_form", viewData{
			"Title": "Edit Category",
			"Mode":  "edit",
			"Form":  in,
			"Error": "Name is required",
		})

		return
	}

	category, err := h.categories.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, models.ErrCategoryNotFound) {
			renderNotFound(c)

			return
		}

		if errors.Is(err, models.ErrDuplicateName) {
			c.HTML(http.StatusConflict, "categories_form", viewData{
				"Title": "Edit Category",
				"Mode":  "edit",
				"Form":  in,
				"Error": "A category with this name already exists",
			})

			return
		}

		h.log.WithError(err).WithField("category_id", id).Error("updating category")
		renderServerError(c)

		return
	}

	redirectWithSuccess(c, fmt.Sprintf("/categories/%d", category.ID), "Category updated successfully")
}

// DeleteForm renders the delete confirmation page, warning up front when
// the category still has items and the deletion is bound to fail.
func (h *CategoryHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		h.categoryLookupError(c, err)

		return
	}

	hasItems, err := h.categories.HasItems(c.Request.Context(), id)
	if err != nil {
		h.log.WithError(err).WithField("category_id", id).Error("checking category items")
		renderServerError(c)

		return
	}

	c.HTML(http.StatusOK, "categories_delete", viewData{
		"Title":    "Delete " + category.Name,
		"Category": category,
		"HasItems": hasItems,
	})
}

// Delete handles the delete confirmation submission. A category that
// still has items re-renders the confirmation page with guidance.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.categories.Delete(c.Request.Context(), id)
	if err == nil {
		redirectWithSuccess(c, "/categories", "Category deleted")

		return
	}

	if errors.Is(err, models.ErrCategoryNotFound) {
		renderNotFound(c)

		return
	}

	if errors.Is(err, models.ErrCategoryHasItems) {
		category, lookupErr := h.categories.Get(c.Request.Context(), id)
		if lookupErr != nil {
			h.categoryLookupError(c, lookupErr)

			return
		}

		c.HTML(http.StatusConflict, "categories_delete", viewData{
			"Title":    "Delete " + category.Name,
			"Category": category,
			"HasItems": true,
			"Error":    "This category still has items. Delete or move them first.",
		})

		return
	}

	h.log.WithError(err).WithField("category_id", id).Error("deleting category")
	renderServerError(c)
}

func (h *CategoryHandler) categoryLookupError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrCategoryNotFound) {
		renderNotFound(c)

		return
	}

	h.log.WithError(err).Error("loading category")
	renderServerError(c)
}
