package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/models"
)

// ItemHandler serves the item pages.
type ItemHandler struct {
	items         ItemService
	categories    CategoryService
	changes       ChangeService
	adminPassword string
	log           *logrus.Logger
}

// NewItemHandler creates an ItemHandler. adminPassword may be empty, in
// which case item deletion is unguarded.
func NewItemHandler(items ItemService, categories CategoryService, changes ChangeService, adminPassword string, log *logrus.Logger) *ItemHandler {
	return &ItemHandler{
		items:         items,
		categories:    categories,
		changes:       changes,
		adminPassword: adminPassword,
		log:           log,
	}
}

// List renders the item index.
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.items.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing items")
		renderServerError(c)

		return
	}

	c.HTML(http.StatusOK, "items_index", withFlash(c, viewData{
		"Title": "Items",
		"Items": items,
	}))
}

// NewForm renders the blank create form.
func (h *ItemHandler) NewForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, viewData{
		"Title": "New Item",
		"Mode":  "create",
		"Form":  models.ItemInput{},
	})
}

// Create handles the create form submission.
func (h *ItemHandler) Create(c *gin.Context) {
	in, err := parseItemForm(c)
	if err == nil {
		err = in.Validate()
	}

	if err != nil {
		h.renderForm(c, http.StatusBadRequest, viewData{
			"Title": "New Item",
			"Mode":  "create",
			"Form":  in,
			"Error": itemFormMessage(err),
		})

		return
	}

	item, err := h.items.Create(c.Request.Context(), in)
	if err != nil {
		if msg, ok := itemConflictMessage(err); ok {
			h.renderForm(c, http.StatusConflict, viewData{
				"Title": "New Item",
				"Mode":  "create",
				"Form":  in,
				"Error": msg,
			})

			return
		}

		h.log.WithError(err).Error("creating item")
		renderServerError(c)

		return
	}

	redirectWithSuccess(c, fmt.Sprintf("/items/%d", item.ID), "Item created successfully")
}

// Show renders the item detail page with its change history.
func (h *ItemHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.itemLookupError(c, err)

		return
	}

	history := h.changes.ItemHistory(c.Request.Context(), id)

	c.HTML(http.StatusOK, "items_show", withFlash(c, viewData{
		"Title":   item.Name,
		"Item":    item,
		"History": history,
	}))
}

// EditForm renders the edit form pre-filled from the stored item.
func (h *ItemHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.itemLookupError(c, err)

		return
	}

	h.renderForm(c, http.StatusOK, viewData{
		"Title": "Edit " + item.Name,
		"Mode":  "edit",
		"Item":  item,
		"Form":  itemToInput(item),
	})
}

// Update handles the edit form submission, then redirects with the change
// summaries in the success message.
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	in, err := parseItemForm(c)
	if err == nil {
		err = in.Validate()
	}

	if err != nil {
		h.renderEditError(c, id, in, http.StatusBadRequest, itemFormMessage(err))

		return
	}

	item, summaries, err := h.items.Update(c.Request.Context(), id, in, c.PostForm("changed_by"))
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			renderNotFound(c)

			return
		}

		if msg, ok := itemConflictMessage(err); ok {
			h.renderEditError(c, id, in, http.StatusConflict, msg)

			return
		}

		h.log.WithError(err).WithField("item_id", id).Error("updating item")
		renderServerError(c)

		return
	}

	msg := "Item updated successfully"
	if len(summaries) > 0 {
		msg += ". Changes: " + strings.Join(summaries, ", ")
	}

	redirectWithSuccess(c, fmt.Sprintf("/items/%d", item.ID), msg)
}

// DeleteForm renders the delete confirmation page.
func (h *ItemHandler) DeleteForm(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.itemLookupError(c, err)

		return
	}

	c.HTML(http.StatusOK, "items_delete", viewData{
		"Title":         "Delete " + item.Name,
		"Item":          item,
		"NeedsPassword": h.adminPassword != "",
	})
}

// Delete handles the delete confirmation submission.
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if h.adminPassword != "" && c.PostForm("admin_password") != h.adminPassword {
		item, err := h.items.Get(c.Request.Context(), id)
		if err != nil {
			h.itemLookupError(c, err)

			return
		}

		c.HTML(http.StatusForbidden, "items_delete", viewData{
			"Title":         "Delete " + item.Name,
			"Item":          item,
			"NeedsPassword": true,
			"Error":         "Incorrect admin password",
		})

		return
	}

	item, err := h.items.Delete(c.Request.Context(), id)
	if err != nil {
		h.itemLookupError(c, err)

		return
	}

	redirectWithSuccess(c, fmt.Sprintf("/categories/%d", item.CategoryID), fmt.Sprintf("Item %q deleted", item.Name))
}

// History renders the full change history page for an item.
func (h *ItemHandler) History(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.itemLookupError(c, err)

		return
	}

	c.HTML(http.StatusOK, "items_history", viewData{
		"Title":   item.Name + " History",
		"Item":    item,
		"History": h.changes.ItemHistory(c.Request.Context(), id),
	})
}

// Search renders items matching the q query parameter.
func (h *ItemHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	var (
		items []models.Item
		err   error
	)

	if query != "" {
		items, err = h.items.Search(c.Request.Context(), query)
		if err != nil {
			h.log.WithError(err).WithField("query", query).Error("searching items")
			renderServerError(c)

			return
		}
	}

	c.HTML(http.StatusOK, "search", viewData{
		"Title": "Search",
		"Query": query,
		"Items": items,
	})
}

// LowStock renders items below the low-stock threshold.
func (h *ItemHandler) LowStock(c *gin.Context) {
	items, err := h.items.LowStock(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing low-stock items")
		renderServerError(c)

		return
	}

	c.HTML(http.StatusOK, "low_stock", viewData{
		"Title":     "Low Stock",
		"Items":     items,
		"Threshold": models.LowStockThreshold,
	})
}

// renderForm renders the item form with the category select populated.
func (h *ItemHandler) renderForm(c *gin.Context, status int, data viewData) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing categories for item form")
		renderServerError(c)

		return
	}

	data["Categories"] = categories
	c.HTML(status, "items_form", data)
}

func (h *ItemHandler) renderEditError(c *gin.Context, id int64, in models.ItemInput, status int, msg string) {
	item, err := h.items.Get(c.Request.Context(), id)
	if err != nil {
		h.itemLookupError(c, err)

		return
	}

	h.renderForm(c, status, viewData{
		"Title": "Edit " + item.Name,
		"Mode":  "edit",
		"Item":  item,
		"Form":  in,
		"Error": msg,
	})
}

func (h *ItemHandler) itemLookupError(c *gin.Context, err error) {
	if errors.Is(err, models.ErrItemNotFound) {
		renderNotFound(c)

		return
	}

	h.log.WithError(err).Error("loading item")
	renderServerError(c)
}

// itemToInput pre-fills the edit form from the stored item.
func itemToInput(item *models.Item) models.ItemInput {
	return models.ItemInput{
		CategoryID:     item.CategoryID,
		Name:           item.Name,
		Brand:          item.Brand,
		Model:          item.Model,
		Description:    item.Description,
		Specifications: item.Specifications,
		Price:          item.Price,
		StockQuantity:  item.StockQuantity,
		SKU:            item.SKU,
		ImageURL:       item.ImageURL,
	}
}

// itemFormMessage maps validation errors to inline form messages.
func itemFormMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrMissingName):
		return "Name is required"
	case errors.Is(err, models.ErrMissingCategory):
		return "Category is required"
	case errors.Is(err, errBadSpecifications):
		return "Specifications must be a valid JSON object"
	default:
		return "Invalid input"
	}
}

// itemConflictMessage maps store conflicts to inline form messages.
func itemConflictMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, models.ErrDuplicateSKU):
		return "An item with this SKU already exists", true
	case errors.Is(err, models.ErrInvalidCategory):
		return "The selected category no longer exists", true
	default:
		return "", false
	}
}

// redirectWithSuccess sends a see-other redirect with the message in the
// success query parameter.
func redirectWithSuccess(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?success="+url.QueryEscape(msg))
}
