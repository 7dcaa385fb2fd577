package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// recentChangesPageLimit caps the full change-feed page.
const recentChangesPageLimit = 100

// ChangeHandler serves the change-feed page.
type ChangeHandler struct {
	changes ChangeService
	log     *logrus.Logger
}

// NewChangeHandler creates a ChangeHandler.
func NewChangeHandler(changes ChangeService, log *logrus.Logger) *ChangeHandler {
	return &ChangeHandler{changes: changes, log: log}
}

// List renders the recent changes across all items.
func (h *ChangeHandler) List(c *gin.Context) {
	records := h.changes.RecentChanges(c.Request.Context(), recentChangesPageLimit)

	c.HTML(http.StatusOK, "changes", viewData{
		"Title":   "Recent Changes",
		"Changes": records,
	})
}
