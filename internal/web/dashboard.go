package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// recentChangesOnDashboard caps the change feed shown on the dashboard.
const recentChangesOnDashboard = 10

// DashboardHandler serves the landing page.
type DashboardHandler struct {
	dashboard DashboardService
	changes   ChangeService
	log       *logrus.Logger
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(dashboard DashboardService, changes ChangeService, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, changes: changes, log: log}
}

// Show renders the dashboard: aggregate statistics, the newest items and
// the latest changes. All three degrade independently, so the page always
// renders.
func (h *DashboardHandler) Show(c *gin.Context) {
	ctx := c.Request.Context()

	c.HTML(http.StatusOK, "dashboard", withFlash(c, viewData{
		"Title":         "Dashboard",
		"Stats":         h.dashboard.Stats(ctx),
		"RecentItems":   h.dashboard.RecentItems(ctx),
		"RecentChanges": h.changes.RecentChanges(ctx, recentChangesOnDashboard),
	}))
}
