package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler serves the small JSON surface under /api/v1.
type APIHandler struct {
	db        Pinger
	dashboard DashboardService
	changes   ChangeService
	version   string
	log       *logrus.Logger
}

// NewAPIHandler creates an APIHandler.
func NewAPIHandler(db Pinger, dashboard DashboardService, changes ChangeService, version string, log *logrus.Logger) *APIHandler {
	return &APIHandler{db: db, dashboard: dashboard, changes: changes, version: version, log: log}
}

// Health reports database liveness.
func (h *APIHandler) Health(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		h.log.WithError(err).Error("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unavailable",
			"version": h.version,
		})

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": h.version,
	})
}

// Stats returns the dashboard statistics as JSON.
func (h *APIHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboard.Stats(c.Request.Context()))
}

// Changes returns the recent change records as JSON. The limit query
// parameter caps the result, bounded by the page default.
func (h *APIHandler) Changes(c *gin.Context) {
	limit := recentChangesPageLimit

	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "limit must be a positive integer")

			return
		}

		if v < limit {
			limit = v
		}
	}

	records := h.changes.RecentChanges(c.Request.Context(), limit)

	c.JSON(http.StatusOK, gin.H{
		"changes": records,
		"count":   len(records),
	})
}
