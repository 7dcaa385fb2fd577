package web

import (
	"github.com/gin-gonic/gin"

	"github.com/electromart/inventory/internal/metrics"
	"github.com/electromart/inventory/internal/middleware"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
)

// respondError writes a standardized JSON error response, tagging it with
// the request ID set by the request ID middleware, and aborts the request.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()

	resp := gin.H{
		"code":    code,
		"message": message,
	}
	if rid := c.GetString(middleware.RequestIDKey); rid != "" {
		resp["request_id"] = rid
	}

	c.AbortWithStatusJSON(status, resp)
}
