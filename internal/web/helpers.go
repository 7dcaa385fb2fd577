package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/middleware"
)

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		fields := logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		}
		if rid, exists := c.Get(middleware.RequestIDKey); exists {
			fields["request_id"] = rid
		}
		log.WithFields(fields).Info("request")
	}
}

// parseID parses the :id path parameter. A non-numeric ID renders the
// 404 page and reports false.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		renderNotFound(c)

		return 0, false
	}

	return id, true
}

// viewData is the bag handed to HTML templates.
type viewData map[string]any

// withFlash copies the success message from the redirect query string
// into the view data.
func withFlash(c *gin.Context, data viewData) viewData {
	if data == nil {
		data = viewData{}
	}

	if msg := c.Query("success"); msg != "" {
		data["Success"] = msg
	}

	return data
}

func renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "error", viewData{
		"Title":   "Not Found",
		"Message": "The page you requested does not exist.",
	})
	c.Abort()
}

// renderServerError shows the generic error page. The underlying cause is
// logged by the caller, never shown to the client.
func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error", viewData{
		"Title":   "Something went wrong",
		"Message": "An internal error occurred. Please try again.",
	})
	c.Abort()
}

// formatPrice renders a price for templates, e.g. "$1299.99".
func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// formatSpecs renders a specification map as JSON for the form textarea,
// or "" when there are no specifications.
func formatSpecs(specs map[string]any) string {
	if len(specs) == 0 {
		return ""
	}

	b, err := json.Marshal(specs)
	if err != nil {
		return ""
	}

	return string(b)
}
