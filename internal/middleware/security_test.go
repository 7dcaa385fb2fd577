package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/middleware"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.SecurityHeaders())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	expected := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https:; frame-ancestors 'none'",
		"Permissions-Policy":      "camera=(), microphone=(), geolocation=()",
	}

	for header, want := range expected {
		got := w.Header().Get(header)
		if got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestRequestIDGeneratesServerID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	r := gin.New()
	r.Use(middleware.RequestID(log))

	var ctxID string
	r.GET("/test", func(c *gin.Context) {
		ctxID = c.GetString(middleware.RequestIDKey)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied")
	r.ServeHTTP(w, req)

	headerID := w.Header().Get(middleware.RequestIDHeader)
	if headerID == "" || headerID == "client-supplied" {
		t.Errorf("header ID = %q, want fresh server-side ID", headerID)
	}
	if ctxID != headerID {
		t.Errorf("context ID %q != header ID %q", ctxID, headerID)
	}
}
