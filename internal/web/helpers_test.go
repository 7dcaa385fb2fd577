package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/web"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// testDeps returns RouterDeps with all mocks wired; tests override the
// mock functions they care about.
type testDeps struct {
	db         *mockPinger
	items      *mockItemService
	categories *mockCategoryService
	changes    *mockChangeService
	dashboard  *mockDashboardService
	adminPass  string
}

func newTestDeps() *testDeps {
	return &testDeps{
		db:         &mockPinger{},
		items:      &mockItemService{},
		categories: &mockCategoryService{},
		changes:    &mockChangeService{},
		dashboard:  &mockDashboardService{},
	}
}

func newTestRouter(d *testDeps) http.Handler {
	return web.NewRouter(&web.RouterDeps{
		Log:           testLogger(),
		DB:            d.db,
		Items:         d.items,
		Categories:    d.categories,
		Changes:       d.changes,
		Dashboard:     d.dashboard,
		CORSOrigins:   []string{"http://localhost:3000"},
		AdminPassword: d.adminPass,
		Version:       "test",
	})
}

// doGet performs a GET request and returns the recorder.
func doGet(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

// doForm performs a form-encoded POST request and returns the recorder.
func doForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}
