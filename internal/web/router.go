package web

import (
	"embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/electromart/inventory/internal/middleware"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log           *logrus.Logger
	DB            Pinger
	Items         ItemService
	Categories    CategoryService
	Changes       ChangeService
	Dashboard     DashboardService
	CORSOrigins   []string
	AdminPassword string
	Version       string
}

// templateFuncs are the helpers available inside the HTML templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"price": formatPrice,
		"specs": formatSpecs,
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"orDash": func(s *string) string {
			if s == nil || *s == "" {
				return "-"
			}
			return *s
		},
	}
}

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerPages sets up the server-rendered HTML routes.
func registerPages(r *gin.Engine, deps *RouterDeps) {
	dashboard := NewDashboardHandler(deps.Dashboard, deps.Changes, deps.Log)
	items := NewItemHandler(deps.Items, deps.Categories, deps.Changes, deps.AdminPassword, deps.Log)
	categories := NewCategoryHandler(deps.Categories, deps.Log)
	changes := NewChangeHandler(deps.Changes, deps.Log)

	r.GET("/", dashboard.Show)
	r.GET("/search", items.Search)
	r.GET("/low-stock", items.LowStock)
	r.GET("/changes", changes.List)

	// Items. Mutations are plain HTML form POSTs.
	r.GET("/items", items.List)
	r.GET("/items/new", items.NewForm)
	r.POST("/items", items.Create)
	r.GET("/items/:id", items.Show)
	r.GET("/items/:id/edit", items.EditForm)
	r.POST("/items/:id", items.Update)
	r.GET("/items/:id/delete", items.DeleteForm)
	r.POST("/items/:id/delete", items.Delete)
	r.GET("/items/:id/history", items.History)

	// Categories.
	r.GET("/categories", categories.List)
	r.GET("/categories/new", categories.NewForm)
	r.POST("/categories", categories.Create)
	r.GET("/categories/:id", categories.Show)
	r.GET("/categories/:id/edit", categories.EditForm)
	r.POST("/categories/:id", categories.Update)
	r.GET("/categories/:id/delete", categories.DeleteForm)
	r.POST("/categories/:id/delete", categories.Delete)

	// API paths get a JSON 404; everything else gets the error page.
	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")

			return
		}

		renderNotFound(c)
	})
}

// registerAPI sets up the JSON routes under /api/v1 behind CORS.
func registerAPI(r *gin.Engine, deps *RouterDeps) {
	api := r.Group("/api/v1")
	api.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))

	h := NewAPIHandler(deps.DB, deps.Dashboard, deps.Changes, deps.Version, deps.Log)

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)
	api.GET("/changes", h.Changes)
}

// NewRouter creates and configures the Gin engine with all middleware,
// templates and routes.
func NewRouter(deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)

	tmpl := template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.tmpl"))
	r.SetHTMLTemplate(tmpl)

	registerPages(r, deps)
	registerAPI(r, deps)

	return r
}
