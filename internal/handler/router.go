package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Users    *api.UserHandler
	Items    *api.ItemHandler
	Bookings *api.BookingHandler
	Requests *api.ItemRequestHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics, h Handlers) {
	registerValidators()
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, cfg, m, h)
}

func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", validators.NotBlank)
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger, m *metrics.Metrics) {
	// outermost, so panics in any later middleware are caught
	engine.Use(middleware.Recovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, m *metrics.Metrics, h Handlers) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	users := engine.Group("/users")
	addRoutes(users, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Users.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Users.List},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Users.Get},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Users.Patch},
		{Method: http.MethodDelete, Path: "/:id", Handler: h.Users.Delete},
	})

	items := engine.Group("/items")
	items.Use(middleware.RequireCaller())
	addRoutes(items, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Items.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Items.ListOwn},
		{Method: http.MethodGet, Path: "/search", Handler: h.Items.Search},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Items.Get},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Items.Patch},
		{Method: http.MethodPost, Path: "/:id/comment", Handler: h.Items.Comment},
	})

	bookings := engine.Group("/bookings")
	bookings.Use(middleware.RequireCaller())
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Bookings.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Bookings.ListAsBooker},
		{Method: http.MethodGet, Path: "/owner", Handler: h.Bookings.ListAsOwner},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Bookings.Get},
		{Method: http.MethodPatch, Path: "/:id", Handler: h.Bookings.Decide},
	})

	requests := engine.Group("/requests")
	requests.Use(middleware.RequireCaller())
	addRoutes(requests, []route{
		{Method: http.MethodPost, Path: "", Handler: h.Requests.Create},
		{Method: http.MethodGet, Path: "", Handler: h.Requests.ListOwn},
		{Method: http.MethodGet, Path: "/all", Handler: h.Requests.ListOthers},
		{Method: http.MethodGet, Path: "/:id", Handler: h.Requests.Get},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
