package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/arquinori/portfolio-backend/internal/config"
	"github.com/arquinori/portfolio-backend/internal/handlers"
	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/middleware"
)

type RouterConfig struct {
	Log            *logger.Logger
	Cfg            *config.Config
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	ProfileHandler *handlers.ProfileHandler
	UploadHandler  *handlers.UploadHandler

	Projects   handlers.CRUD
	Experience handlers.CRUD
	Education  handlers.CRUD
	Courses    handlers.CRUD
	Skills     handlers.CRUD
	Interests  handlers.CRUD

	GlobalLimiter middleware.RateLimiter
	LoginLimiter  middleware.RateLimiter
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))
	router.Use(middleware.CORS(cfg.Cfg))
	router.Use(otelgin.Middleware("portfolio-backend"))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": "Backend active"})
	})

	api := router.Group("/api/v1")
	if cfg.GlobalLimiter != nil {
		api.Use(middleware.RateLimit(cfg.GlobalLimiter, cfg.Log, "global"))
	}

	api.GET("/health", handlers.HealthCheck)

	login := []gin.HandlerFunc{}
	if cfg.LoginLimiter != nil {
		login = append(login, middleware.RateLimit(cfg.LoginLimiter, cfg.Log, "login"))
	}
	login = append(login, cfg.AuthHandler.Login)
	api.POST("/auth/login", login...)

	requireAdmin := cfg.AuthMiddleware.RequireAdmin()

	api.GET("/profile", cfg.ProfileHandler.Get)
	api.PUT("/profile", requireAdmin, cfg.ProfileHandler.Update)

	api.POST("/upload", requireAdmin, cfg.UploadHandler.Upload)

	registerResource(api, "projects", cfg.Projects, requireAdmin)
	registerResource(api, "experience", cfg.Experience, requireAdmin)
	registerResource(api, "education", cfg.Education, requireAdmin)
	registerResource(api, "courses", cfg.Courses, requireAdmin)
	registerResource(api, "skills", cfg.Skills, requireAdmin)
	registerResource(api, "interests", cfg.Interests, requireAdmin)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "message": "route not found"})
	})

	return router
}

// registerResource binds the uniform verb set of one resource kind. Reads
// are public, mutations sit behind the bearer gate.
func registerResource(group *gin.RouterGroup, path string, h handlers.CRUD, requireAdmin gin.HandlerFunc) {
	group.GET("/"+path, h.GetAll)
	group.GET("/"+path+"/:id", h.GetByID)
	group.POST("/"+path, requireAdmin, h.Create)
	group.PUT("/"+path+"/:id", requireAdmin, h.Update)
	group.DELETE("/"+path+"/:id", requireAdmin, h.Delete)
}
