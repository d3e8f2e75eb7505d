package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arquinori/portfolio-backend/internal/config"
	"github.com/arquinori/portfolio-backend/internal/db"
	"github.com/arquinori/portfolio-backend/internal/handlers"
	"github.com/arquinori/portfolio-backend/internal/logger"
	"github.com/arquinori/portfolio-backend/internal/middleware"
	"github.com/arquinori/portfolio-backend/internal/observability"
	"github.com/arquinori/portfolio-backend/internal/repos"
	"github.com/arquinori/portfolio-backend/internal/server"
	"github.com/arquinori/portfolio-backend/internal/services"
	"github.com/arquinori/portfolio-backend/internal/types"
	"github.com/arquinori/portfolio-backend/internal/utils"
)

func main() {
	// Logger
	logMode := utils.GetEnv("LOG_MODE", "development", nil)
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration...")
	cfg, err := config.Load(log)
	if err != nil {
		log.Fatal("Invalid configuration", "error", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		handlers.IncludeErrorDetail = true
	}

	// Tracing
	otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "portfolio-backend",
		Environment: cfg.Env,
	})

	// Postgres
	postgresService, err := db.NewPostgresService(cfg, log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up repos...")
	projectRepo := repos.NewResourceRepo[types.Project](thePG, log, "ProjectRepo")
	experienceRepo := repos.NewResourceRepo[types.Experience](thePG, log, "ExperienceRepo")
	educationRepo := repos.NewResourceRepo[types.Education](thePG, log, "EducationRepo")
	courseRepo := repos.NewResourceRepo[types.Course](thePG, log, "CourseRepo")
	skillRepo := repos.NewResourceRepo[types.Skill](thePG, log, "SkillRepo")
	interestRepo := repos.NewResourceRepo[types.Interest](thePG, log, "InterestRepo")
	profileRepo := repos.NewProfileRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	projectService := services.NewResourceService[types.Project, *types.Project]("Project", projectRepo, log)
	experienceService := services.NewResourceService[types.Experience, *types.Experience]("Experience", experienceRepo, log)
	educationService := services.NewResourceService[types.Education, *types.Education]("Education", educationRepo, log)
	courseService := services.NewResourceService[types.Course, *types.Course]("Course", courseRepo, log)
	skillService := services.NewResourceService[types.Skill, *types.Skill]("Skill", skillRepo, log)
	interestService := services.NewResourceService[types.Interest, *types.Interest]("Interest", interestRepo, log)
	profileService := services.NewProfileService(thePG, log, profileRepo)
	authService := services.NewAuthService(log, cfg.JWTSecret, cfg.AdminPassword, cfg.AdminPasswordHash, cfg.TokenTTL)
	mediaService, err := services.NewMediaService(cfg, log)
	if err != nil {
		log.Warn("Could not init MediaService, uploads disabled", "error", err)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		Cfg:            cfg,
		AuthHandler:    handlers.NewAuthHandler(authService),
		AuthMiddleware: middleware.NewAuthMiddleware(log, authService),
		ProfileHandler: handlers.NewProfileHandler(profileService),
		UploadHandler:  handlers.NewUploadHandler(mediaService),
		Projects:       handlers.NewResourceHandler(projectService),
		Experience:     handlers.NewResourceHandler(experienceService),
		Education:      handlers.NewResourceHandler(educationService),
		Courses:        handlers.NewResourceHandler(courseService),
		Skills:         handlers.NewResourceHandler(skillService),
		Interests:      handlers.NewResourceHandler(interestService),
		GlobalLimiter:  middleware.NewRateLimiter(cfg, log, cfg.RateLimitWindow, cfg.RateLimitMax),
		LoginLimiter:   middleware.NewRateLimiter(cfg, log, cfg.RateLimitWindow, cfg.LoginLimitMax),
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		log.Info("Server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server shutdown failed", "error", err)
	}
	if otelShutdown != nil {
		_ = otelShutdown(ctx)
	}
}
