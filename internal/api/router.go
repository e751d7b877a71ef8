package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/procurex/committee-service/internal/api/handler"
	"github.com/procurex/committee-service/internal/api/middleware"
	"github.com/procurex/committee-service/internal/core/domain"
	"github.com/procurex/committee-service/internal/core/ports"
	"github.com/procurex/committee-service/internal/core/service"
	mongodb "github.com/procurex/committee-service/internal/infrastructure/db/mongo"
	redisdb "github.com/procurex/committee-service/internal/infrastructure/db/redis"
	"github.com/procurex/committee-service/internal/pkg/config"
)

// RouterDeps carries everything NewRouter needs to assemble the service.
type RouterDeps struct {
	Cfg    *config.Config
	DB     *mongo.Database
	Redis  *redis.Client
	Files  ports.FileStore
	Mailer ports.Mailer
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger, deps.Cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("committee_service"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	committeeRepo := mongodb.NewCommitteeRepository(deps.DB)
	tokenStore := redisdb.NewTokenStore(deps.Redis)

	authService := service.NewAuthService(userRepo, tokenStore, deps.Mailer, deps.Cfg.JWTSecret, 24*time.Hour, deps.Logger)
	notifier := service.NewNotifier(deps.Mailer, deps.Logger)
	committeeService := service.NewCommitteeService(committeeRepo, userRepo, deps.Files, notifier, deps.Logger)

	authHandler := handler.NewAuthHandler(authService)
	committeeHandler := handler.NewCommitteeHandler(committeeService)
	authMiddleware := middleware.Auth(deps.Cfg.JWTSecret)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/forgot-password", authHandler.ForgotPassword)
	auth.PATCH("/reset-password/:token", authHandler.ResetPassword)
	auth.PATCH("/update-password", authHandler.UpdatePassword, authMiddleware)
	auth.GET("/users", authHandler.ListUsers, authMiddleware)

	// --- Committee routes (all behind auth; creation restricted) ---
	committees := e.Group("/committees", authMiddleware)
	committees.POST("", committeeHandler.Create, middleware.RBAC(domain.RoleAdmin, domain.RoleProcurementOfficer))
	committees.GET("", committeeHandler.List)
	committees.GET("/:id", committeeHandler.Get)
	committees.GET("/:id/download", committeeHandler.Download)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
