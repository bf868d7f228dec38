package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tibtennis/roster-api/internal/api/handler"
	"github.com/tibtennis/roster-api/internal/api/middleware"
	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/service"
	"github.com/tibtennis/roster-api/internal/infrastructure/config"
	mongodb "github.com/tibtennis/roster-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tibtennis/roster-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("roster"))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(db)
	tokens := service.NewTokenService(cfg.JWTSecret)
	limiter := redisdb.NewLoginLimiter(rdb, cfg.Limiter.MaxAttempts, cfg.Limiter.Window)
	authService := service.NewAuthService(users, tokens, limiter, service.AdminCredentials{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
	}, cfg.Team.ID, log)
	rosterService := service.NewRosterService(users, log)

	authHandler := handler.NewAuthHandler(authService)
	playerHandler := handler.NewPlayerHandler(rosterService)

	authRequired := middleware.Auth(tokens)
	adminOnly := middleware.RequireRole(domain.RoleAdmin, domain.RoleSuperAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.PlayerLogin)
	auth.POST("/admin/login", authHandler.AdminLogin)
	auth.GET("/verify", authHandler.Verify, authRequired)

	// --- Player routes ---
	players := e.Group("/api/players", authRequired)
	players.GET("", playerHandler.List)
	players.POST("", playerHandler.Create, adminOnly)
	players.PUT("/:id", playerHandler.Update, adminOnly)
	players.DELETE("/:id", playerHandler.Delete, adminOnly)
	players.POST("/reorder", playerHandler.Reorder, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
