package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/space/planet-moon-api/internal/api/handler"
	"github.com/space/planet-moon-api/internal/api/middleware"
	"github.com/space/planet-moon-api/internal/core/domain"
	"github.com/space/planet-moon-api/internal/core/ports"
)

// RouterConfig carries the dependencies the HTTP layer is wired with.
type RouterConfig struct {
	PlanetService ports.PlanetService
	MoonService   ports.MoonService
	UserService   ports.UserService
	AuthService   ports.AuthService
	Mongo         *mongo.Database
	Redis         *redis.Client
	JWTSecret     string
	Logger        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("planetapi"))

	// --- Handlers ---
	planetHandler := handler.NewPlanetHandler(cfg.PlanetService)
	moonHandler := handler.NewMoonHandler(cfg.MoonService)
	userHandler := handler.NewUserHandler(cfg.UserService)
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	// --- Role sets ---
	auth := middleware.Auth(cfg.JWTSecret)
	anyRole := middleware.RBAC(domain.RoleAdmin, domain.RoleStaff, domain.RoleStudent)
	writers := middleware.RBAC(domain.RoleAdmin, domain.RoleStaff)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Planets ---
	planets := e.Group("/api/planets", auth)
	planets.POST("", planetHandler.Create, writers)
	planets.GET("", planetHandler.List, anyRole)
	planets.GET("/summaries", planetHandler.ListSummaries, anyRole)
	planets.GET("/type/:type", planetHandler.ListByType, anyRole)
	planets.GET("/:id", planetHandler.Get, anyRole)
	planets.PUT("/:id", planetHandler.Update, writers)
	planets.DELETE("/:id", planetHandler.Delete, writers)
	planets.GET("/:id/summary", planetHandler.GetSummary, anyRole)
	planets.GET("/:id/moons", moonHandler.ListByPlanetID, anyRole)
	planets.GET("/:id/moons/count", moonHandler.CountByPlanetID, anyRole)
	planets.GET("/:id/moons/summaries", moonHandler.ListSummariesByPlanetID, anyRole)

	// --- Moons ---
	moons := e.Group("/api/moons", auth)
	moons.POST("", moonHandler.Create, writers)
	moons.GET("", moonHandler.List, anyRole)
	moons.GET("/summaries", moonHandler.ListSummaries, anyRole)
	moons.GET("/planet/:planetName", moonHandler.ListByPlanetName, anyRole)
	moons.GET("/planet/:planetName/count", moonHandler.CountByPlanetName, anyRole)
	moons.GET("/:id", moonHandler.Get, anyRole)
	moons.PUT("/:id", moonHandler.Update, writers)
	moons.DELETE("/:id", moonHandler.Delete, writers)
	moons.GET("/:id/summary", moonHandler.GetSummary, anyRole)

	// --- Users (administrative) ---
	users := e.Group("/api/users", auth, adminOnly)
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/enabled", userHandler.ListEnabled)
	users.GET("/summaries", userHandler.ListSummaries)
	users.GET("/summaries/role/:role", userHandler.ListSummariesByRole)
	users.GET("/username/:username", userHandler.GetByUsername)
	users.GET("/role/:role", userHandler.ListByRole)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.GET("/:id/summary", userHandler.GetSummary)

	return e
}
