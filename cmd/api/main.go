// @title        Planet Moon API
// @version      1.0
// @description  REST API for managing planets, moons and users with role-based access control.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/space/planet-moon-api/docs"
	"github.com/space/planet-moon-api/internal/api"
	"github.com/space/planet-moon-api/internal/core/service"
	"github.com/space/planet-moon-api/internal/infrastructure/config"
	"github.com/space/planet-moon-api/internal/infrastructure/db/mongo"
	"github.com/space/planet-moon-api/internal/infrastructure/db/redis"
	"github.com/space/planet-moon-api/internal/infrastructure/seed"
	"github.com/space/planet-moon-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	// --- Repositories ---
	planetRepo := mongo.NewPlanetRepository(db)
	moonRepo := mongo.NewMoonRepository(db)
	userRepo := mongo.NewUserRepository(db)

	for _, ensure := range []func(context.Context) error{
		planetRepo.EnsureIndexes,
		moonRepo.EnsureIndexes,
		userRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Msg("index creation failed")
		}
	}

	// --- Services ---
	planetService := service.NewPlanetService(planetRepo, moonRepo, log)
	moonService := service.NewMoonService(moonRepo, planetRepo, log)
	userService := service.NewUserService(userRepo, log)
	throttle := redis.NewLoginThrottle(rdb)
	authService := service.NewAuthService(userRepo, throttle, cfg.JWTSecret, 24*time.Hour, log)

	if cfg.Seed {
		if err := seed.Run(ctx, planetService, moonService, userService, log); err != nil {
			log.Fatal().Err(err).Msg("seeding failed")
		}
	}

	e := api.NewRouter(api.RouterConfig{
		PlanetService: planetService,
		MoonService:   moonService,
		UserService:   userService,
		AuthService:   authService,
		Mongo:         db,
		Redis:         rdb,
		JWTSecret:     cfg.JWTSecret,
		Logger:        log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
