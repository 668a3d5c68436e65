package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/peopledesk/users-api/internal/api"
	"github.com/peopledesk/users-api/internal/core/ports"
	"github.com/peopledesk/users-api/internal/core/service"
	"github.com/peopledesk/users-api/internal/infrastructure/db/postgres"
	redisdb "github.com/peopledesk/users-api/internal/infrastructure/db/redis"
	"github.com/peopledesk/users-api/internal/pkg/config"
	"github.com/peopledesk/users-api/pkg/logger"
)

// @title        Users API
// @version      1.0
// @description  CRUD service for managing users with combinable filters, partial updates and aggregate stats.
// @BasePath     /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	var rdb *goredis.Client
	var cache ports.StatsCache
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, stats cache disabled")
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
			cache = redisdb.NewStatsCache(rdb, cfg.Redis.StatsCacheTTL)
		}
	}

	repo := postgres.NewUserRepository(db)
	svc := service.NewUserService(repo, service.DefaultValidators(repo), cache, log)
	e := api.NewRouter(svc, db, rdb, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("users api listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
