package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tibtennis/roster-api/internal/api"
	"github.com/tibtennis/roster-api/internal/core/domain"
	"github.com/tibtennis/roster-api/internal/core/ports"
	"github.com/tibtennis/roster-api/internal/infrastructure/config"
	mongodb "github.com/tibtennis/roster-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tibtennis/roster-api/internal/infrastructure/db/redis"
	"github.com/tibtennis/roster-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.Init(logger.Options{})
		bootLog.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The service cannot run without its store.
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure user indexes")
	}

	seedTeam(ctx, mongodb.NewTeamRepository(db), cfg, log)

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("roster api started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedTeam creates the configured team once if absent. A seeding failure is
// logged but not fatal: the roster endpoints work against an existing team.
func seedTeam(ctx context.Context, teams ports.TeamRepository, cfg *config.Config, log zerolog.Logger) {
	_, err := teams.FindByID(ctx, cfg.Team.ID)
	if err == nil {
		return
	}
	if !errors.Is(err, domain.ErrTeamNotFound) {
		log.Error().Err(err).Msg("failed to look up initial team")
		return
	}

	team := &domain.Team{ID: cfg.Team.ID, Name: cfg.Team.Name, Type: cfg.Team.Type}
	if err := teams.Insert(ctx, team); err != nil {
		log.Error().Err(err).Msg("failed to create initial team")
		return
	}
	log.Info().Str("team_id", team.ID).Str("name", team.Name).Msg("initial team created")
}
