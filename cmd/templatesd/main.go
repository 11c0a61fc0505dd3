package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/corepay/payments-platform/internal/api"
	"github.com/corepay/payments-platform/internal/infrastructure/config"
	redisdb "github.com/corepay/payments-platform/internal/infrastructure/db/redis"
	"github.com/corepay/payments-platform/internal/infrastructure/db/sqlite"
	"github.com/corepay/payments-platform/pkg/logger"
)

const defaultDBPath = "templates.db"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("templates service failed")
	}
}

func run(cfg *config.Config) error {
	log := logger.Get()

	if cfg.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.DBPath == "" {
		cfg.DBPath = defaultDBPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info().Str("path", cfg.DBPath).Msg("database opened")

	if err := sqlite.RunTemplatesMigrations(db.Writer); err != nil {
		return err
	}
	log.Info().Msg("migrations complete")

	var rdb *goredis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")
	}

	e := api.NewTemplatesRouter(db, rdb, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("templates service listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
