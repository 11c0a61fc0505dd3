package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/corepay/payments-platform/internal/infrastructure/config"
	"github.com/corepay/payments-platform/internal/infrastructure/gateway"
	"github.com/corepay/payments-platform/pkg/logger"
)

func main() {
	cfg := config.LoadGateway()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("gateway failed")
	}
}

func run(cfg *config.GatewayConfig) error {
	log := logger.Get()

	upstreams, err := gateway.ParseUpstreams(cfg.AccountsUpstreams, cfg.TemplatesUpstreams)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e := gateway.NewRouter(upstreams, log)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Info().
		Str("port", cfg.Port).
		Strs("accounts", cfg.AccountsUpstreams).
		Strs("templates", cfg.TemplatesUpstreams).
		Msg("gateway listening")

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
