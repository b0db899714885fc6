package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/staffdesk/employee-system/internal/api"
	"github.com/staffdesk/employee-system/internal/infrastructure/config"
	mongodb "github.com/staffdesk/employee-system/internal/infrastructure/db/mongo"
	"github.com/staffdesk/employee-system/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %s", err)
	}
}

func run() error {
	ctx := context.Background()

	// Configuration first: a missing JWT_SECRET must stop the process here.
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	lg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := mongodb.Disconnect(client); err != nil {
			lg.Error().Err(err).Msg("mongo disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	e, err := api.NewRouter(db, cfg, lg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		lg.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		lg.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
