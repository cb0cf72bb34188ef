package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/cmd"
	httpapi "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/pkg/logging"

	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("storefront stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}

	logger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	app, err := cmd.NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	doc, err := httpapi.LoadOpenAPI(ctx)
	if err != nil {
		return err
	}

	e := httpapi.NewEcho(logger, echoLogLevel(cfg.LogLevel))
	if err = httpapi.RegisterHandlers(e, app.CreateServer(), doc); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", cfg.HTTPPort)
		logger.Info("HTTP server listening", "addr", addr)
		if sErr := e.Start(addr); sErr != nil && !errors.Is(sErr, http.ErrServerClosed) {
			serveErr <- sErr
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func echoLogLevel(level string) log.Lvl {
	switch logging.ParseLevel(level) {
	case slog.LevelDebug:
		return log.DEBUG
	case slog.LevelWarn:
		return log.WARN
	case slog.LevelError:
		return log.ERROR
	default:
		return log.INFO
	}
}
