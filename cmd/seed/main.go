// Command seed loads delivery zones and products from a JSON file:
//
//	seed -file catalog.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"storefront/cmd"
	"storefront/internal/adapters/out/postgres"
	"storefront/internal/pkg/logging"
	"storefront/internal/seed"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	path := flag.String("file", "catalog.json", "seed file with zones and products")
	flag.Parse()

	if err := run(*path); err != nil {
		slog.Error("seed failed", "error", err)
		os.Exit(1)
	}
}

func run(path string) error {
	cfg, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	logger := logging.Setup(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	catalog, err := seed.Parse(f)
	if err != nil {
		return err
	}

	db, err := gorm.Open(gormpostgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err = postgres.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err = seed.Apply(context.Background(), db, catalog); err != nil {
		return err
	}
	logger.Info("Catalog loaded", "zones", len(catalog.Zones), "products", len(catalog.Products))
	return nil
}
