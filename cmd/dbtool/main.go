package main

import (
	"context"
	"database/sql"
	"dispatch-toolkit/internal/adapters/repositories"
	"dispatch-toolkit/internal/config"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/db"
	"dispatch-toolkit/internal/platform/logger"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// dbtool creates the catalog schema and seeds it, either from the JSON seed
// file or from the compiled-in tables (-builtin).
func main() {
	builtin := flag.Bool("builtin", false, "seed from the compiled-in tables instead of SEED_PATH")
	flag.Parse()

	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Catalog.Driver == "" {
		log.Fatal("CATALOG_DRIVER and CATALOG_DSN are required")
	}

	lg := logger.Must(logger.New(cfg.Log.Level, cfg.Log.Format))
	defer lg.Sync()

	conn, err := db.Open(cfg.Catalog.Driver, cfg.Catalog.DSN)
	if err != nil {
		lg.Fatal("open catalog db", zap.Error(err))
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := initAndSeed(ctx, conn, cfg.Catalog, *builtin, lg); err != nil {
		lg.Error("dbtool failed", zap.Error(err))
		conn.Close()
		os.Exit(1)
	}
}

func initAndSeed(ctx context.Context, conn *sql.DB, cfg config.CatalogConfig, builtin bool, lg *zap.Logger) error {
	lg.Info("initializing database schema", zap.String("driver", cfg.Driver))
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	lg.Info("schema ready")

	if builtin {
		lg.Info("seeding from built-in tables")
		if err := repositories.SeedCatalog(ctx, conn, cfg.Driver, domain.DefaultCatalog()); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
	} else {
		if _, err := os.Stat(cfg.SeedPath); errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("init and seed: seed file %s not found (use -builtin)", cfg.SeedPath)
		}
		lg.Info("seeding from file", zap.String("seed_path", cfg.SeedPath))
		if err := repositories.SeedFromJSON(ctx, conn, cfg.Driver, cfg.SeedPath); err != nil {
			return fmt.Errorf("init and seed: %w", err)
		}
	}

	lg.Info("seeding complete")
	return nil
}
