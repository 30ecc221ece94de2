package main

import (
	"context"
	"dispatch-toolkit/internal/bootstrap"
	"dispatch-toolkit/internal/cli"
	"dispatch-toolkit/internal/config"
	"dispatch-toolkit/internal/platform/logger"
	"fmt"
	"os"
	"os/signal"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	// Terminal output belongs to the commands; logs stay on stderr in console form.
	lg, err := logger.New(cfg.Log.Level, "console")
	if err != nil {
		return err
	}
	defer lg.Sync()
	zap.ReplaceGlobals(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	catalog, err := bootstrap.LoadCatalog(ctx, cfg.Catalog, lg)
	if err != nil {
		return err
	}
	lg.Debug("catalog loaded", zap.String("driver", bootstrap.CatalogSource(cfg.Catalog)))

	root := cli.NewRootCmd(&cli.App{
		Catalog:  catalog,
		Random:   bootstrap.RandomSource(cfg.Random),
		Location: cfg.Billing.Location,
		Now:      time.Now,
	})
	return root.ExecuteContext(ctx)
}
