package main

import (
	"context"
	"dispatch-toolkit/internal/api"
	"dispatch-toolkit/internal/bootstrap"
	"dispatch-toolkit/internal/config"
	"dispatch-toolkit/internal/platform/logger"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It loads the reference catalog once, wires the handlers and starts the HTTP server.
func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	lg := logger.Must(logger.New(cfg.Log.Level, cfg.Log.Format))
	defer lg.Sync()
	zap.ReplaceGlobals(lg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	catalog, err := bootstrap.LoadCatalog(ctx, cfg.Catalog, lg)
	if err != nil {
		lg.Fatal("catalog unavailable", zap.Error(err))
	}
	lg.Info("catalog loaded",
		zap.String("driver", bootstrap.CatalogSource(cfg.Catalog)),
		zap.Int("states", catalog.Len()))

	router := api.NewRouter(api.Dependencies{
		Catalog:  catalog,
		Random:   bootstrap.RandomSource(cfg.Random),
		Location: cfg.Billing.Location,
		Now:      time.Now,
	}, lg)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		lg.Info("server listening", zap.String("addr", srv.Addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal("server stopped", zap.Error(err))
		}
	case <-ctx.Done():
		lg.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			lg.Error("graceful shutdown failed", zap.Error(err))
		}
	}
}
