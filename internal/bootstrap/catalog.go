// Package bootstrap holds wiring shared by the binaries under cmd/.
package bootstrap

import (
	"context"
	"dispatch-toolkit/internal/adapters/repositories"
	"dispatch-toolkit/internal/config"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/logger"
	"dispatch-toolkit/internal/ports"
	"dispatch-toolkit/internal/services"

	"go.uber.org/zap"
)

// LoadCatalog reads reference data from the configured database, or from the
// compiled-in tables when no driver is set. The connection is
// closed before returning; the Catalog is a detached snapshot.
func LoadCatalog(ctx context.Context, cfg config.CatalogConfig, lg *zap.Logger) (domain.Catalog, error) {
	var repo ports.ReferenceRepository = repositories.NewStaticReferenceRepository()

	if cfg.Driver != "" {
		sqlRepo, err := repositories.OpenSQLReferenceRepository(ctx, cfg.Driver, cfg.DSN, cfg.SeedPath)
		if err != nil {
			return domain.Catalog{}, err
		}
		defer func() {
			if err := sqlRepo.Close(); err != nil {
				lg.Warn("close catalog db", zap.Error(err))
			}
		}()
		repo = sqlRepo
	}

	return services.LoadCatalog(ctx, repo, logger.Named(lg, "catalog"))
}

// CatalogSource names where the catalog came from, for startup logs.
func CatalogSource(cfg config.CatalogConfig) string {
	if cfg.Driver == "" {
		return "builtin"
	}
	return cfg.Driver
}
