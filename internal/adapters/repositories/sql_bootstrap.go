package repositories

import (
	"context"
	"database/sql"
	"dispatch-toolkit/internal/platform/db"
	"fmt"
)

// OpenSQLReferenceRepository connects to the catalog database. A SQLite
// catalog is created and seeded from seedPath on first use; Postgres is
// expected to be prepared with dbtool.
//
// The caller owns the returned connection and must Close it.
func OpenSQLReferenceRepository(ctx context.Context, driver, dsn, seedPath string) (*SQLReferenceRepository, error) {
	conn, err := db.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open reference repository: %w", err)
	}

	if driver == db.DriverSQLite {
		if err := seedIfEmpty(ctx, conn, driver, seedPath); err != nil {
			conn.Close()
			return nil, fmt.Errorf("open reference repository: %w", err)
		}
	}

	return NewSQLReferenceRepository(conn), nil
}

// Close releases the underlying connection pool.
func (s *SQLReferenceRepository) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func seedIfEmpty(ctx context.Context, conn *sql.DB, driver, seedPath string) error {
	if err := InitSchema(ctx, conn); err != nil {
		return err
	}

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM states`).Scan(&n); err != nil {
		return fmt.Errorf("count states: %w", err)
	}
	if n > 0 {
		return nil
	}

	return SeedFromJSON(ctx, conn, driver, seedPath)
}
