package repositories

import (
	"context"
	"database/sql"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/db"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := InitSchema(context.Background(), conn); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return conn
}

func TestSQLReferenceRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	if err := SeedCatalog(ctx, conn, db.DriverSQLite, domain.DefaultCatalog()); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}

	repo := NewSQLReferenceRepository(conn)

	states, err := repo.ListStates(ctx)
	if err != nil {
		t.Fatalf("list states: %v", err)
	}
	if diff := cmp.Diff(domain.States(), states); diff != "" {
		t.Fatalf("states mismatch (-want +got):\n%s", diff)
	}

	limits, err := repo.AxleLimits(ctx)
	if err != nil {
		t.Fatalf("axle limits: %v", err)
	}
	if limits != domain.DefaultAxleLimits() {
		t.Fatalf("limits = %+v, want %+v", limits, domain.DefaultAxleLimits())
	}

	sample, err := repo.SampleDocument(ctx)
	if err != nil {
		t.Fatalf("sample document: %v", err)
	}
	if sample != domain.DefaultSampleDocument() {
		t.Fatalf("sample = %+v, want %+v", sample, domain.DefaultSampleDocument())
	}
}

func TestSeedCatalogIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	for i := 0; i < 2; i++ {
		if err := SeedCatalog(ctx, conn, db.DriverSQLite, domain.DefaultCatalog()); err != nil {
			t.Fatalf("seed #%d: %v", i+1, err)
		}
	}

	var n int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM states;`).Scan(&n); err != nil {
		t.Fatalf("count states: %v", err)
	}
	if n != domain.StateCount {
		t.Fatalf("states = %d, want %d", n, domain.StateCount)
	}
}

func TestSeedFromJSON(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	seed := ReferenceSeed{
		AxleLimits: AxleLimitsSeed{Steer: 12000, DriveWithAPU: 34400, DriveWithoutAPU: 34000, Trailer: 34000},
		SampleDocument: DocumentSeed{
			Temperature:  "-10F",
			PONumber:     "PU-777",
			SealNumber:   "S-1",
			Location:     "Joliet, IL",
			DeliveryTime: "2025-09-01T06:30",
		},
	}
	for _, s := range domain.States() {
		seed.States = append(seed.States, StateSeed{Name: s.Name, Abbreviation: " " + s.Abbreviation + " "})
	}

	path := filepath.Join(t.TempDir(), "reference.json")
	b, err := json.Marshal(seed)
	if err != nil {
		t.Fatalf("marshal seed: %v", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if err := SeedFromJSON(ctx, conn, db.DriverSQLite, path); err != nil {
		t.Fatalf("seed from json: %v", err)
	}

	repo := NewSQLReferenceRepository(conn)
	limits, err := repo.AxleLimits(ctx)
	if err != nil {
		t.Fatalf("axle limits: %v", err)
	}
	if limits.Steer != 12000 || limits.DriveWithAPU != 34400 {
		t.Fatalf("limits = %+v", limits)
	}

	states, err := repo.ListStates(ctx)
	if err != nil {
		t.Fatalf("list states: %v", err)
	}
	if states[42] != (domain.StateEntry{Name: "Texas", Abbreviation: "TX"}) {
		t.Fatalf("states[42] = %+v, want Texas/TX", states[42])
	}
}

func TestSeedFromJSONRejectsShortTable(t *testing.T) {
	conn := openTestDB(t)

	path := filepath.Join(t.TempDir(), "reference.json")
	body := `{"states":[{"name":"Texas","abbreviation":"TX"}],"axle_limits":{"steer":1,"drive_with_apu":1,"drive_without_apu":1,"trailer":1}}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if err := SeedFromJSON(context.Background(), conn, db.DriverSQLite, path); err == nil {
		t.Fatal("expected error for a one-state table")
	}
}

func TestAxleLimitsMissingRow(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	if _, err := conn.ExecContext(ctx, `INSERT INTO axle_limits (axle, limit_lbs) VALUES ('steer', 12999);`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := NewSQLReferenceRepository(conn).AxleLimits(ctx); err == nil {
		t.Fatal("expected error when drive/trailer rows are missing")
	}
}

func TestSeedCatalogRejectsUnknownDriver(t *testing.T) {
	conn := openTestDB(t)
	if err := SeedCatalog(context.Background(), conn, "mysql", domain.DefaultCatalog()); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}
