package repositories

import (
	"context"
	"database/sql"
	"dispatch-toolkit/internal/domain"
	"dispatch-toolkit/internal/platform/db"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Axle keys stored in the axle_limits table.
const (
	limitSteer           = "steer"
	limitDriveWithAPU    = "drive_with_apu"
	limitDriveWithoutAPU = "drive_without_apu"
	limitTrailer         = "trailer"
)

const defaultSampleName = "default"

// Initialize the reference catalog schema. The DDL is portable between
// SQLite and Postgres.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStatesQuery := `
	CREATE TABLE IF NOT EXISTS states (
		position INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		abbreviation TEXT NOT NULL UNIQUE
	);
	`

	createAxleLimitsQuery := `
	CREATE TABLE IF NOT EXISTS axle_limits (
		axle TEXT PRIMARY KEY,
		limit_lbs DOUBLE PRECISION NOT NULL
	);
	`

	createSampleDocumentsQuery := `
	CREATE TABLE IF NOT EXISTS sample_documents (
		name TEXT PRIMARY KEY,
		temperature TEXT NOT NULL,
		po_number TEXT NOT NULL,
		seal_number TEXT NOT NULL,
		location TEXT NOT NULL,
		delivery_time TEXT NOT NULL
	);
	`

	statements := []string{
		createStatesQuery,
		createAxleLimitsQuery,
		createSampleDocumentsQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type StateSeed struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type AxleLimitsSeed struct {
	Steer           float64 `json:"steer"`
	DriveWithAPU    float64 `json:"drive_with_apu"`
	DriveWithoutAPU float64 `json:"drive_without_apu"`
	Trailer         float64 `json:"trailer"`
}

type DocumentSeed struct {
	Temperature  string `json:"temperature"`
	PONumber     string `json:"po_number"`
	SealNumber   string `json:"seal_number"`
	Location     string `json:"location"`
	DeliveryTime string `json:"delivery_time"`
}

type ReferenceSeed struct {
	States         []StateSeed    `json:"states"`
	AxleLimits     AxleLimitsSeed `json:"axle_limits"`
	SampleDocument DocumentSeed   `json:"sample_document"`
}

// Populate the catalog from a JSON seed file. The seed is validated as a
// whole before anything is written.
func SeedFromJSON(ctx context.Context, conn *sql.DB, driver, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed catalog: read %q: %w", jsonPath, err)
	}

	var data ReferenceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed catalog: parse json: %w", err)
	}

	states := make([]domain.StateEntry, 0, len(data.States))
	for i, s := range data.States {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			return fmt.Errorf("seed catalog: state at index %d: name cannot be empty", i+1)
		}
		states = append(states, domain.StateEntry{
			Name:         name,
			Abbreviation: strings.ToUpper(strings.TrimSpace(s.Abbreviation)),
		})
	}

	limits := domain.AxleLimits{
		Steer:           data.AxleLimits.Steer,
		DriveWithAPU:    data.AxleLimits.DriveWithAPU,
		DriveWithoutAPU: data.AxleLimits.DriveWithoutAPU,
		Trailer:         data.AxleLimits.Trailer,
	}

	sample := domain.DocumentRecord{
		Temperature:  data.SampleDocument.Temperature,
		PONumber:     data.SampleDocument.PONumber,
		SealNumber:   data.SampleDocument.SealNumber,
		Location:     data.SampleDocument.Location,
		DeliveryTime: data.SampleDocument.DeliveryTime,
	}

	catalog, err := domain.NewCatalog(states, limits, sample)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	return SeedCatalog(ctx, conn, driver, catalog)
}

// Write a catalog into the reference tables, replacing existing rows.
func SeedCatalog(ctx context.Context, conn *sql.DB, driver string, catalog domain.Catalog) error {
	if conn == nil {
		return errors.New("seed catalog: DB is nil")
	}

	ph, err := placeholders(driver)
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Positions are rewritten wholesale; stale rows would collide on name.
	if _, err := tx.ExecContext(ctx, `DELETE FROM states;`); err != nil {
		return fmt.Errorf("seed catalog: clear states: %w", err)
	}

	stateStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO states (position, name, abbreviation)
	VALUES (%s, %s, %s);
	`, ph(1), ph(2), ph(3)))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare states insert: %w", err)
	}
	defer stateStmt.Close()

	for i, s := range catalog.States() {
		if _, err := stateStmt.ExecContext(ctx, i+1, s.Name, s.Abbreviation); err != nil {
			return fmt.Errorf("seed catalog: insert state %q: %w", s.Name, err)
		}
	}

	limitStmt, err := tx.PrepareContext(ctx, fmt.Sprintf(`
	INSERT INTO axle_limits (axle, limit_lbs)
	VALUES (%s, %s)
	ON CONFLICT (axle) DO UPDATE
	SET limit_lbs = excluded.limit_lbs;
	`, ph(1), ph(2)))
	if err != nil {
		return fmt.Errorf("seed catalog: prepare axle limits upsert: %w", err)
	}
	defer limitStmt.Close()

	l := catalog.AxleLimits()
	rows := []struct {
		axle  string
		limit float64
	}{
		{limitSteer, l.Steer},
		{limitDriveWithAPU, l.DriveWithAPU},
		{limitDriveWithoutAPU, l.DriveWithoutAPU},
		{limitTrailer, l.Trailer},
	}
	for _, r := range rows {
		if _, err := limitStmt.ExecContext(ctx, r.axle, r.limit); err != nil {
			return fmt.Errorf("seed catalog: upsert axle limit %q: %w", r.axle, err)
		}
	}

	s := catalog.SampleDocument()
	sampleQuery := fmt.Sprintf(`
	INSERT INTO sample_documents (name, temperature, po_number, seal_number, location, delivery_time)
	VALUES (%s, %s, %s, %s, %s, %s)
	ON CONFLICT (name) DO UPDATE
	SET temperature = excluded.temperature,
		po_number = excluded.po_number,
		seal_number = excluded.seal_number,
		location = excluded.location,
		delivery_time = excluded.delivery_time;
	`, ph(1), ph(2), ph(3), ph(4), ph(5), ph(6))
	if _, err := tx.ExecContext(ctx, sampleQuery,
		defaultSampleName, s.Temperature, s.PONumber, s.SealNumber, s.Location, s.DeliveryTime,
	); err != nil {
		return fmt.Errorf("seed catalog: upsert sample document: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}

// placeholders returns the bind-parameter style of a driver.
func placeholders(driver string) (func(n int) string, error) {
	switch driver {
	case db.DriverPostgres:
		return func(n int) string { return fmt.Sprintf("$%d", n) }, nil
	case db.DriverSQLite:
		return func(int) string { return "?" }, nil
	}
	return nil, fmt.Errorf("unsupported driver %q", driver)
}
