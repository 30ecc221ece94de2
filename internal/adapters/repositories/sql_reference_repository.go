package repositories

import (
	"context"
	"database/sql"
	"dispatch-toolkit/internal/domain"
	"errors"
	"fmt"
)

// SQL-backed implementation of the ReferenceRepository port. The queries take
// no parameters, so one implementation serves both SQLite and Postgres.
type SQLReferenceRepository struct{ DB *sql.DB }

func NewSQLReferenceRepository(db *sql.DB) *SQLReferenceRepository {
	return &SQLReferenceRepository{DB: db}
}

// Return the state table ordered by position.
func (s *SQLReferenceRepository) ListStates(ctx context.Context) ([]domain.StateEntry, error) {
	if s.DB == nil {
		return nil, errors.New("sql reference repository: DB is nil")
	}

	query := `
	SELECT
		name,
		abbreviation
	FROM states
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list states: query states table: %w", err)
	}
	defer rows.Close()

	states := make([]domain.StateEntry, 0, domain.StateCount)
	for rows.Next() {
		var st domain.StateEntry
		if err := rows.Scan(&st.Name, &st.Abbreviation); err != nil {
			return nil, fmt.Errorf("list states: scan row: %w", err)
		}
		states = append(states, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list states: row iteration: %w", err)
	}

	return states, nil
}

// Return the axle limits. Every axle key must be present.
func (s *SQLReferenceRepository) AxleLimits(ctx context.Context) (domain.AxleLimits, error) {
	if s.DB == nil {
		return domain.AxleLimits{}, errors.New("sql reference repository: DB is nil")
	}

	query := `
	SELECT
		axle,
		limit_lbs
	FROM axle_limits;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return domain.AxleLimits{}, fmt.Errorf("axle limits: query axle_limits table: %w", err)
	}
	defer rows.Close()

	byAxle := make(map[string]float64, 4)
	for rows.Next() {
		var axle string
		var limit float64
		if err := rows.Scan(&axle, &limit); err != nil {
			return domain.AxleLimits{}, fmt.Errorf("axle limits: scan row: %w", err)
		}
		byAxle[axle] = limit
	}
	if err := rows.Err(); err != nil {
		return domain.AxleLimits{}, fmt.Errorf("axle limits: row iteration: %w", err)
	}

	for _, k := range []string{limitSteer, limitDriveWithAPU, limitDriveWithoutAPU, limitTrailer} {
		if _, ok := byAxle[k]; !ok {
			return domain.AxleLimits{}, fmt.Errorf("axle limits: missing row for %q", k)
		}
	}

	return domain.AxleLimits{
		Steer:           byAxle[limitSteer],
		DriveWithAPU:    byAxle[limitDriveWithAPU],
		DriveWithoutAPU: byAxle[limitDriveWithoutAPU],
		Trailer:         byAxle[limitTrailer],
	}, nil
}

// Return the default sample document.
func (s *SQLReferenceRepository) SampleDocument(ctx context.Context) (domain.DocumentRecord, error) {
	if s.DB == nil {
		return domain.DocumentRecord{}, errors.New("sql reference repository: DB is nil")
	}

	query := `
	SELECT
		temperature,
		po_number,
		seal_number,
		location,
		delivery_time
	FROM sample_documents
	WHERE name = 'default';
	`
	var r domain.DocumentRecord
	err := s.DB.QueryRowContext(ctx, query).Scan(&r.Temperature, &r.PONumber, &r.SealNumber, &r.Location, &r.DeliveryTime)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DocumentRecord{}, errors.New("sample document: no default row")
	}
	if err != nil {
		return domain.DocumentRecord{}, fmt.Errorf("sample document: query sample_documents table: %w", err)
	}

	return r, nil
}
