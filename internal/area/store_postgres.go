package area

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"tadipaar/pkg/platform/sentinel"

	id "tadipaar/pkg/domain"
)

// PostgresStore persists restricted areas in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const areaColumns = `id, name, police_station, center_lat, center_lon, radius_meters, created_at`

func (s *PostgresStore) Create(ctx context.Context, area *RestrictedArea) error {
	query := `
		INSERT INTO restricted_areas (` + areaColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		area.ID.String(),
		area.Name,
		area.PoliceStation,
		area.Center.Lat,
		area.Center.Lon,
		area.RadiusMeters,
		area.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create restricted area: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, areaID id.AreaID) (*RestrictedArea, error) {
	query := `SELECT ` + areaColumns + ` FROM restricted_areas WHERE id = $1`
	area, err := scanArea(s.db.QueryRowContext(ctx, query, areaID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find restricted area: %w", err)
	}
	return area, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*RestrictedArea, error) {
	query := `SELECT ` + areaColumns + ` FROM restricted_areas ORDER BY police_station, name`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list restricted areas: %w", err)
	}
	defer rows.Close()

	var areas []*RestrictedArea
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("scan restricted area: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate restricted areas: %w", err)
	}
	return areas, nil
}

func (s *PostgresStore) Delete(ctx context.Context, areaID id.AreaID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM restricted_areas WHERE id = $1`, areaID.String())
	if err != nil {
		return fmt.Errorf("delete restricted area: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete restricted area: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArea(row rowScanner) (*RestrictedArea, error) {
	var (
		area  RestrictedArea
		rawID string
	)
	err := row.Scan(
		&rawID,
		&area.Name,
		&area.PoliceStation,
		&area.Center.Lat,
		&area.Center.Lon,
		&area.RadiusMeters,
		&area.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	area.ID, err = id.ParseAreaID(rawID)
	if err != nil {
		return nil, err
	}
	return &area, nil
}
