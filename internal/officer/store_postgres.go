package officer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"tadipaar/pkg/platform/sentinel"

	id "tadipaar/pkg/domain"
)

// PostgresStore persists the roster in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const officerColumns = `id, name, buckle_number, rank, police_station, mobile, created_at`

func (s *PostgresStore) Create(ctx context.Context, officer *Officer) error {
	query := `
		INSERT INTO officers (` + officerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		officer.ID.String(),
		officer.Name,
		officer.BuckleNumber,
		officer.Rank,
		officer.PoliceStation,
		officer.Mobile,
		officer.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create officer: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, officerID id.OfficerID) (*Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers WHERE id = $1`
	officer, err := scanOfficer(s.db.QueryRowContext(ctx, query, officerID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find officer: %w", err)
	}
	return officer, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*Officer, error) {
	query := `SELECT ` + officerColumns + ` FROM officers ORDER BY police_station, name`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list officers: %w", err)
	}
	defer rows.Close()

	var officers []*Officer
	for rows.Next() {
		officer, err := scanOfficer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan officer: %w", err)
		}
		officers = append(officers, officer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate officers: %w", err)
	}
	return officers, nil
}

func (s *PostgresStore) Delete(ctx context.Context, officerID id.OfficerID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM officers WHERE id = $1`, officerID.String())
	if err != nil {
		return fmt.Errorf("delete officer: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete officer: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOfficer(row rowScanner) (*Officer, error) {
	var (
		officer Officer
		rawID   string
	)
	err := row.Scan(
		&rawID,
		&officer.Name,
		&officer.BuckleNumber,
		&officer.Rank,
		&officer.PoliceStation,
		&officer.Mobile,
		&officer.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	officer.ID, err = id.ParseOfficerID(rawID)
	if err != nil {
		return nil, err
	}
	return &officer, nil
}
