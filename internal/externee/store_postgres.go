package externee

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"tadipaar/pkg/platform/sentinel"

	id "tadipaar/pkg/domain"
)

// PostgresStore persists externment records in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const externeeColumns = `id, name, identity_number, police_station, restricted_area_id, period_start, period_end, created_by, created_at`

func (s *PostgresStore) Create(ctx context.Context, record *ExternmentRecord) error {
	query := `
		INSERT INTO externment_records (` + externeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		record.ID.String(),
		record.Name,
		record.IdentityNumber,
		record.PoliceStation,
		record.RestrictedAreaID.String(),
		record.PeriodStart,
		record.PeriodEnd,
		record.CreatedBy,
		record.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create externment record: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, recordID id.ExterneeID) (*ExternmentRecord, error) {
	query := `SELECT ` + externeeColumns + ` FROM externment_records WHERE id = $1`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, recordID.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find externment record: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) FindByIdentityNumber(ctx context.Context, identityNumber string) (*ExternmentRecord, error) {
	query := `SELECT ` + externeeColumns + ` FROM externment_records WHERE lower(identity_number) = lower($1)`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, identityNumber))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find externment record by identity: %w", err)
	}
	return record, nil
}

func (s *PostgresStore) ExistsByAreaID(ctx context.Context, areaID id.AreaID) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM externment_records WHERE restricted_area_id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, areaID.String()).Scan(&exists); err != nil {
		return false, fmt.Errorf("check externment records for area: %w", err)
	}
	return exists, nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*ExternmentRecord, error) {
	query := `SELECT ` + externeeColumns + ` FROM externment_records ORDER BY created_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list externment records: %w", err)
	}
	defer rows.Close()

	var records []*ExternmentRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan externment record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate externment records: %w", err)
	}
	return records, nil
}

func (s *PostgresStore) Delete(ctx context.Context, recordID id.ExterneeID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM externment_records WHERE id = $1`, recordID.String())
	if err != nil {
		return fmt.Errorf("delete externment record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete externment record: %w", err)
	}
	if affected == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*ExternmentRecord, error) {
	var (
		record    ExternmentRecord
		rawID     string
		rawAreaID string
	)
	err := row.Scan(
		&rawID,
		&record.Name,
		&record.IdentityNumber,
		&record.PoliceStation,
		&rawAreaID,
		&record.PeriodStart,
		&record.PeriodEnd,
		&record.CreatedBy,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.ID, err = id.ParseExterneeID(rawID)
	if err != nil {
		return nil, err
	}
	record.RestrictedAreaID, err = id.ParseAreaID(rawAreaID)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
