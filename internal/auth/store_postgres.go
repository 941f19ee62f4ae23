package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"tadipaar/pkg/platform/sentinel"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/scope"
)

// PostgresAccountStore persists login accounts in PostgreSQL.
type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

const accountColumns = `id, name, email, password_hash, role, zone, station, identity_number, created_at`

func (s *PostgresAccountStore) Create(ctx context.Context, account *Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, lower($3), $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		account.ID.String(),
		account.Name,
		account.Email,
		account.PasswordHash,
		string(account.Role),
		account.Zone,
		account.Station,
		account.IdentityNumber,
		account.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}

func (s *PostgresAccountStore) FindByEmail(ctx context.Context, email string) (*Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = lower($1)`

	var (
		account Account
		rawID   string
		rawRole string
	)
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&rawID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&rawRole,
		&account.Zone,
		&account.Station,
		&account.IdentityNumber,
		&account.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	account.ID, err = id.ParseAccountID(rawID)
	if err != nil {
		return nil, err
	}
	account.Role = scope.ParseRole(rawRole)
	return &account, nil
}
