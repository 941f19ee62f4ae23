package checkin

import (
	"context"
	"database/sql"
	"fmt"

	id "tadipaar/pkg/domain"
)

// PostgresStore persists check-in logs in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const checkinColumns = `id, identity_number, police_station, lat, lon, photo_ref, device, captured_at, is_violation`

func (s *PostgresStore) Create(ctx context.Context, log *CheckInLog) error {
	query := `
		INSERT INTO checkin_logs (` + checkinColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(ctx, query,
		log.ID.String(),
		log.IdentityNumber,
		log.PoliceStation,
		log.Location.Lat,
		log.Location.Lon,
		log.PhotoRef,
		log.Device,
		log.CapturedAt,
		log.IsViolation,
	)
	if err != nil {
		return fmt.Errorf("create checkin log: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]*CheckInLog, error) {
	query := `SELECT ` + checkinColumns + ` FROM checkin_logs ORDER BY captured_at DESC`
	return s.query(ctx, query)
}

func (s *PostgresStore) ListByIdentityNumber(ctx context.Context, identityNumber string) ([]*CheckInLog, error) {
	query := `SELECT ` + checkinColumns + ` FROM checkin_logs WHERE lower(identity_number) = lower($1) ORDER BY captured_at DESC`
	return s.query(ctx, query, identityNumber)
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*CheckInLog, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list checkin logs: %w", err)
	}
	defer rows.Close()

	var logs []*CheckInLog
	for rows.Next() {
		var (
			log   CheckInLog
			rawID string
		)
		err := rows.Scan(
			&rawID,
			&log.IdentityNumber,
			&log.PoliceStation,
			&log.Location.Lat,
			&log.Location.Lon,
			&log.PhotoRef,
			&log.Device,
			&log.CapturedAt,
			&log.IsViolation,
		)
		if err != nil {
			return nil, fmt.Errorf("scan checkin log: %w", err)
		}
		log.ID, err = id.ParseCheckInID(rawID)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &log)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checkin logs: %w", err)
	}
	return logs, nil
}

// PostgresAlertStore persists SOS alerts in PostgreSQL.
type PostgresAlertStore struct {
	db *sql.DB
}

func NewPostgresAlertStore(db *sql.DB) *PostgresAlertStore {
	return &PostgresAlertStore{db: db}
}

const alertColumns = `id, identity_number, police_station, reason, detail, lat, lon, raised_at`

func (s *PostgresAlertStore) Create(ctx context.Context, alert *SOSAlert) error {
	query := `
		INSERT INTO sos_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(ctx, query,
		alert.ID.String(),
		alert.IdentityNumber,
		alert.PoliceStation,
		string(alert.Reason),
		alert.Detail,
		alert.Location.Lat,
		alert.Location.Lon,
		alert.RaisedAt,
	)
	if err != nil {
		return fmt.Errorf("create sos alert: %w", err)
	}
	return nil
}

func (s *PostgresAlertStore) List(ctx context.Context) ([]*SOSAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM sos_alerts ORDER BY raised_at DESC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sos alerts: %w", err)
	}
	defer rows.Close()

	var alerts []*SOSAlert
	for rows.Next() {
		var (
			alert     SOSAlert
			rawID     string
			rawReason string
		)
		err := rows.Scan(
			&rawID,
			&alert.IdentityNumber,
			&alert.PoliceStation,
			&rawReason,
			&alert.Detail,
			&alert.Location.Lat,
			&alert.Location.Lon,
			&alert.RaisedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan sos alert: %w", err)
		}
		alertID, err := id.ParseAlertID(rawID)
		if err != nil {
			return nil, err
		}
		alert.ID = alertID
		alert.Reason = SOSReason(rawReason)
		alerts = append(alerts, &alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sos alerts: %w", err)
	}
	return alerts, nil
}
