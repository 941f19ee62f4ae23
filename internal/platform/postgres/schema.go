package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied at boot. Statements are idempotent so restarts are safe;
// anything more elaborate than additive DDL needs a real migration.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash BYTEA NOT NULL,
		role TEXT NOT NULL,
		zone TEXT NOT NULL DEFAULT '',
		station TEXT NOT NULL DEFAULT '',
		identity_number TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS restricted_areas (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		police_station TEXT NOT NULL,
		center_lat DOUBLE PRECISION NOT NULL,
		center_lon DOUBLE PRECISION NOT NULL,
		radius_meters DOUBLE PRECISION NOT NULL CHECK (radius_meters > 0),
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS externment_records (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		identity_number TEXT NOT NULL UNIQUE,
		police_station TEXT NOT NULL,
		restricted_area_id UUID NOT NULL,
		period_start TIMESTAMPTZ NOT NULL,
		period_end TIMESTAMPTZ NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS officers (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		buckle_number TEXT NOT NULL UNIQUE,
		rank TEXT NOT NULL,
		police_station TEXT NOT NULL,
		mobile TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS checkin_logs (
		id UUID PRIMARY KEY,
		identity_number TEXT NOT NULL,
		police_station TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		photo_ref TEXT NOT NULL DEFAULT '',
		device TEXT NOT NULL DEFAULT '',
		captured_at TIMESTAMPTZ NOT NULL,
		is_violation BOOLEAN NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS checkin_logs_identity_idx ON checkin_logs (lower(identity_number), captured_at DESC)`,
	`CREATE TABLE IF NOT EXISTS sos_alerts (
		id UUID PRIMARY KEY,
		identity_number TEXT NOT NULL,
		police_station TEXT NOT NULL,
		reason TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		raised_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate applies the schema.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
