package checkin

import (
	"context"
)

// Store persists check-in logs. Logs are append-only: there is no update or
// delete.
type Store interface {
	Create(ctx context.Context, log *CheckInLog) error
	List(ctx context.Context) ([]*CheckInLog, error)
	ListByIdentityNumber(ctx context.Context, identityNumber string) ([]*CheckInLog, error)
}

// AlertStore persists SOS alerts, also append-only.
type AlertStore interface {
	Create(ctx context.Context, alert *SOSAlert) error
	List(ctx context.Context) ([]*SOSAlert, error)
}
