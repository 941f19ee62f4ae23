// Package domain holds typed identifiers shared across modules.
//
// Each entity gets its own UUID-backed type so the compiler rejects mixing an
// OfficerID where an ExterneeID is expected. Parsing enforces the invariant
// that IDs are valid, non-nil UUIDs at trust boundaries.
package domain

import (
	"github.com/google/uuid"

	dErrors "tadipaar/pkg/domain-errors"
)

type (
	// ExterneeID identifies an externment order record.
	ExterneeID uuid.UUID
	// OfficerID identifies an officer roster record.
	OfficerID uuid.UUID
	// AreaID identifies a restricted area.
	AreaID uuid.UUID
	// CheckInID identifies a hazari check-in log entry.
	CheckInID uuid.UUID
	// AlertID identifies an SOS alert.
	AlertID uuid.UUID
	// AccountID identifies a login account.
	AccountID uuid.UUID
)

func (id ExterneeID) String() string { return uuid.UUID(id).String() }
func (id OfficerID) String() string  { return uuid.UUID(id).String() }
func (id AreaID) String() string     { return uuid.UUID(id).String() }
func (id CheckInID) String() string  { return uuid.UUID(id).String() }
func (id AlertID) String() string    { return uuid.UUID(id).String() }
func (id AccountID) String() string  { return uuid.UUID(id).String() }

func (id ExterneeID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id OfficerID) IsZero() bool  { return uuid.UUID(id) == uuid.Nil }
func (id AreaID) IsZero() bool     { return uuid.UUID(id) == uuid.Nil }
func (id CheckInID) IsZero() bool  { return uuid.UUID(id) == uuid.Nil }
func (id AlertID) IsZero() bool    { return uuid.UUID(id) == uuid.Nil }
func (id AccountID) IsZero() bool  { return uuid.UUID(id) == uuid.Nil }

// Text marshalling delegates to uuid.UUID so JSON carries the canonical
// string form, which the Parse helpers accept back.

func (id ExterneeID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id OfficerID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id AreaID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id CheckInID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id AlertID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id AccountID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }

func (id *ExterneeID) UnmarshalText(text []byte) error { return (*uuid.UUID)(id).UnmarshalText(text) }
func (id *OfficerID) UnmarshalText(text []byte) error  { return (*uuid.UUID)(id).UnmarshalText(text) }
func (id *AreaID) UnmarshalText(text []byte) error     { return (*uuid.UUID)(id).UnmarshalText(text) }
func (id *CheckInID) UnmarshalText(text []byte) error  { return (*uuid.UUID)(id).UnmarshalText(text) }
func (id *AlertID) UnmarshalText(text []byte) error    { return (*uuid.UUID)(id).UnmarshalText(text) }
func (id *AccountID) UnmarshalText(text []byte) error  { return (*uuid.UUID)(id).UnmarshalText(text) }

// NewExterneeID returns a fresh random ExterneeID.
func NewExterneeID() ExterneeID { return ExterneeID(uuid.New()) }

// NewOfficerID returns a fresh random OfficerID.
func NewOfficerID() OfficerID { return OfficerID(uuid.New()) }

// NewAreaID returns a fresh random AreaID.
func NewAreaID() AreaID { return AreaID(uuid.New()) }

// NewCheckInID returns a fresh random CheckInID.
func NewCheckInID() CheckInID { return CheckInID(uuid.New()) }

// NewAlertID returns a fresh random AlertID.
func NewAlertID() AlertID { return AlertID(uuid.New()) }

// NewAccountID returns a fresh random AccountID.
func NewAccountID() AccountID { return AccountID(uuid.New()) }

func parseUUID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id is required")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be the nil UUID")
	}
	return parsed, nil
}

// ParseExterneeID parses and validates an externee record ID.
func ParseExterneeID(raw string) (ExterneeID, error) {
	u, err := parseUUID(raw)
	return ExterneeID(u), err
}

// ParseOfficerID parses and validates an officer ID.
func ParseOfficerID(raw string) (OfficerID, error) {
	u, err := parseUUID(raw)
	return OfficerID(u), err
}

// ParseAreaID parses and validates a restricted area ID.
func ParseAreaID(raw string) (AreaID, error) {
	u, err := parseUUID(raw)
	return AreaID(u), err
}

// ParseCheckInID parses and validates a check-in log ID.
func ParseCheckInID(raw string) (CheckInID, error) {
	u, err := parseUUID(raw)
	return CheckInID(u), err
}

// ParseAlertID parses and validates an SOS alert ID.
func ParseAlertID(raw string) (AlertID, error) {
	u, err := parseUUID(raw)
	return AlertID(u), err
}

// ParseAccountID parses and validates an account ID.
func ParseAccountID(raw string) (AccountID, error) {
	u, err := parseUUID(raw)
	return AccountID(u), err
}
