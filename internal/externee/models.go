// Package externee manages externment records: who is externed, from which
// police station's jurisdiction, out of which restricted area, and for how
// long.
package externee

import (
	"strings"
	"time"

	dErrors "tadipaar/pkg/domain-errors"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/period"
)

// ExternmentRecord is one externment order. PeriodStart and PeriodEnd are
// normalized to UTC day boundaries at creation; activity checks compare
// exact instants against the normalized end.
type ExternmentRecord struct {
	ID               id.ExterneeID `json:"id"`
	Name             string        `json:"name"`
	IdentityNumber   string        `json:"identity_number"`
	PoliceStation    string        `json:"police_station"`
	RestrictedAreaID id.AreaID     `json:"restricted_area_id"`
	PeriodStart      time.Time     `json:"period_start"`
	PeriodEnd        time.Time     `json:"period_end"`
	CreatedBy        string        `json:"created_by"`
	CreatedAt        time.Time     `json:"created_at"`
}

// New validates and normalizes a record. The period end lands on the last
// nanosecond of its UTC day so an order "until 15 March" covers the whole of
// 15 March.
func New(name, identityNumber, station string, areaID id.AreaID, start, end time.Time) (*ExternmentRecord, error) {
	name = strings.TrimSpace(name)
	identityNumber = strings.TrimSpace(identityNumber)
	station = strings.TrimSpace(station)

	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "name is required")
	}
	if identityNumber == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "identity number is required")
	}
	if station == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "police station is required")
	}
	if areaID.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "restricted area is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "externment period is required")
	}

	normStart := period.StartOfDayUTC(start)
	normEnd := period.EndOfDayUTC(end)
	if normEnd.Before(normStart) {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "externment period ends before it starts")
	}

	return &ExternmentRecord{
		ID:               id.NewExterneeID(),
		Name:             name,
		IdentityNumber:   identityNumber,
		PoliceStation:    station,
		RestrictedAreaID: areaID,
		PeriodStart:      normStart,
		PeriodEnd:        normEnd,
	}, nil
}

// OwningStation reports the station whose jurisdiction the record belongs to.
func (r *ExternmentRecord) OwningStation() string { return r.PoliceStation }

// IsActive reports whether the externment order still binds at the given
// instant.
func (r *ExternmentRecord) IsActive(now time.Time) bool {
	return period.IsActive(r.PeriodEnd, now)
}

// Remaining reports the countdown until the order lapses.
func (r *ExternmentRecord) Remaining(now time.Time) period.Remaining {
	return period.Until(r.PeriodEnd, now)
}
