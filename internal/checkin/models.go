// Package checkin implements the daily hazari flow: an externed person
// reports their position once per day, and the system records whether that
// position violated their restricted area.
package checkin

import (
	"strings"
	"time"

	dErrors "tadipaar/pkg/domain-errors"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/geofence"
)

// CheckInLog is one immutable hazari submission. IsViolation is computed
// exactly once at submission time and never re-evaluated, so later changes
// to the restricted area cannot rewrite history.
type CheckInLog struct {
	ID             id.CheckInID   `json:"id"`
	IdentityNumber string         `json:"identity_number"`
	PoliceStation  string         `json:"police_station"`
	Location       geofence.Point `json:"location"`
	PhotoRef       string         `json:"photo_ref,omitempty"`
	Device         string         `json:"device,omitempty"`
	CapturedAt     time.Time      `json:"captured_at"`
	IsViolation    bool           `json:"is_violation"`
}

// OwningStation reports the station whose jurisdiction the log belongs to.
func (l *CheckInLog) OwningStation() string { return l.PoliceStation }

// SOSReason enumerates the grounds on which a subject may raise an alert.
type SOSReason string

const (
	ReasonMedical      SOSReason = "medical"
	ReasonCourtSummons SOSReason = "court_summons"
	ReasonBereavement  SOSReason = "bereavement"
)

// ParseSOSReason validates a raw reason string.
func ParseSOSReason(raw string) (SOSReason, error) {
	switch SOSReason(strings.ToLower(strings.TrimSpace(raw))) {
	case ReasonMedical:
		return ReasonMedical, nil
	case ReasonCourtSummons:
		return ReasonCourtSummons, nil
	case ReasonBereavement:
		return ReasonBereavement, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "reason must be one of medical, court_summons, bereavement")
	}
}

// SOSAlert is an emergency exemption request raised by a subject.
type SOSAlert struct {
	ID             id.AlertID     `json:"id"`
	IdentityNumber string         `json:"identity_number"`
	PoliceStation  string         `json:"police_station"`
	Reason         SOSReason      `json:"reason"`
	Detail         string         `json:"detail,omitempty"`
	Location       geofence.Point `json:"location"`
	RaisedAt       time.Time      `json:"raised_at"`
}

// OwningStation reports the station whose jurisdiction the alert belongs to.
func (a *SOSAlert) OwningStation() string { return a.PoliceStation }
