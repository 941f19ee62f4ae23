// Package audit records who did what: record creation and deletion, hazari
// check-ins, SOS alerts, and logins. Events are append-only facts; nothing in
// the system updates or deletes them.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Kind enumerates auditable actions.
type Kind string

const (
	KindLogin           Kind = "login"
	KindExterneeCreated Kind = "externee.created"
	KindExterneeDeleted Kind = "externee.deleted"
	KindOfficerCreated  Kind = "officer.created"
	KindOfficerDeleted  Kind = "officer.deleted"
	KindAreaCreated     Kind = "area.created"
	KindAreaDeleted     Kind = "area.deleted"
	KindCheckIn         Kind = "checkin.submitted"
	KindViolation       Kind = "checkin.violation"
	KindSOS             Kind = "sos.raised"
)

// Event is one audit fact. Subject identifies what was acted on, a record ID
// or an identity number depending on Kind.
type Event struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"kind"`
	ActorRole string    `json:"actor_role,omitempty"`
	Station   string    `json:"station,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEvent stamps a fresh event; callers fill the contextual fields.
func NewEvent(kind Kind, now time.Time) Event {
	return Event{ID: uuid.NewString(), Kind: kind, Timestamp: now}
}
