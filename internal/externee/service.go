package externee

import (
	"context"
	"errors"
	"log/slog"
	"time"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/sentinel"
	"tadipaar/pkg/requestcontext"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/audit"
	"tadipaar/internal/scope"
)

// AreaChecker verifies that a restricted area exists before a record may
// reference it.
type AreaChecker interface {
	Exists(ctx context.Context, areaID id.AreaID) (bool, error)
}

// Emitter publishes audit events.
type Emitter interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service enforces capability and jurisdiction rules around the store.
type Service struct {
	store     Store
	areas     AreaChecker
	directory scope.Directory
	auditor   Emitter
	logger    *slog.Logger
}

func NewService(store Store, areas AreaChecker, directory scope.Directory, auditor Emitter, logger *slog.Logger) *Service {
	return &Service{store: store, areas: areas, directory: directory, auditor: auditor, logger: logger}
}

// CreateInput carries the fields of a new externment order.
type CreateInput struct {
	Name             string
	IdentityNumber   string
	PoliceStation    string
	RestrictedAreaID id.AreaID
	PeriodStart      time.Time
	PeriodEnd        time.Time
}

// Create registers a new externment record.
func (s *Service) Create(ctx context.Context, in CreateInput) (*ExternmentRecord, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.Role.CanCreateExternmentRecord() {
		return nil, dErrors.New(dErrors.CodeForbidden, "role may not create externment records")
	}

	record, err := New(in.Name, in.IdentityNumber, in.PoliceStation, in.RestrictedAreaID, in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, err
	}

	exists, err := s.areas.Exists(ctx, in.RestrictedAreaID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "restricted area lookup failed")
	}
	if !exists {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "restricted area does not exist")
	}

	record.CreatedBy = string(actor.Role)
	record.CreatedAt = requestcontext.Now(ctx)

	if err := s.store.Create(ctx, record); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "an externment record already exists for this identity number")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "externment record creation failed")
	}

	recordsCreated.Inc()
	event := audit.NewEvent(audit.KindExterneeCreated, record.CreatedAt)
	event.ActorRole = string(actor.Role)
	event.Station = record.PoliceStation
	event.Subject = record.ID.String()
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "externment record created",
		"record_id", record.ID,
		"station", record.PoliceStation,
		"period_end", record.PeriodEnd,
	)
	return record, nil
}

// Get returns one record if the actor's jurisdiction covers it. Records
// outside the actor's scope are reported as not found, not as forbidden.
func (s *Service) Get(ctx context.Context, recordID id.ExterneeID) (*ExternmentRecord, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	record, err := s.store.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "externment record not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "externment record lookup failed")
	}
	if !scope.CanSee(actor, s.directory, record) {
		return nil, dErrors.New(dErrors.CodeNotFound, "externment record not found")
	}
	return record, nil
}

// List returns the records the actor's jurisdiction covers.
func (s *Service) List(ctx context.Context) ([]*ExternmentRecord, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	records, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "externment record listing failed")
	}
	return scope.Filter(actor, s.directory, records), nil
}

// Delete removes a record. Only CP and DCP may delete, and only within the
// jurisdiction they can see.
func (s *Service) Delete(ctx context.Context, recordID id.ExterneeID) error {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.Role.CanDeleteExternmentRecord() {
		return dErrors.New(dErrors.CodeForbidden, "role may not delete externment records")
	}

	record, err := s.store.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "externment record not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "externment record lookup failed")
	}
	if !scope.CanSee(actor, s.directory, record) {
		return dErrors.New(dErrors.CodeNotFound, "externment record not found")
	}

	if err := s.store.Delete(ctx, recordID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "externment record not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "externment record deletion failed")
	}

	recordsDeleted.Inc()
	event := audit.NewEvent(audit.KindExterneeDeleted, requestcontext.Now(ctx))
	event.ActorRole = string(actor.Role)
	event.Station = record.PoliceStation
	event.Subject = record.ID.String()
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "externment record deleted",
		"record_id", recordID,
		"station", record.PoliceStation,
	)
	return nil
}

// FindByIdentityNumber resolves the record bound to a subject's identity
// number. Used by the check-in flow and the subject's own order view, which
// carry their own authorization.
func (s *Service) FindByIdentityNumber(ctx context.Context, identityNumber string) (*ExternmentRecord, error) {
	record, err := s.store.FindByIdentityNumber(ctx, identityNumber)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "no externment record for this identity number")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "externment record lookup failed")
	}
	return record, nil
}
