package officer

import (
	"context"
	"errors"
	"log/slog"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/sentinel"
	"tadipaar/pkg/requestcontext"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/audit"
	"tadipaar/internal/scope"
)

// Emitter publishes audit events.
type Emitter interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service enforces capability and jurisdiction rules around the roster.
type Service struct {
	store     Store
	directory scope.Directory
	auditor   Emitter
	logger    *slog.Logger
}

func NewService(store Store, directory scope.Directory, auditor Emitter, logger *slog.Logger) *Service {
	return &Service{store: store, directory: directory, auditor: auditor, logger: logger}
}

// CreateInput carries the fields of a new roster entry.
type CreateInput struct {
	Name          string
	BuckleNumber  string
	Rank          string
	PoliceStation string
	Mobile        string
}

// Create adds an officer to the roster.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Officer, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.Role.CanManageOfficers() {
		return nil, dErrors.New(dErrors.CodeForbidden, "role may not manage the officer roster")
	}

	officer, err := New(in.Name, in.BuckleNumber, in.Rank, in.PoliceStation, in.Mobile)
	if err != nil {
		return nil, err
	}
	officer.CreatedAt = requestcontext.Now(ctx)

	if err := s.store.Create(ctx, officer); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "buckle number already on the roster")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "officer creation failed")
	}

	event := audit.NewEvent(audit.KindOfficerCreated, officer.CreatedAt)
	event.ActorRole = string(actor.Role)
	event.Station = officer.PoliceStation
	event.Subject = officer.ID.String()
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "officer added to roster",
		"officer_id", officer.ID,
		"station", officer.PoliceStation,
		"rank", officer.Rank,
	)
	return officer, nil
}

// List returns the roster entries the actor's jurisdiction covers.
func (s *Service) List(ctx context.Context) ([]*Officer, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	officers, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "officer listing failed")
	}
	return scope.Filter(actor, s.directory, officers), nil
}

// Delete removes a roster entry. Only CP and DCP may delete.
func (s *Service) Delete(ctx context.Context, officerID id.OfficerID) error {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.Role.CanDeleteOfficer() {
		return dErrors.New(dErrors.CodeForbidden, "role may not remove officers from the roster")
	}

	officer, err := s.store.FindByID(ctx, officerID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "officer not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "officer lookup failed")
	}
	if !scope.CanSee(actor, s.directory, officer) {
		return dErrors.New(dErrors.CodeNotFound, "officer not found")
	}

	if err := s.store.Delete(ctx, officerID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "officer not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "officer deletion failed")
	}

	event := audit.NewEvent(audit.KindOfficerDeleted, requestcontext.Now(ctx))
	event.ActorRole = string(actor.Role)
	event.Station = officer.PoliceStation
	event.Subject = officer.ID.String()
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "officer removed from roster",
		"officer_id", officerID,
		"station", officer.PoliceStation,
	)
	return nil
}
