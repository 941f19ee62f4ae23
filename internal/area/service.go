package area

import (
	"context"
	"errors"
	"log/slog"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/sentinel"
	"tadipaar/pkg/requestcontext"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/audit"
	"tadipaar/internal/geofence"
	"tadipaar/internal/scope"
)

// Emitter publishes audit events.
type Emitter interface {
	Emit(ctx context.Context, event audit.Event)
}

// RecordChecker reports whether any externment record still references an
// area. Deletion is refused while references exist; a record must never
// dangle without the area its subject checks in against.
type RecordChecker interface {
	ExistsByAreaID(ctx context.Context, areaID id.AreaID) (bool, error)
}

// Service enforces capability and jurisdiction rules around restricted areas.
type Service struct {
	store     Store
	records   RecordChecker
	directory scope.Directory
	auditor   Emitter
	logger    *slog.Logger
}

func NewService(store Store, records RecordChecker, directory scope.Directory, auditor Emitter, logger *slog.Logger) *Service {
	return &Service{store: store, records: records, directory: directory, auditor: auditor, logger: logger}
}

// CreateInput carries the fields of a new restricted area.
type CreateInput struct {
	Name          string
	PoliceStation string
	Center        geofence.Point
	RadiusMeters  float64
}

// Create registers a restricted area.
func (s *Service) Create(ctx context.Context, in CreateInput) (*RestrictedArea, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.Role.CanCreateRestrictedArea() {
		return nil, dErrors.New(dErrors.CodeForbidden, "role may not create restricted areas")
	}

	area, err := New(in.Name, in.PoliceStation, in.Center, in.RadiusMeters)
	if err != nil {
		return nil, err
	}
	area.CreatedAt = requestcontext.Now(ctx)

	if err := s.store.Create(ctx, area); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "restricted area creation failed")
	}

	event := audit.NewEvent(audit.KindAreaCreated, area.CreatedAt)
	event.ActorRole = string(actor.Role)
	event.Station = area.PoliceStation
	event.Subject = area.ID.String()
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "restricted area created",
		"area_id", area.ID,
		"station", area.PoliceStation,
		"radius_meters", area.RadiusMeters,
	)
	return area, nil
}

// List returns the areas the actor's jurisdiction covers.
func (s *Service) List(ctx context.Context) ([]*RestrictedArea, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}

	areas, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "restricted area listing failed")
	}
	return scope.Filter(actor, s.directory, areas), nil
}

// Delete removes an area. Only CP and DCP may delete.
func (s *Service) Delete(ctx context.Context, areaID id.AreaID) error {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if !actor.Role.CanDeleteRestrictedArea() {
		return dErrors.New(dErrors.CodeForbidden, "role may not delete restricted areas")
	}

	area, err := s.store.FindByID(ctx, areaID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "restricted area not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "restricted area lookup failed")
	}
	if !scope.CanSee(actor, s.directory, area) {
		return dErrors.New(dErrors.CodeNotFound, "restricted area not found")
	}

	referenced, err := s.records.ExistsByAreaID(ctx, areaID)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "externment record lookup failed")
	}
	if referenced {
		return dErrors.New(dErrors.CodeConflict, "restricted area is referenced by externment records")
	}

	if err := s.store.Delete(ctx, areaID); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeNotFound, "restricted area not found")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "restricted area deletion failed")
	}

	event := audit.NewEvent(audit.KindAreaDeleted, requestcontext.Now(ctx))
	event.ActorRole = string(actor.Role)
	event.Station = area.PoliceStation
	event.Subject = area.ID.String()
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "restricted area deleted",
		"area_id", areaID,
		"station", area.PoliceStation,
	)
	return nil
}

// Exists reports whether an area is registered. Used by record creation to
// reject dangling references.
func (s *Service) Exists(ctx context.Context, areaID id.AreaID) (bool, error) {
	_, err := s.store.FindByID(ctx, areaID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Resolve fetches an area for geofence evaluation. Internal to the check-in
// flow, which carries its own authorization.
func (s *Service) Resolve(ctx context.Context, areaID id.AreaID) (*RestrictedArea, error) {
	area, err := s.store.FindByID(ctx, areaID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "restricted area not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "restricted area lookup failed")
	}
	return area, nil
}
