package checkin

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/platform/sentinel"
	"tadipaar/pkg/requestcontext"

	id "tadipaar/pkg/domain"

	"tadipaar/internal/area"
	"tadipaar/internal/audit"
	"tadipaar/internal/externee"
	"tadipaar/internal/geofence"
	"tadipaar/internal/period"
	"tadipaar/internal/scope"
)

// RecordFinder resolves the externment record bound to an identity number.
type RecordFinder interface {
	FindByIdentityNumber(ctx context.Context, identityNumber string) (*externee.ExternmentRecord, error)
}

// AreaResolver fetches the restricted area a record references.
type AreaResolver interface {
	Resolve(ctx context.Context, areaID id.AreaID) (*area.RestrictedArea, error)
}

// Emitter publishes audit events.
type Emitter interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service implements the hazari flow: submission, history, the subject's
// order view, and SOS alerts.
type Service struct {
	logs      Store
	alerts    AlertStore
	externees RecordFinder
	areas     AreaResolver
	throttle  Throttle
	directory scope.Directory
	auditor   Emitter
	tracer    trace.Tracer
	logger    *slog.Logger
}

func NewService(logs Store, alerts AlertStore, externees RecordFinder, areas AreaResolver, throttle Throttle, directory scope.Directory, auditor Emitter, logger *slog.Logger) *Service {
	return &Service{
		logs:      logs,
		alerts:    alerts,
		externees: externees,
		areas:     areas,
		throttle:  throttle,
		directory: directory,
		auditor:   auditor,
		tracer:    otel.Tracer("tadipaar/checkin"),
		logger:    logger,
	}
}

// requireSubject extracts the criminal actor and resolves their record.
func (s *Service) requireSubject(ctx context.Context) (*scope.Actor, *externee.ExternmentRecord, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if actor.Role != scope.RoleCriminal {
		return nil, nil, dErrors.New(dErrors.CodeForbidden, "only externed subjects may use this endpoint")
	}
	if actor.IdentityNumber == "" {
		return nil, nil, dErrors.New(dErrors.CodeForbidden, "account carries no identity number")
	}
	record, err := s.externees.FindByIdentityNumber(ctx, actor.IdentityNumber)
	if err != nil {
		return nil, nil, err
	}
	return actor, record, nil
}

// SubmitInput carries one hazari submission.
type SubmitInput struct {
	Location geofence.Point
	PhotoRef string
}

// Submit records today's hazari. The geofence verdict is computed here,
// once, against the restricted area as it stands at submission time, and
// stored on the log permanently.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*CheckInLog, error) {
	actor, record, err := s.requireSubject(ctx)
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	if !record.IsActive(now) {
		return nil, dErrors.New(dErrors.CodeConflict, "externment period has completed")
	}

	restricted, err := s.areas.Resolve(ctx, record.RestrictedAreaID)
	if err != nil {
		return nil, err
	}

	// The slot is claimed only after the area resolves; a failed submission
	// must not consume the subject's one attempt for the day.
	if err := s.throttle.Reserve(ctx, record.IdentityNumber, now); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			submissions.WithLabelValues(outcomeThrottled).Inc()
			return nil, dErrors.New(dErrors.CodeThrottled, "hazari already submitted today")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "daily slot reservation failed")
	}

	ctx, span := s.tracer.Start(ctx, "checkin.evaluate_geofence")
	start := time.Now()
	isViolation := restricted.Circle().Violates(in.Location)
	geofenceEvalDuration.Observe(time.Since(start).Seconds())
	span.SetAttributes(
		attribute.String("checkin.area_id", restricted.ID.String()),
		attribute.Bool("checkin.violation", isViolation),
	)
	span.End()

	log := &CheckInLog{
		ID:             id.NewCheckInID(),
		IdentityNumber: record.IdentityNumber,
		PoliceStation:  record.PoliceStation,
		Location:       in.Location,
		PhotoRef:       in.PhotoRef,
		Device:         requestcontext.Device(ctx),
		CapturedAt:     now,
		IsViolation:    isViolation,
	}
	if err := s.logs.Create(ctx, log); err != nil {
		if releaseErr := s.throttle.Release(ctx, record.IdentityNumber, now); releaseErr != nil {
			s.logger.ErrorContext(ctx, "daily slot release failed",
				"identity_number", record.IdentityNumber,
				"error", releaseErr,
			)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "checkin persistence failed")
	}

	outcome := outcomeClear
	kind := audit.KindCheckIn
	if isViolation {
		outcome = outcomeViolation
		kind = audit.KindViolation
	}
	submissions.WithLabelValues(outcome).Inc()

	event := audit.NewEvent(kind, now)
	event.ActorRole = string(actor.Role)
	event.Station = record.PoliceStation
	event.Subject = record.IdentityNumber
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "hazari recorded",
		"identity_number", record.IdentityNumber,
		"station", record.PoliceStation,
		"violation", isViolation,
	)
	return log, nil
}

// ListScoped returns the logs the actor's jurisdiction covers. Subjects use
// ListOwn instead.
func (s *Service) ListScoped(ctx context.Context) ([]*CheckInLog, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if actor.Role == scope.RoleCriminal {
		return nil, dErrors.New(dErrors.CodeForbidden, "subjects may only view their own history")
	}

	logs, err := s.logs.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "checkin listing failed")
	}
	return scope.Filter(actor, s.directory, logs), nil
}

// ListOwn returns the calling subject's own history.
func (s *Service) ListOwn(ctx context.Context) ([]*CheckInLog, error) {
	_, record, err := s.requireSubject(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListByIdentityNumber(ctx, record.IdentityNumber)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "checkin listing failed")
	}
	return logs, nil
}

// OrderView is what a subject sees about their own externment order.
type OrderView struct {
	Record    *externee.ExternmentRecord `json:"record"`
	Area      *area.RestrictedArea       `json:"restricted_area"`
	Active    bool                       `json:"active"`
	Remaining period.Remaining           `json:"remaining"`
}

// Order returns the subject's own order with the live countdown.
func (s *Service) Order(ctx context.Context) (*OrderView, error) {
	_, record, err := s.requireSubject(ctx)
	if err != nil {
		return nil, err
	}
	restricted, err := s.areas.Resolve(ctx, record.RestrictedAreaID)
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	return &OrderView{
		Record:    record,
		Area:      restricted,
		Active:    record.IsActive(now),
		Remaining: record.Remaining(now),
	}, nil
}

// SOSInput carries an emergency exemption request.
type SOSInput struct {
	Reason   string
	Detail   string
	Location geofence.Point
}

// RaiseSOS records an emergency alert from a subject.
func (s *Service) RaiseSOS(ctx context.Context, in SOSInput) (*SOSAlert, error) {
	actor, record, err := s.requireSubject(ctx)
	if err != nil {
		return nil, err
	}

	reason, err := ParseSOSReason(in.Reason)
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	alert := &SOSAlert{
		ID:             id.NewAlertID(),
		IdentityNumber: record.IdentityNumber,
		PoliceStation:  record.PoliceStation,
		Reason:         reason,
		Detail:         in.Detail,
		Location:       in.Location,
		RaisedAt:       now,
	}
	if err := s.alerts.Create(ctx, alert); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "sos persistence failed")
	}

	sosAlerts.Inc()
	event := audit.NewEvent(audit.KindSOS, now)
	event.ActorRole = string(actor.Role)
	event.Station = record.PoliceStation
	event.Subject = record.IdentityNumber
	event.Detail = string(reason)
	event.RequestID = requestcontext.RequestID(ctx)
	s.auditor.Emit(ctx, event)

	s.logger.InfoContext(ctx, "sos alert raised",
		"identity_number", record.IdentityNumber,
		"station", record.PoliceStation,
		"reason", reason,
	)
	return alert, nil
}

// ListAlerts returns the SOS alerts the actor's jurisdiction covers.
func (s *Service) ListAlerts(ctx context.Context) ([]*SOSAlert, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if actor.Role == scope.RoleCriminal {
		return nil, dErrors.New(dErrors.CodeForbidden, "subjects may not list alerts")
	}

	alerts, err := s.alerts.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "alert listing failed")
	}
	return scope.Filter(actor, s.directory, alerts), nil
}
