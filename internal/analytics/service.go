// Package analytics aggregates the dashboard summary. It composes the
// jurisdiction-scoped listings of the other modules, so every number a user
// sees is derived from data they were already allowed to see.
package analytics

import (
	"context"
	"log/slog"
	"sort"

	dErrors "tadipaar/pkg/domain-errors"
	"tadipaar/pkg/requestcontext"

	"tadipaar/internal/area"
	"tadipaar/internal/checkin"
	"tadipaar/internal/externee"
	"tadipaar/internal/officer"
	"tadipaar/internal/period"
	"tadipaar/internal/scope"
)

// RecordLister lists externment records within the actor's jurisdiction.
type RecordLister interface {
	List(ctx context.Context) ([]*externee.ExternmentRecord, error)
}

// LogLister lists check-in logs within the actor's jurisdiction.
type LogLister interface {
	ListScoped(ctx context.Context) ([]*checkin.CheckInLog, error)
	ListAlerts(ctx context.Context) ([]*checkin.SOSAlert, error)
}

// OfficerLister lists roster entries within the actor's jurisdiction.
type OfficerLister interface {
	List(ctx context.Context) ([]*officer.Officer, error)
}

// AreaLister lists restricted areas within the actor's jurisdiction.
type AreaLister interface {
	List(ctx context.Context) ([]*area.RestrictedArea, error)
}

// Totals is the headline block of the dashboard.
type Totals struct {
	Externees       int `json:"externees"`
	ActiveExternees int `json:"active_externees"`
	Officers        int `json:"officers"`
	RestrictedAreas int `json:"restricted_areas"`
	CheckinsToday   int `json:"checkins_today"`
	ViolationsToday int `json:"violations_today"`
	ViolationsTotal int `json:"violations_total"`
	SOSAlerts       int `json:"sos_alerts"`
}

// StationSummary is the per-station breakdown shown to CP, DCP, and ACP.
type StationSummary struct {
	Station         string `json:"station"`
	Externees       int    `json:"externees"`
	ActiveExternees int    `json:"active_externees"`
	CheckinsToday   int    `json:"checkins_today"`
	ViolationsTotal int    `json:"violations_total"`
}

// Summary is the dashboard payload.
type Summary struct {
	Totals   Totals           `json:"totals"`
	Stations []StationSummary `json:"stations,omitempty"`
}

// Service computes dashboard summaries.
type Service struct {
	records  RecordLister
	logs     LogLister
	officers OfficerLister
	areas    AreaLister
	logger   *slog.Logger
}

func NewService(records RecordLister, logs LogLister, officers OfficerLister, areas AreaLister, logger *slog.Logger) *Service {
	return &Service{records: records, logs: logs, officers: officers, areas: areas, logger: logger}
}

// Summarize builds the dashboard for the calling actor. Roles with full
// analytics get the per-station breakdown; station-scoped roles get their
// own totals only.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	actor := requestcontext.Actor(ctx)
	if actor == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "authentication required")
	}
	if actor.Role == scope.RoleCriminal {
		return nil, dErrors.New(dErrors.CodeForbidden, "subjects have no dashboard")
	}

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	logs, err := s.logs.ListScoped(ctx)
	if err != nil {
		return nil, err
	}
	alerts, err := s.logs.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}
	officers, err := s.officers.List(ctx)
	if err != nil {
		return nil, err
	}
	areas, err := s.areas.List(ctx)
	if err != nil {
		return nil, err
	}

	now := requestcontext.Now(ctx)
	today := period.StartOfDayUTC(now)

	summary := &Summary{
		Totals: Totals{
			Externees:       len(records),
			Officers:        len(officers),
			RestrictedAreas: len(areas),
			SOSAlerts:       len(alerts),
		},
	}

	perStation := make(map[string]*StationSummary)
	station := func(name string) *StationSummary {
		entry, ok := perStation[name]
		if !ok {
			entry = &StationSummary{Station: name}
			perStation[name] = entry
		}
		return entry
	}

	for _, record := range records {
		entry := station(record.PoliceStation)
		entry.Externees++
		if record.IsActive(now) {
			summary.Totals.ActiveExternees++
			entry.ActiveExternees++
		}
	}
	for _, log := range logs {
		entry := station(log.PoliceStation)
		if !log.CapturedAt.Before(today) {
			summary.Totals.CheckinsToday++
			entry.CheckinsToday++
			if log.IsViolation {
				summary.Totals.ViolationsToday++
			}
		}
		if log.IsViolation {
			summary.Totals.ViolationsTotal++
			entry.ViolationsTotal++
		}
	}

	if actor.Role.CanViewFullAnalytics() {
		stations := make([]StationSummary, 0, len(perStation))
		for _, entry := range perStation {
			stations = append(stations, *entry)
		}
		sort.Slice(stations, func(i, j int) bool { return stations[i].Station < stations[j].Station })
		summary.Stations = stations
	}

	return summary, nil
}
