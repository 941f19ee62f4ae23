// Package period evaluates externment order lifetimes.
//
// IsActive compares exact instants; timezone hazards are handled upstream by
// normalizing calendar-date inputs to end-of-day UTC at record creation (see
// EndOfDayUTC), so a "valid through 15 Jun" order stays active for the whole
// of 15 Jun regardless of the server's local zone.
package period

import "time"

// IsActive reports whether the order is still in force: true iff now <= end.
func IsActive(end, now time.Time) bool {
	return !now.After(end)
}

// EndOfDayUTC normalizes a calendar date to the last nanosecond of that day
// in UTC. Record creation runs date inputs through this before storing
// PeriodEnd.
func EndOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
}

// StartOfDayUTC normalizes a calendar date to UTC midnight. Used for
// PeriodStart so the start/end invariant compares whole days.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Remaining is a floor-truncated countdown. Completed is the terminal
// sentinel once the order has lapsed; all components are then zero.
type Remaining struct {
	Days      int  `json:"days"`
	Hours     int  `json:"hours"`
	Minutes   int  `json:"minutes"`
	Seconds   int  `json:"seconds"`
	Completed bool `json:"completed"`
}

// Until computes the countdown from now to end. Never negative.
func Until(end, now time.Time) Remaining {
	diff := end.Sub(now)
	if diff < 0 {
		return Remaining{Completed: true}
	}
	return Remaining{
		Days:    int(diff / (24 * time.Hour)),
		Hours:   int(diff % (24 * time.Hour) / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}
