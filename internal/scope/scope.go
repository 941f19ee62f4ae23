package scope

// Actor is the authenticated caller as seen by the evaluator. It is built by
// the auth middleware from verified token claims and passed down explicitly.
type Actor struct {
	Role Role
	// Zone scopes DCP visibility. Empty for roles not scoped by zone.
	Zone string
	// Station scopes ACP/STATION_ADMIN/PSI visibility.
	Station string
	// IdentityNumber keys the subject-facing view for RoleCriminal.
	IdentityNumber string
}

// Subject is implemented by any record carrying an owning police station.
// Records whose station is empty carry no jurisdiction and are visible only
// to CP.
type Subject interface {
	OwningStation() string
}

// Zoned is optionally implemented by records that carry an explicit zone.
// When absent (or empty), zone membership is resolved through the Directory
// and through nothing else.
type Zoned interface {
	OwningZone() string
}

// Directory resolves a police station to its administrative zone. It is the
// single authoritative mapping; the evaluator never approximates zone
// membership by other means.
type Directory interface {
	ZoneOf(station string) (string, bool)
}

// Filter returns the subset of records visible to the actor.
//
// Rule chain (fail-closed, first match wins):
//  1. nil actor: empty.
//  2. CP: everything.
//  3. DCP: records in the actor's zone, resolving station→zone through dir.
//  4. ACP/STATION_ADMIN/PSI: records owned by the actor's station.
//  5. any other role (CRIMINAL, unknown): empty.
//
// A record with no jurisdiction at all is excluded from every non-CP view,
// and an actor missing the jurisdiction value for their scoping dimension
// sees nothing. The input slice is never mutated; the result is always
// non-nil.
func Filter[T Subject](actor *Actor, dir Directory, records []T) []T {
	visible := make([]T, 0, len(records))
	if actor == nil {
		return visible
	}

	switch actor.Role {
	case RoleCP:
		return append(visible, records...)

	case RoleDCP:
		if actor.Zone == "" {
			return visible
		}
		for _, rec := range records {
			if zoneOf(rec, dir) == actor.Zone {
				visible = append(visible, rec)
			}
		}
		return visible

	case RoleACP, RoleStationAdmin, RolePSI:
		if actor.Station == "" {
			return visible
		}
		for _, rec := range records {
			if station := rec.OwningStation(); station != "" && station == actor.Station {
				visible = append(visible, rec)
			}
		}
		return visible

	default:
		return visible
	}
}

// CanSee reports whether a single record falls inside the actor's scope.
func CanSee[T Subject](actor *Actor, dir Directory, record T) bool {
	return len(Filter(actor, dir, []T{record})) == 1
}

// zoneOf resolves a record's zone: an explicit zone wins, otherwise the
// directory resolves the owning station. Unresolvable records yield "" and
// therefore never match a DCP's zone.
func zoneOf(rec Subject, dir Directory) string {
	if z, ok := rec.(Zoned); ok {
		if zone := z.OwningZone(); zone != "" {
			return zone
		}
	}
	station := rec.OwningStation()
	if station == "" || dir == nil {
		return ""
	}
	zone, ok := dir.ZoneOf(station)
	if !ok {
		return ""
	}
	return zone
}
