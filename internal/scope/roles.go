// Package scope is the pure authorization core: role definitions, capability
// predicates, and jurisdiction-scoped visibility filtering.
//
// Everything in this package is a deterministic function of its arguments. No
// store access, no context reads, no mutation of inputs. Callers pass the
// acting user explicitly; nothing here consults global session state.
package scope

import "strings"

// Role is the closed set of actor roles. Anything outside the enumeration is
// treated as RoleUnknown, which sees nothing (fail-closed, not an error).
type Role string

const (
	// RoleCP is the Commissioner of Police: city-wide authority, no
	// jurisdiction restriction.
	RoleCP Role = "CP"
	// RoleDCP is a Deputy Commissioner, scoped to a zone.
	RoleDCP Role = "DCP"
	// RoleACP is an Assistant Commissioner, scoped to a police station.
	RoleACP Role = "ACP"
	// RoleStationAdmin administers a single police station.
	RoleStationAdmin Role = "STATION_ADMIN"
	// RolePSI is a Police Sub-Inspector, scoped to a police station.
	RolePSI Role = "PSI"
	// RoleCriminal is the subject-facing role: an externed person who sees
	// only their own record, never the administrative roster.
	RoleCriminal Role = "CRIMINAL"
	// RoleUnknown is the fall-through for malformed role strings.
	RoleUnknown Role = ""
)

// ParseRole maps a raw role string onto the closed enumeration. Unknown
// values map to RoleUnknown rather than an error; the evaluator's rule chain
// then yields an empty view.
func ParseRole(raw string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(raw))) {
	case RoleCP:
		return RoleCP
	case RoleDCP:
		return RoleDCP
	case RoleACP:
		return RoleACP
	case RoleStationAdmin:
		return RoleStationAdmin
	case RolePSI:
		return RolePSI
	case RoleCriminal:
		return RoleCriminal
	default:
		return RoleUnknown
	}
}

// IsAdministrative reports whether the role belongs to the police-side
// hierarchy (as opposed to the subject-facing CRIMINAL role).
func (r Role) IsAdministrative() bool {
	switch r {
	case RoleCP, RoleDCP, RoleACP, RoleStationAdmin, RolePSI:
		return true
	}
	return false
}
