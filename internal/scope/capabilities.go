package scope

// Capability predicates. These are the single source of truth for role-gated
// actions; handlers and services consult them instead of comparing role
// strings inline.

// CanCreateExternmentRecord reports creation authority for externment orders.
func (r Role) CanCreateExternmentRecord() bool {
	return r == RoleCP || r == RoleDCP || r == RoleACP
}

// CanDeleteExternmentRecord is restricted to top-level authority.
func (r Role) CanDeleteExternmentRecord() bool {
	return r == RoleCP || r == RoleDCP
}

// CanCreateRestrictedArea reports creation authority for restricted areas.
func (r Role) CanCreateRestrictedArea() bool {
	return r == RoleCP || r == RoleDCP || r == RoleACP
}

// CanDeleteRestrictedArea is restricted to top-level authority.
func (r Role) CanDeleteRestrictedArea() bool {
	return r == RoleCP || r == RoleDCP
}

// CanManageOfficers reports authority to add officers to the roster.
func (r Role) CanManageOfficers() bool {
	return r == RoleCP || r == RoleDCP || r == RoleACP
}

// CanDeleteOfficer is restricted to top-level authority.
func (r Role) CanDeleteOfficer() bool {
	return r == RoleCP || r == RoleDCP
}

// CanViewFullAnalytics distinguishes the full dashboard from the reduced
// station summary served to station-level roles.
func (r Role) CanViewFullAnalytics() bool {
	return r == RoleCP || r == RoleDCP || r == RoleACP
}
