package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	type row struct {
		role             Role
		createExternment bool
		deleteExternment bool
		createArea       bool
		deleteArea       bool
		manageOfficers   bool
		deleteOfficer    bool
		fullAnalytics    bool
	}
	rows := []row{
		{RoleCP, true, true, true, true, true, true, true},
		{RoleDCP, true, true, true, true, true, true, true},
		{RoleACP, true, false, true, false, true, false, true},
		{RoleStationAdmin, false, false, false, false, false, false, false},
		{RolePSI, false, false, false, false, false, false, false},
		{RoleCriminal, false, false, false, false, false, false, false},
		{RoleUnknown, false, false, false, false, false, false, false},
	}

	for _, r := range rows {
		t.Run(string(r.role), func(t *testing.T) {
			assert.Equal(t, r.createExternment, r.role.CanCreateExternmentRecord())
			assert.Equal(t, r.deleteExternment, r.role.CanDeleteExternmentRecord())
			assert.Equal(t, r.createArea, r.role.CanCreateRestrictedArea())
			assert.Equal(t, r.deleteArea, r.role.CanDeleteRestrictedArea())
			assert.Equal(t, r.manageOfficers, r.role.CanManageOfficers())
			assert.Equal(t, r.deleteOfficer, r.role.CanDeleteOfficer())
			assert.Equal(t, r.fullAnalytics, r.role.CanViewFullAnalytics())
		})
	}
}
