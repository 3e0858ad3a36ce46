package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilities(t *testing.T) {
	var table = []struct {
		role             Role
		edit             bool
		superEdit        bool
		del              bool
		calendar         bool
		uploadEvidence   bool
	}{
		{Corporate, false, false, false, false, true},
		{CorporatePlus, true, false, false, true, false},
		{StoreStaff, false, false, false, false, true},
		{Supervisor, true, true, true, true, false},
	}

	for _, row := range table {
		assert.True(t, row.role.CanRead(), row.role)
		assert.Equal(t, row.edit, row.role.CanEdit(), row.role)
		assert.Equal(t, row.superEdit, row.role.CanSuperEdit(), row.role)
		assert.Equal(t, row.del, row.role.CanDelete(), row.role)
		assert.Equal(t, row.calendar, row.role.CanManageCalendar(), row.role)
		assert.Equal(t, row.uploadEvidence, row.role.CanUploadEvidence(), row.role)
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range AllRoles {
		assert.True(t, r.Valid())
	}
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestNoRoleCombinesEditAndEvidence(t *testing.T) {
	for _, r := range AllRoles {
		assert.False(t, r.CanEdit() && r.CanUploadEvidence(), r)
	}
}
