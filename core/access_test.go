package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanViewDraft(t *testing.T) {
	var doc = &Document{ID: "d1", Author: "luis", Status: StatusDraft}

	visible, err := CanView(CorporatePlus, doc, "luis")
	require.NoError(t, err)
	assert.True(t, visible, "the author sees their draft")

	// nobody else, not even a supervisor
	for _, r := range AllRoles {
		visible, err := CanView(r, doc, "someone-else")
		require.NoError(t, err)
		assert.False(t, visible, r)
	}
}

func TestCanViewReview(t *testing.T) {
	var doc = &Document{
		ID:                 "d1",
		Author:             "luis",
		Status:             StatusReview,
		AssignedSupervisor: "carmen",
		ReviewedBy:         "luis",
		TargetGroups:       AllRoles, // target groups do not apply in review
	}

	visible, err := CanView(Supervisor, doc, "anyone")
	require.NoError(t, err)
	assert.True(t, visible, "supervisors see documents in review")

	visible, err = CanView(CorporatePlus, doc, "luis")
	require.NoError(t, err)
	assert.True(t, visible, "the author sees their document in review")

	visible, err = CanView(Corporate, doc, "ana")
	require.NoError(t, err)
	assert.False(t, visible, "target groups are not consulted in review")
}

func TestCanViewPublished(t *testing.T) {
	var doc = &Document{
		ID:           "d1",
		Author:       "luis",
		Status:       StatusPublished,
		TargetGroups: []Role{StoreStaff},
	}

	visible, err := CanView(StoreStaff, doc, "marta")
	require.NoError(t, err)
	assert.True(t, visible)

	visible, err = CanView(Corporate, doc, "ana")
	require.NoError(t, err)
	assert.False(t, visible)

	// even the author does not see it when their role is not targeted
	visible, err = CanView(CorporatePlus, doc, "luis")
	require.NoError(t, err)
	assert.False(t, visible)
}

func TestCanViewUnknownStatus(t *testing.T) {
	var doc = &Document{ID: "d1", Status: Status("archived")}

	_, err := CanView(Supervisor, doc, "carmen")
	require.Error(t, err)

	var invariantErr *InvariantError
	assert.True(t, errors.As(err, &invariantErr), "corrupted status fails loudly, it is never a silent false")
	assert.Equal(t, "d1", invariantErr.DocumentID)
}

func TestRequireViewError(t *testing.T) {
	var doc = &Document{ID: "d1", Author: "luis", Status: StatusDraft}

	err := RequireView(Corporate, doc, "ana")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	var permErr *PermissionError
	assert.True(t, errors.As(err, &permErr))
	assert.Equal(t, Corporate, permErr.Role)
}
