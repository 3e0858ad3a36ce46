package core

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCalendarDB struct {
	events []*CalendarEvent
}

func (m *memCalendarDB) GetAllEvents() ([]*CalendarEvent, error) {
	return m.events, nil
}

func (m *memCalendarDB) InsertEvent(ev *CalendarEvent) error {
	m.events = append(m.events, ev)
	return nil
}

func (m *memCalendarDB) DeleteEvent(id string) error {
	var kept = []*CalendarEvent{}
	for _, ev := range m.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	m.events = kept
	return nil
}

func TestAddEvent(t *testing.T) {
	var db = &CoreDB{CalendarDB: &memCalendarDB{}}

	ev, err := db.AddEvent(super, CalendarEvent{
		Title: "Inventario",
		Dates: []time.Time{time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		Kind:  EventImportant,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "carmen", ev.CreatedBy)

	events, err := db.Events()
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestAddEventValidation(t *testing.T) {
	var db = &CoreDB{CalendarDB: &memCalendarDB{}}
	var date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	var validationErr *ValidationError

	_, err := db.AddEvent(plus, CalendarEvent{Dates: []time.Time{date}, Kind: EventImportant})
	assert.True(t, errors.As(err, &validationErr), "title is required")

	_, err = db.AddEvent(plus, CalendarEvent{Title: "X", Kind: EventImportant})
	assert.True(t, errors.As(err, &validationErr), "a date is required")

	_, err = db.AddEvent(plus, CalendarEvent{Title: "X", Dates: []time.Time{date}, Kind: EventKind("party")})
	assert.True(t, errors.As(err, &validationErr), "the kind must be known")
}

func TestCalendarPermissions(t *testing.T) {
	var db = &CoreDB{CalendarDB: &memCalendarDB{}}
	var date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	for _, actor := range []testUser{corp, staff} {
		_, err := db.AddEvent(actor, CalendarEvent{Title: "X", Dates: []time.Time{date}, Kind: EventInactive})
		assert.True(t, errors.Is(err, ErrUnauthorized), actor.role)

		err = db.RemoveEvent(actor, "some-id")
		assert.True(t, errors.Is(err, ErrUnauthorized), actor.role)
	}

	ev, err := db.AddEvent(plus, CalendarEvent{Title: "X", Dates: []time.Time{date}, Kind: EventInactive})
	require.NoError(t, err)
	require.NoError(t, db.RemoveEvent(super, ev.ID))
}
