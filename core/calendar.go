package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventImportant EventKind = "important"
	EventInactive  EventKind = "inactive"
)

func (k EventKind) Valid() bool {
	return k == EventImportant || k == EventInactive
}

// A CalendarEvent can span multiple days.
type CalendarEvent struct {
	ID          string
	Dates       []time.Time
	Title       string
	Kind        EventKind
	Description string
	CreatedBy   string
	Color       string
}

type CalendarDB interface {
	GetAllEvents() ([]*CalendarEvent, error)
	InsertEvent(ev *CalendarEvent) error
	DeleteEvent(id string) error
}

// AddEvent creates a calendar event for a calendar-managing actor.
func (c *CoreDB) AddEvent(actor DBUser, ev CalendarEvent) (*CalendarEvent, error) {

	var role = actor.Role()
	if !role.CanManageCalendar() {
		return nil, denied(role, "manage the calendar")
	}

	if strings.TrimSpace(ev.Title) == "" {
		return nil, invalid("event title is required")
	}
	if len(ev.Dates) == 0 {
		return nil, invalid("at least one event date is required")
	}
	if !ev.Kind.Valid() {
		return nil, invalid("unknown event kind %q", ev.Kind)
	}

	ev.ID = uuid.NewString()
	ev.CreatedBy = actor.Name()

	if err := c.CalendarDB.InsertEvent(&ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// RemoveEvent deletes a calendar event.
func (c *CoreDB) RemoveEvent(actor DBUser, id string) error {
	var role = actor.Role()
	if !role.CanManageCalendar() {
		return denied(role, "manage the calendar")
	}
	return c.CalendarDB.DeleteEvent(id)
}

// Events returns all calendar events, visible to every logged-in user.
func (c *CoreDB) Events() ([]*CalendarEvent, error) {
	return c.CalendarDB.GetAllEvents()
}
