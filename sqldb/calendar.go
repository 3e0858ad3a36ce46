package sqldb

import (
	"database/sql"
	"time"

	"github.com/storedocs/storedocs/core"
)

const dateFormat = "2006-01-02"

type CalendarDB struct {
	db     *sql.DB
	delete *sql.Stmt
	getAll *sql.Stmt
	insert *sql.Stmt
}

func NewCalendarDB(db *sql.DB) *CalendarDB {

	db.Exec(`
		CREATE TABLE IF NOT EXISTS calendar_event (
			id varchar(36) PRIMARY KEY,
			created int(11) NOT NULL,
			dates text NOT NULL,
			title text NOT NULL,
			kind varchar(16) NOT NULL,
			description text NOT NULL,
			createdBy varchar(128) NOT NULL,
			color varchar(16) NOT NULL
		);`)

	var calendarDB = &CalendarDB{}
	calendarDB.db = db
	calendarDB.delete = mustPrepare(db, "DELETE FROM calendar_event WHERE id = ?")
	calendarDB.getAll = mustPrepare(db, "SELECT id, dates, title, kind, description, createdBy, color FROM calendar_event ORDER BY created")
	calendarDB.insert = mustPrepare(db, "INSERT INTO calendar_event (id, created, dates, title, kind, description, createdBy, color) VALUES (?, ?, ?, ?, ?, ?, ?, ?)")
	return calendarDB
}

func (db *CalendarDB) GetAllEvents() ([]*core.CalendarEvent, error) {

	rows, err := db.getAll.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all = []*core.CalendarEvent{}
	for rows.Next() {
		var ev = &core.CalendarEvent{}
		var dates string
		if err := rows.Scan(&ev.ID, &dates, &ev.Title, &ev.Kind, &ev.Description, &ev.CreatedBy, &ev.Color); err != nil {
			return nil, err
		}
		for _, d := range splitList(dates) {
			date, err := time.Parse(dateFormat, d)
			if err != nil {
				return nil, err
			}
			ev.Dates = append(ev.Dates, date)
		}
		all = append(all, ev)
	}
	return all, rows.Err()
}

func (db *CalendarDB) InsertEvent(ev *core.CalendarEvent) error {
	var dates = make([]string, len(ev.Dates))
	for i, d := range ev.Dates {
		dates[i] = d.Format(dateFormat)
	}
	_, err := db.insert.Exec(ev.ID, time.Now().UnixNano(), joinList(dates), ev.Title,
		string(ev.Kind), ev.Description, ev.CreatedBy, ev.Color)
	return err
}

func (db *CalendarDB) DeleteEvent(id string) error {
	_, err := db.delete.Exec(id)
	return err
}
