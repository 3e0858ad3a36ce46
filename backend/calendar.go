package backend

import (
	"net/http"
	"strings"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/storedocs/storedocs/core"
)

var calendarTmpl = tmpl(`<h1>Calendar</h1>

	<div class="table-responsive">
		<table class="table">
			<thead>
				<tr>
					<th>Dates</th>
					<th>Title</th>
					<th>Kind</th>
					<th>Description</th>
					<th>Created by</th>
					{{ if .CanManageCalendar }}
						<th></th>
					{{ end }}
				</tr>
			</thead>
			<tbody>
				{{ range .Events }}
					<tr>
						<td>
							{{ range .Dates }}
								{{ $.FormatDate . }}<br>
							{{ end }}
						</td>
						<td><span style="color: {{ .Color }};">&#9632;</span> {{ .Title }}</td>
						<td>
							{{ if eq .Kind $.KindImportant }}
								<span class="badge badge-danger">Important</span>
							{{ else }}
								<span class="badge badge-secondary">Inactive day</span>
							{{ end }}
						</td>
						<td>{{ .Description }}</td>
						<td>{{ .CreatedBy }}</td>
						{{ if $.CanManageCalendar }}
							<td>
								<form method="post" action="calendar/delete/{{ .ID }}">
									<button type="submit" class="btn btn-sm btn-outline-danger">Delete</button>
								</form>
							</td>
						{{ end }}
					</tr>
				{{ else }}
					<tr>
						<td colspan="6">No calendar events.</td>
					</tr>
				{{ end }}
			</tbody>
		</table>
	</div>

	{{ if .CanManageCalendar }}

		<h2>Add Event</h2>

		<form method="post">

			<div class="form-group">
				<label>Title</label>
				<input type="text" class="form-control" name="title" required>
			</div>

			<div class="form-group">
				<label>Dates (YYYY-MM-DD, comma-separated)</label>
				<input type="text" class="form-control" name="dates" placeholder="2026-09-01, 2026-09-02" required>
			</div>

			<div class="form-group">
				<label>Kind</label>
				<select class="form-control" name="kind">
					<option value="important">Important</option>
					<option value="inactive">Inactive day</option>
				</select>
			</div>

			<div class="form-group">
				<label>Description</label>
				<input type="text" class="form-control" name="description">
			</div>

			<div class="form-group">
				<label>Color</label>
				<input type="color" class="form-control" name="color" value="#dc3545">
			</div>

			<button type="submit" class="btn btn-primary">Add event</button>

		</form>

	{{ end }}`)

type calendarData struct {
	*context
	Events []*core.CalendarEvent
}

func (data *calendarData) KindImportant() core.EventKind {
	return core.EventImportant
}

func parseDates(input string) ([]time.Time, error) {
	var dates = []time.Time{}
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		date, err := time.Parse("2006-01-02", part)
		if err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, nil
}

func calendar(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if req.Method == http.MethodPost {

		dates, err := parseDates(req.PostFormValue("dates"))
		if err != nil {
			return err
		}

		ev, err := ctx.db.AddEvent(ctx.User, core.CalendarEvent{
			Dates:       dates,
			Title:       req.PostFormValue("title"),
			Kind:        core.EventKind(req.PostFormValue("kind")),
			Description: req.PostFormValue("description"),
			Color:       req.PostFormValue("color"),
		})
		if err != nil {
			ctx.Danger(err)
		} else {
			ctx.Success("event %s has been added", ev.Title)
		}
		ctx.SeeOther("/calendar")
		return nil
	}

	events, err := ctx.db.Events()
	if err != nil {
		return err
	}

	return calendarTmpl.Execute(w, &calendarData{
		context: ctx,
		Events:  events,
	})
}

func calendarDelete(w http.ResponseWriter, req *http.Request, ctx *context, params httprouter.Params) error {

	if err := ctx.db.RemoveEvent(ctx.User, params.ByName("id")); err != nil {
		return err
	}

	ctx.Success("event has been deleted")
	ctx.SeeOther("/calendar")
	return nil
}
