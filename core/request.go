package core

import (
	"encoding/gob"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/text/language"
)

type Notification struct {
	Message string
	Style   string
}

func init() {
	gob.Register([]Notification{}) // required for storing Notifications in a session
}

var langMatcher = language.NewMatcher([]language.Tag{
	language.EuropeanSpanish, // default
	language.AmericanEnglish,
})

var monthNamesEs = strings.NewReplacer(
	"January", "enero",
	"February", "febrero",
	"March", "marzo",
	"April", "abril",
	"May", "mayo",
	"June", "junio",
	"July", "julio",
	"August", "agosto",
	"September", "septiembre",
	"October", "octubre",
	"November", "noviembre",
	"December", "diciembre",
)

// A Request is created by CoreDB.NewRequest.
type Request struct {
	db   *CoreDB // unexported, so it can't be accessed in templates
	User DBUser

	// http
	writer  http.ResponseWriter
	request *http.Request

	statusWritten bool

	// caching
	language language.Tag
}

// NewRequest creates a Request with the given http.ResponseWriter and http.Request.
// If a user is logged in, it sets Request.User.
func (c *CoreDB) NewRequest(w http.ResponseWriter, httpreq *http.Request) *Request {

	var req = &Request{
		db:      c,
		writer:  w,
		request: httpreq,
	}

	req.language, _ = language.MatchStrings(langMatcher, httpreq.Header.Get("Accept-Language"))

	if uid := c.SessionManager.GetInt(httpreq.Context(), "uid"); uid != 0 {
		u, err := c.UserDB.GetUser(uid)
		if u != nil && err == nil {
			req.User = u
		}
		// ignore errors
	}

	return req
}

// Danger adds a "danger" notification to the session.
func (req *Request) Danger(err error) {
	req.addNotification(err.Error(), "danger")
}

// Warning adds a "warning" notification to the session.
func (req *Request) Warning(format string, args ...interface{}) {
	req.addNotification(fmt.Sprintf(format, args...), "warning")
}

// Success adds a "success" notification to the session.
func (req *Request) Success(format string, args ...interface{}) {
	req.addNotification(fmt.Sprintf(format, args...), "success")
}

// style should be a bootstrap alert style without the leading "alert-"
func (req *Request) addNotification(message, style string) {
	notifications, _ := req.db.SessionManager.Get(req.request.Context(), "notifications").([]Notification)
	notifications = append(notifications, Notification{message, style})
	req.db.SessionManager.Put(req.request.Context(), "notifications", notifications)
}

// RenderNotifications removes all notifications from the session
// and renders them into an HTML string.
// If the HTTP status had already been written, it does nothing.
func (req *Request) RenderNotifications() template.HTML {
	var r string
	if !req.statusWritten {
		notifications, _ := req.db.SessionManager.Pop(req.request.Context(), "notifications").([]Notification)
		for _, n := range notifications {
			r += `<div class="alert alert-` + n.Style + ` mt-3" role="alert">` + template.HTMLEscapeString(n.Message) + `</div>`
		}
	}
	return template.HTML(r)
}

// Cleanup destroys the session (which means re-setting the cookie with zero
// lifetime) if the session has been modified and is empty now.
func (req *Request) Cleanup() {
	sessMan := req.db.SessionManager
	if sessMan.Status(req.request.Context()) == scs.Modified && len(sessMan.Keys(req.request.Context())) == 0 {
		_ = sessMan.Destroy(req.request.Context())
	}
}

// SeeOther sets the HTTP header to redirect to an URL.
func (req *Request) SeeOther(format string, args ...interface{}) {
	if req.statusWritten {
		return
	}
	var url = fmt.Sprintf(format, args...)
	http.Redirect(req.writer, req.request, url, http.StatusSeeOther)
	req.statusWritten = true
}

// Login tries to log in a user. On success, the user id is stored in the session.
func (req *Request) Login(name string, enteredPass string) error {
	if req.LoggedIn() {
		return nil
	}
	if u, err := req.db.UserDB.LoginUser(name, enteredPass); err == nil {
		req.User = u
	} else {
		return err // is ErrAuth if name or enteredPass is wrong
	}
	req.Success("Welcome %s! (%s)", req.User.Name(), req.User.Role().Label())
	req.db.SessionManager.Put(req.request.Context(), "uid", req.User.ID())
	return nil
}

func (req *Request) LoggedIn() bool {
	return req.User != nil
}

// Logout removes the user id from the session and calls req.Cleanup().
func (req *Request) Logout() {
	if req.LoggedIn() {
		req.db.SessionManager.Remove(req.request.Context(), "uid")
	}
	req.Cleanup()
}

// Username returns the logged-in user's name, or the empty string.
func (req *Request) Username() string {
	if req.User == nil {
		return ""
	}
	return req.User.Name()
}

// Role returns the logged-in user's role, or the empty Role.
func (req *Request) Role() Role {
	if req.User == nil {
		return Role("")
	}
	return req.User.Role()
}

func (req *Request) CanEdit() bool {
	return req.User != nil && req.User.Role().CanEdit()
}

func (req *Request) CanSuperEdit() bool {
	return req.User != nil && req.User.Role().CanSuperEdit()
}

func (req *Request) CanDelete() bool {
	return req.User != nil && req.User.Role().CanDelete()
}

func (req *Request) CanManageCalendar() bool {
	return req.User != nil && req.User.Role().CanManageCalendar()
}

func (req *Request) CanUploadEvidence() bool {
	return req.User != nil && req.User.Role().CanUploadEvidence()
}

// FormatDate renders a date in the request's language.
func (req *Request) FormatDate(t time.Time) string {
	b, _ := req.language.Base()
	switch b.String() {
	case "es":
		return monthNamesEs.Replace(t.Format("2 de January de 2006"))
	default:
		return t.Format("January 2, 2006")
	}
}

// FormatDateTime renders a timestamp in the request's language.
func (req *Request) FormatDateTime(t time.Time) string {
	b, _ := req.language.Base()
	switch b.String() {
	case "es":
		return monthNamesEs.Replace(t.Format("2 de January de 2006 15:04"))
	default:
		return t.Format("January 2, 2006 3:04 PM")
	}
}
