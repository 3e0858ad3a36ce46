package backend

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alexedwards/scs/v2/memstore"
	"github.com/storedocs/storedocs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUser struct {
	id   int
	name string
	role core.Role
}

func (u fakeUser) ID() int         { return u.id }
func (u fakeUser) Name() string    { return u.name }
func (u fakeUser) Role() core.Role { return u.role }

type fakeUserDB struct {
	users map[string]fakeUser // by name, password is always "secret"
}

func (db *fakeUserDB) ChangePassword(u core.DBUser, old, new string) error { return nil }
func (db *fakeUserDB) Delete(u core.DBUser) error                         { return nil }

func (db *fakeUserDB) GetUser(id int) (core.DBUser, error) {
	for _, u := range db.users {
		if u.id == id {
			return u, nil
		}
	}
	return nil, errors.New("no such user")
}

func (db *fakeUserDB) GetAllUsers(limit, offset int) ([]core.DBUser, error) { return nil, nil }

func (db *fakeUserDB) GetSupervisors() ([]core.DBUser, error) { return nil, nil }

func (db *fakeUserDB) InsertUser(name string, role core.Role) error { return nil }

func (db *fakeUserDB) LoginUser(name, password string) (core.DBUser, error) {
	u, ok := db.users[name]
	if !ok || password != "secret" {
		return nil, errors.New("authentication failed")
	}
	return u, nil
}

func (db *fakeUserDB) SetPassword(u core.DBUser, password string) error { return nil }
func (db *fakeUserDB) Writeable() bool                                  { return true }

type fakeDocDB struct {
	docs []*core.Document
}

func (db *fakeDocDB) GetDocument(id string) (*core.Document, error) {
	for _, d := range db.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, errors.New("no such document")
}

func (db *fakeDocDB) GetAllDocuments() ([]*core.Document, error) { return db.docs, nil }
func (db *fakeDocDB) InsertDocument(d *core.Document) error      { return nil }
func (db *fakeDocDB) UpdateDocument(d *core.Document) error      { return nil }
func (db *fakeDocDB) DeleteDocument(id string) error             { return nil }

func (db *fakeDocDB) SetFavorite(documentID, username string, favorite bool) error { return nil }
func (db *fakeDocDB) DeleteFavorites(documentID string) error                      { return nil }
func (db *fakeDocDB) AddEvidence(documentID, username, filename string) error      { return nil }
func (db *fakeDocDB) RemoveEvidence(documentID, username, filename string) error   { return nil }
func (db *fakeDocDB) DeleteEvidence(documentID string) error                       { return nil }

func newTestApp(t *testing.T) http.Handler {

	var docs = &fakeDocDB{docs: []*core.Document{
		{
			ID: "d1", Title: "Manual de apertura", Content: "Rutina.", Category: "Operaciones",
			Author: "carmen", Status: core.StatusPublished, Priority: core.PriorityNormal,
			TargetGroups:  []core.Role{core.StoreStaff},
			EvidenceFiles: map[string][]string{}, Favorites: map[string]bool{},
		},
		{
			ID: "d2", Title: "Campaña interna", Content: "Solo corporate.", Category: "Marketing",
			Author: "luis", Status: core.StatusPublished, Priority: core.PriorityNormal,
			TargetGroups:  []core.Role{core.Corporate},
			EvidenceFiles: map[string][]string{}, Favorites: map[string]bool{},
		},
	}}

	var db = &core.CoreDB{
		DocumentDB: docs,
		FavoriteDB: docs,
		EvidenceDB: docs,
		UserDB: &fakeUserDB{users: map[string]fakeUser{
			"marta": {3, "marta", core.StoreStaff},
		}},
	}
	require.NoError(t, db.Init(memstore.New(), ""))

	return db.SessionManager.LoadAndSave(NewAppRouter(db, ""))
}

func doLogin(t *testing.T, app http.Handler) *http.Cookie {

	var form = url.Values{"username": {"marta"}, "password": {"secret"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	return cookies[0]
}

func TestLoginAndCatalog(t *testing.T) {
	app := newTestApp(t)
	cookie := doLogin(t, app)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Manual de apertura")
	assert.NotContains(t, rec.Body.String(), "Campaña interna", "documents for other groups stay hidden")
}

func TestLoginFailure(t *testing.T) {
	app := newTestApp(t)

	var form = url.Values{"username": {"marta"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	// login page is rendered again, no redirect
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestCatalogSearchFilter(t *testing.T) {
	app := newTestApp(t)
	cookie := doLogin(t, app)

	req := httptest.NewRequest(http.MethodGet, "/?q=APERTURA", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Manual de apertura")

	req = httptest.NewRequest(http.MethodGet, "/?q=nómina", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No documents match")
}
