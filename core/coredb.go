package core

import (
	"database/sql"
	"net/http"
	"sync"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/storedocs/storedocs/filestore"
	"github.com/storedocs/storedocs/upload"
)

type CoreDB struct {
	CalendarDB
	DocumentDB
	EvidenceDB
	FavoriteDB
	UserDB
	Mailer         Mailer
	SessionManager *scs.SessionManager
	Uploads        upload.Store

	SqlDB *sql.DB // required for the init subcommand

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per document id
}

func (c *CoreDB) Init(sessionStore scs.Store, cookiePath string) error {

	c.SessionManager = scs.New()
	c.SessionManager.Store = sessionStore
	c.SessionManager.Cookie.Path = cookiePath + "/"
	c.SessionManager.Cookie.Persist = false                 // don't store the cookie across browser sessions
	c.SessionManager.Cookie.SameSite = http.SameSiteLaxMode // good CSRF protection if HTTP GET doesn't modify anything
	c.SessionManager.Cookie.Secure = false                  // else running on localhost or behind a http proxy fails
	c.SessionManager.IdleTimeout = 12 * time.Hour
	c.SessionManager.Lifetime = 720 * time.Hour

	c.Uploads = &filestore.Store{
		UploadDir: "./uploads",
	}

	c.locks = make(map[string]*sync.Mutex)

	return nil
}

// lockDocument returns the mutation lock for a document id. Mutations on the
// same document are serialized so that whole-record replacement stays
// atomic; reads don't take the lock and see a consistent snapshot.
func (c *CoreDB) lockDocument(id string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks == nil {
		c.locks = make(map[string]*sync.Mutex)
	}
	lock, ok := c.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[id] = lock
	}
	return lock
}

// mutateDocument loads a document under its lock, lets mutate change a copy,
// refreshes LastModified and replaces the stored record as a whole. If
// mutate returns an error, nothing is written.
func (c *CoreDB) mutateDocument(id string, mutate func(*Document) error) (*Document, error) {

	lock := c.lockDocument(id)
	lock.Lock()
	defer lock.Unlock()

	doc, err := c.DocumentDB.GetDocument(id)
	if err != nil {
		return nil, err
	}
	if err := doc.CheckInvariants(); err != nil {
		return nil, err
	}

	var updated = doc.Copy()
	if err := mutate(updated); err != nil {
		return nil, err
	}
	updated.LastModified = time.Now()

	if err := c.DocumentDB.UpdateDocument(updated); err != nil {
		return nil, err
	}
	return updated, nil
}
