package core

import (
	"fmt"
	"time"
)

// in-memory stores for testing, wired like the sql stores: the document
// store owns the record, the favorite and evidence stores own the per-user
// maps

type testUser struct {
	id   int
	name string
	role Role
}

func (u testUser) ID() int      { return u.id }
func (u testUser) Name() string { return u.name }
func (u testUser) Role() Role   { return u.role }

var (
	corp  = testUser{1, "ana", Corporate}
	plus  = testUser{2, "luis", CorporatePlus}
	staff = testUser{3, "marta", StoreStaff}
	super = testUser{4, "carmen", Supervisor}
)

type memDB struct {
	docs  map[string]*Document
	order []string
}

func newMemDB() *memDB {
	return &memDB{docs: map[string]*Document{}}
}

func (m *memDB) GetDocument(id string) (*Document, error) {
	d, ok := m.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %s not found", id)
	}
	return d.Copy(), nil
}

func (m *memDB) GetAllDocuments() ([]*Document, error) {
	var all = make([]*Document, 0, len(m.order))
	for _, id := range m.order {
		if d, ok := m.docs[id]; ok {
			all = append(all, d.Copy())
		}
	}
	return all, nil
}

func (m *memDB) InsertDocument(d *Document) error {
	m.docs[d.ID] = d.Copy()
	m.order = append(m.order, d.ID)
	return nil
}

// UpdateDocument replaces the record but keeps the per-user maps, they are
// owned by the favorite and evidence stores.
func (m *memDB) UpdateDocument(d *Document) error {
	old, ok := m.docs[d.ID]
	if !ok {
		return fmt.Errorf("document %s not found", d.ID)
	}
	var updated = d.Copy()
	updated.Favorites = old.Favorites
	updated.EvidenceFiles = old.EvidenceFiles
	m.docs[d.ID] = updated
	return nil
}

func (m *memDB) DeleteDocument(id string) error {
	delete(m.docs, id)
	return nil
}

func (m *memDB) SetFavorite(documentID, username string, favorite bool) error {
	d, ok := m.docs[documentID]
	if !ok {
		return fmt.Errorf("document %s not found", documentID)
	}
	d.Favorites[username] = favorite
	return nil
}

func (m *memDB) DeleteFavorites(documentID string) error {
	if d, ok := m.docs[documentID]; ok {
		d.Favorites = map[string]bool{}
	}
	return nil
}

func (m *memDB) AddEvidence(documentID, username, filename string) error {
	d, ok := m.docs[documentID]
	if !ok {
		return fmt.Errorf("document %s not found", documentID)
	}
	d.EvidenceFiles[username] = append(d.EvidenceFiles[username], filename)
	return nil
}

func (m *memDB) RemoveEvidence(documentID, username, filename string) error {
	d, ok := m.docs[documentID]
	if !ok {
		return fmt.Errorf("document %s not found", documentID)
	}
	var kept = []string{}
	for _, f := range d.EvidenceFiles[username] {
		if f != filename {
			kept = append(kept, f)
		}
	}
	d.EvidenceFiles[username] = kept
	return nil
}

func (m *memDB) DeleteEvidence(documentID string) error {
	if d, ok := m.docs[documentID]; ok {
		d.EvidenceFiles = map[string][]string{}
	}
	return nil
}

type sentMail struct {
	To      string
	Subject string
}

type recorderMailer struct {
	sent []sentMail
}

func (m *recorderMailer) Send(to, subject, message string) error {
	m.sent = append(m.sent, sentMail{To: to, Subject: subject})
	return nil
}

func newTestDB() (*CoreDB, *memDB, *recorderMailer) {
	var mem = newMemDB()
	var mailer = &recorderMailer{}
	var db = &CoreDB{
		DocumentDB: mem,
		FavoriteDB: mem,
		EvidenceDB: mem,
		Mailer:     mailer,
	}
	return db, mem, mailer
}

// addDoc inserts a document directly, bypassing the operations.
func addDoc(mem *memDB, d *Document) *Document {
	if d.LastModified.IsZero() {
		d.LastModified = time.Now()
	}
	if d.EvidenceFiles == nil {
		d.EvidenceFiles = map[string][]string{}
	}
	if d.Favorites == nil {
		d.Favorites = map[string]bool{}
	}
	mem.InsertDocument(d)
	return d
}
