package core

import (
	"time"
)

// A Document is the central record. Mutations never change it in place:
// operations copy the record, modify the copy and hand it back to the store
// as a whole, so a mutation is atomic with respect to other mutations on the
// same document.
type Document struct {
	ID            string // opaque, assigned at creation, never reused
	Title         string
	Content       string // markdown body
	Category      string
	Tags          []string
	AttachedFiles []string
	Author        string // username
	LastModified  time.Time

	Status           Status
	Priority         Priority
	RequiresEvidence bool

	// AssignedSupervisor and ReviewedBy are non-empty only while Status is
	// StatusReview. Both are cleared atomically with any transition out of
	// review.
	AssignedSupervisor string
	ReviewedBy         string // the user who submitted it into review

	// TargetGroups is consulted only while Status is StatusPublished.
	TargetGroups []Role

	// Per-user state, keyed by username. Each user's entries are independent
	// of every other user's; the stores persist them per (document, username)
	// so concurrent mutation by two different users never touches the same
	// row.
	EvidenceFiles map[string][]string
	Favorites     map[string]bool
}

// Targets returns whether the document's target groups include the role.
func (d *Document) Targets(role Role) bool {
	for _, r := range d.TargetGroups {
		if r == role {
			return true
		}
	}
	return false
}

// FavoriteOf returns whether the user has favorited the document.
func (d *Document) FavoriteOf(username string) bool {
	return d.Favorites[username]
}

// EvidenceOf returns the user's evidence file list. The result is shared
// with the document, callers must not modify it.
func (d *Document) EvidenceOf(username string) []string {
	return d.EvidenceFiles[username]
}

// Copy returns a deep copy, the unit of whole-record replacement.
func (d *Document) Copy() *Document {

	var c = *d

	c.Tags = append([]string(nil), d.Tags...)
	c.AttachedFiles = append([]string(nil), d.AttachedFiles...)
	c.TargetGroups = append([]Role(nil), d.TargetGroups...)

	c.EvidenceFiles = make(map[string][]string, len(d.EvidenceFiles))
	for username, files := range d.EvidenceFiles {
		c.EvidenceFiles[username] = append([]string(nil), files...)
	}

	c.Favorites = make(map[string]bool, len(d.Favorites))
	for username, fav := range d.Favorites {
		c.Favorites[username] = fav
	}

	return &c
}

// CheckInvariants returns an InvariantError if the record is corrupted.
// Operations call it before acting on a loaded document and fail loudly
// rather than guess a recovery.
func (d *Document) CheckInvariants() error {
	if !d.Status.Valid() {
		return &InvariantError{DocumentID: d.ID, Detail: "unknown status " + string(d.Status)}
	}
	if d.Status != StatusReview {
		if d.AssignedSupervisor != "" {
			return &InvariantError{DocumentID: d.ID, Detail: "assigned supervisor set outside review"}
		}
		if d.ReviewedBy != "" {
			return &InvariantError{DocumentID: d.ID, Detail: "reviewer set outside review"}
		}
	}
	return nil
}

// A DocumentDB stores documents. Implementations return records with the
// per-user maps populated. UpdateDocument replaces the whole record
// (including LastModified) except for the per-user maps, which are owned by
// FavoriteDB and EvidenceDB.
type DocumentDB interface {
	GetDocument(id string) (*Document, error)
	GetAllDocuments() ([]*Document, error) // insertion order
	InsertDocument(d *Document) error
	UpdateDocument(d *Document) error
	DeleteDocument(id string) error
}

// A FavoriteDB stores favorite flags per (document, username).
type FavoriteDB interface {
	SetFavorite(documentID, username string, favorite bool) error
	DeleteFavorites(documentID string) error
}

// An EvidenceDB stores evidence filename lists per (document, username),
// keeping insertion order per user.
type EvidenceDB interface {
	AddEvidence(documentID, username, filename string) error
	RemoveEvidence(documentID, username, filename string) error
	DeleteEvidence(documentID string) error
}
