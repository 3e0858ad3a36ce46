package core

import "time"

// Favorite flags and evidence lists are per-user state on a shared document.
// The stores key them by (document, username), so two users mutating the
// same document never write the same row and need no cross-user locking.
// Every attachment mutation still refreshes the document's LastModified,
// also when another user triggered it.

// ToggleFavorite flips the actor's favorite flag on a document and returns
// the new state. The actor must be able to view the document; the favorite
// store itself does not re-check visibility.
func (c *CoreDB) ToggleFavorite(actor DBUser, id string) (bool, error) {

	lock := c.lockDocument(id)
	lock.Lock()
	defer lock.Unlock()

	doc, err := c.DocumentDB.GetDocument(id)
	if err != nil {
		return false, err
	}
	if err := doc.CheckInvariants(); err != nil {
		return false, err
	}
	if err := RequireView(actor.Role(), doc, actor.Name()); err != nil {
		return false, err
	}

	var favorite = !doc.FavoriteOf(actor.Name())
	if err := c.FavoriteDB.SetFavorite(id, actor.Name(), favorite); err != nil {
		return false, err
	}

	return favorite, c.touch(doc)
}

// AddEvidence appends a filename to the actor's evidence list. It requires
// the evidence-upload capability and a document which requires evidence.
// The file itself has already been accepted and stored by the intake
// collaborator, only its name is recorded here.
func (c *CoreDB) AddEvidence(actor DBUser, id string, filename string) error {

	var role = actor.Role()
	if !role.CanUploadEvidence() {
		return denied(role, "upload evidence")
	}
	if filename == "" {
		return invalid("evidence filename is empty")
	}

	lock := c.lockDocument(id)
	lock.Lock()
	defer lock.Unlock()

	doc, err := c.DocumentDB.GetDocument(id)
	if err != nil {
		return err
	}
	if err := doc.CheckInvariants(); err != nil {
		return err
	}
	if !doc.RequiresEvidence {
		return denied(role, "upload evidence to a document which does not require it")
	}

	if err := c.EvidenceDB.AddEvidence(id, actor.Name(), filename); err != nil {
		return err
	}
	return c.touch(doc)
}

// RemoveEvidence removes a filename from the actor's evidence list, under
// the same gating as AddEvidence.
func (c *CoreDB) RemoveEvidence(actor DBUser, id string, filename string) error {

	var role = actor.Role()
	if !role.CanUploadEvidence() {
		return denied(role, "remove evidence")
	}
	if filename == "" {
		return invalid("evidence filename is empty")
	}

	lock := c.lockDocument(id)
	lock.Lock()
	defer lock.Unlock()

	doc, err := c.DocumentDB.GetDocument(id)
	if err != nil {
		return err
	}
	if err := doc.CheckInvariants(); err != nil {
		return err
	}
	if !doc.RequiresEvidence {
		return denied(role, "remove evidence from a document which does not require it")
	}

	if err := c.EvidenceDB.RemoveEvidence(id, actor.Name(), filename); err != nil {
		return err
	}
	return c.touch(doc)
}

// touch refreshes LastModified after an attachment mutation. The caller
// holds the document lock.
func (c *CoreDB) touch(doc *Document) error {
	var updated = doc.Copy()
	updated.LastModified = time.Now()
	return c.DocumentDB.UpdateDocument(updated)
}
