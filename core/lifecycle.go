package core

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// A CreateRequest carries everything a new document is made of.
type CreateRequest struct {
	Title            string
	Content          string
	Category         string
	Tags             []string
	AttachedFiles    []string
	HighPriority     bool
	RequiresEvidence bool
	TargetGroups     []Role

	// SendToReview routes the new document into review with the given
	// supervisor. It only applies to actors with edit but not super-edit
	// capability; super-edit actors publish directly.
	SendToReview       bool
	AssignedSupervisor string
}

// An EditRequest replaces the content fields of an existing document.
type EditRequest struct {
	Title         string
	Content       string
	Category      string
	Tags          []string
	AttachedFiles []string
	TargetGroups  []Role
}

func validateContent(title, content, category string, targetGroups []Role) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" || strings.TrimSpace(category) == "" {
		return invalid("title, category and content are required")
	}
	if len(targetGroups) == 0 {
		return invalid("at least one target user group is required")
	}
	for _, r := range targetGroups {
		if !r.Valid() {
			return invalid("unknown target group %q", r)
		}
	}
	return nil
}

// CreateDocument creates a document for an edit-capable actor.
//
// The initial status depends on the actor and the request: routing to review
// puts it into review with ReviewedBy set to the creator and notifies the
// assigned supervisor; a super-edit actor publishes directly; anyone else
// starts with a draft. Requesting review without a supervisor is a
// validation error, rejected before any state is created.
func (c *CoreDB) CreateDocument(actor DBUser, req CreateRequest) (*Document, error) {

	var role = actor.Role()
	if !role.CanEdit() {
		return nil, denied(role, "create documents")
	}

	if err := validateContent(req.Title, req.Content, req.Category, req.TargetGroups); err != nil {
		return nil, err
	}
	if req.SendToReview && req.AssignedSupervisor == "" {
		return nil, invalid("a supervisor must be selected for review")
	}

	var doc = &Document{
		ID:               uuid.NewString(),
		Title:            req.Title,
		Content:          req.Content,
		Category:         req.Category,
		Tags:             req.Tags,
		AttachedFiles:    req.AttachedFiles,
		Author:           actor.Name(),
		LastModified:     time.Now(),
		Status:           StatusDraft,
		Priority:         PriorityNormal,
		RequiresEvidence: req.RequiresEvidence,
		TargetGroups:     req.TargetGroups,
		EvidenceFiles:    map[string][]string{},
		Favorites:        map[string]bool{},
	}
	if req.HighPriority {
		doc.Priority = PriorityHigh
	}

	switch {
	case req.SendToReview && !role.CanSuperEdit():
		doc.Status = StatusReview
		doc.ReviewedBy = actor.Name()
		doc.AssignedSupervisor = req.AssignedSupervisor
	case role.CanSuperEdit():
		doc.Status = StatusPublished
	}

	if err := c.DocumentDB.InsertDocument(doc); err != nil {
		return nil, err
	}

	if doc.Status == StatusReview {
		c.notifySupervisor(doc)
	}

	return doc, nil
}

// EditDocument replaces the content fields of a document. Content edits are
// legal in any status, including published.
func (c *CoreDB) EditDocument(actor DBUser, id string, req EditRequest) (*Document, error) {

	var role = actor.Role()
	if !role.CanEdit() {
		return nil, denied(role, "edit documents")
	}

	if err := validateContent(req.Title, req.Content, req.Category, req.TargetGroups); err != nil {
		return nil, err
	}

	return c.mutateDocument(id, func(d *Document) error {
		d.Title = req.Title
		d.Content = req.Content
		d.Category = req.Category
		d.Tags = append([]string(nil), req.Tags...)
		d.AttachedFiles = append([]string(nil), req.AttachedFiles...)
		d.TargetGroups = append([]Role(nil), req.TargetGroups...)
		return nil
	})
}

// SubmitForReview moves a draft into review. Any edit-capable actor may
// submit, also drafts of other authors; ReviewedBy records the actual
// submitter. The assigned supervisor is notified.
func (c *CoreDB) SubmitForReview(actor DBUser, id string, supervisor string) (*Document, error) {

	var role = actor.Role()
	if !role.CanEdit() {
		return nil, denied(role, "submit documents to review")
	}
	if supervisor == "" {
		return nil, invalid("a supervisor must be selected for review")
	}

	doc, err := c.mutateDocument(id, func(d *Document) error {
		if d.Status != StatusDraft {
			return invalid("only drafts can be sent to review")
		}
		d.Status = StatusReview
		d.ReviewedBy = actor.Name()
		d.AssignedSupervisor = supervisor
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.notifySupervisor(doc)
	return doc, nil
}

// Approve publishes a document in review and clears its supervisor and
// reviewer. Approving a document which is not in review fails, it does not
// silently change state, so a second approve of the same id cannot fire
// twice.
func (c *CoreDB) Approve(actor DBUser, id string) (*Document, error) {

	var role = actor.Role()
	if !role.CanSuperEdit() {
		return nil, denied(role, "approve documents")
	}

	return c.mutateDocument(id, func(d *Document) error {
		if d.Status != StatusReview {
			return invalid("document is not in review")
		}
		d.Status = StatusPublished
		d.AssignedSupervisor = ""
		d.ReviewedBy = ""
		return nil
	})
}

// Reject returns a document in review to exactly the draft state and clears
// its supervisor and reviewer.
func (c *CoreDB) Reject(actor DBUser, id string) (*Document, error) {

	var role = actor.Role()
	if !role.CanSuperEdit() {
		return nil, denied(role, "reject documents")
	}

	return c.mutateDocument(id, func(d *Document) error {
		if d.Status != StatusReview {
			return invalid("document is not in review")
		}
		d.Status = StatusDraft
		d.AssignedSupervisor = ""
		d.ReviewedBy = ""
		return nil
	})
}

// TogglePriority flips between normal and high priority.
func (c *CoreDB) TogglePriority(actor DBUser, id string) (*Document, error) {

	var role = actor.Role()
	if !role.CanEdit() {
		return nil, denied(role, "change document priority")
	}

	return c.mutateDocument(id, func(d *Document) error {
		if d.Priority == PriorityHigh {
			d.Priority = PriorityNormal
		} else {
			d.Priority = PriorityHigh
		}
		return nil
	})
}

// ToggleEvidenceRequired flips the evidence-requirement flag.
func (c *CoreDB) ToggleEvidenceRequired(actor DBUser, id string) (*Document, error) {

	var role = actor.Role()
	if !role.CanEdit() {
		return nil, denied(role, "change the evidence requirement")
	}

	return c.mutateDocument(id, func(d *Document) error {
		d.RequiresEvidence = !d.RequiresEvidence
		return nil
	})
}

// DeleteDocument removes the document and all its per-user attachment
// records. It shadows CoreDB.DocumentDB.DeleteDocument.
func (c *CoreDB) DeleteDocument(actor DBUser, id string) error {

	var role = actor.Role()
	if !role.CanDelete() {
		return denied(role, "delete documents")
	}

	lock := c.lockDocument(id)
	lock.Lock()
	defer lock.Unlock()

	if err := c.FavoriteDB.DeleteFavorites(id); err != nil {
		return err
	}
	if err := c.EvidenceDB.DeleteEvidence(id); err != nil {
		return err
	}
	return c.DocumentDB.DeleteDocument(id)
}

// ReviewQueue returns all documents awaiting review, for super-edit actors.
func (c *CoreDB) ReviewQueue(actor DBUser) ([]*Document, error) {

	var role = actor.Role()
	if !role.CanSuperEdit() {
		return nil, denied(role, "see the review queue")
	}

	docs, err := c.DocumentDB.GetAllDocuments()
	if err != nil {
		return nil, err
	}

	var queue = []*Document{}
	for _, d := range docs {
		if err := d.CheckInvariants(); err != nil {
			return nil, err
		}
		if d.Status == StatusReview {
			queue = append(queue, d)
		}
	}
	return queue, nil
}
