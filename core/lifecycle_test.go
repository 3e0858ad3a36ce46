package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateRequest {
	return CreateRequest{
		Title:        "Returns policy",
		Content:      "Returns are accepted within 30 days.",
		Category:     "Policies",
		TargetGroups: []Role{StoreStaff},
	}
}

func TestCreateDocumentDraft(t *testing.T) {
	db, _, mailer := newTestDB()

	doc, err := db.CreateDocument(plus, validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, StatusDraft, doc.Status)
	assert.Equal(t, PriorityNormal, doc.Priority)
	assert.Equal(t, "luis", doc.Author)
	assert.Empty(t, doc.AssignedSupervisor)
	assert.Empty(t, doc.ReviewedBy)
	assert.Empty(t, mailer.sent)
}

func TestCreateDocumentPublishesForSupervisor(t *testing.T) {
	db, _, _ := newTestDB()

	doc, err := db.CreateDocument(super, validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, StatusPublished, doc.Status)
}

func TestCreateDocumentSendToReview(t *testing.T) {
	db, _, mailer := newTestDB()

	var req = validCreateRequest()
	req.SendToReview = true
	req.AssignedSupervisor = "carmen"

	doc, err := db.CreateDocument(plus, req)
	require.NoError(t, err)

	assert.Equal(t, StatusReview, doc.Status)
	assert.Equal(t, "carmen", doc.AssignedSupervisor)
	assert.Equal(t, "luis", doc.ReviewedBy)

	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "carmen", mailer.sent[0].To)
}

func TestCreateDocumentReviewWithoutSupervisor(t *testing.T) {
	db, mem, _ := newTestDB()

	var req = validCreateRequest()
	req.SendToReview = true

	_, err := db.CreateDocument(plus, req)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
	assert.Empty(t, mem.order, "nothing is created on a validation failure")
}

func TestCreateDocumentValidation(t *testing.T) {
	db, _, _ := newTestDB()

	var cases = []func(*CreateRequest){
		func(r *CreateRequest) { r.Title = "  " },
		func(r *CreateRequest) { r.Content = "" },
		func(r *CreateRequest) { r.Category = "" },
		func(r *CreateRequest) { r.TargetGroups = nil },
		func(r *CreateRequest) { r.TargetGroups = []Role{"admin"} },
	}

	for _, mutate := range cases {
		var req = validCreateRequest()
		mutate(&req)
		_, err := db.CreateDocument(plus, req)
		var validationErr *ValidationError
		assert.True(t, errors.As(err, &validationErr), "%+v", req)
	}
}

func TestCreateDocumentPermission(t *testing.T) {
	db, _, _ := newTestDB()

	for _, actor := range []testUser{corp, staff} {
		_, err := db.CreateDocument(actor, validCreateRequest())
		assert.True(t, errors.Is(err, ErrUnauthorized), actor.role)
	}
}

func TestSubmitForReview(t *testing.T) {
	db, mem, mailer := newTestDB()
	addDoc(mem, &Document{ID: "d1", Title: "Draft", Author: "luis", Status: StatusDraft})

	doc, err := db.SubmitForReview(plus, "d1", "carmen")
	require.NoError(t, err)

	assert.Equal(t, StatusReview, doc.Status)
	assert.Equal(t, "carmen", doc.AssignedSupervisor)
	assert.Equal(t, "luis", doc.ReviewedBy)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "carmen", mailer.sent[0].To)
}

func TestSubmitForReviewOtherAuthor(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{ID: "d1", Title: "Draft", Author: "someone", Status: StatusDraft})

	// any edit-capable actor may submit, ReviewedBy records the submitter
	doc, err := db.SubmitForReview(plus, "d1", "carmen")
	require.NoError(t, err)
	assert.Equal(t, "luis", doc.ReviewedBy)
}

func TestSubmitForReviewPreconditions(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{ID: "pub", Title: "Published", Author: "luis", Status: StatusPublished, TargetGroups: []Role{StoreStaff}})
	addDoc(mem, &Document{ID: "d1", Title: "Draft", Author: "luis", Status: StatusDraft})

	_, err := db.SubmitForReview(plus, "pub", "carmen")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr), "only drafts can be submitted")

	_, err = db.SubmitForReview(plus, "d1", "")
	assert.True(t, errors.As(err, &validationErr), "a supervisor is required")

	_, err = db.SubmitForReview(staff, "d1", "carmen")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestApprove(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{
		ID: "d1", Title: "Doc", Author: "luis", Status: StatusReview,
		AssignedSupervisor: "carmen", ReviewedBy: "luis",
		TargetGroups: []Role{StoreStaff},
	})

	doc, err := db.Approve(super, "d1")
	require.NoError(t, err)

	assert.Equal(t, StatusPublished, doc.Status)
	assert.Empty(t, doc.AssignedSupervisor, "supervisor is cleared on leaving review")
	assert.Empty(t, doc.ReviewedBy, "reviewer is cleared on leaving review")

	// approving again must fail, the document is no longer in review
	_, err = db.Approve(super, "d1")
	var validationErr *ValidationError
	assert.True(t, errors.As(err, &validationErr))
}

func TestReject(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{
		ID: "d1", Title: "Doc", Author: "luis", Status: StatusReview,
		AssignedSupervisor: "carmen", ReviewedBy: "luis",
	})

	doc, err := db.Reject(super, "d1")
	require.NoError(t, err)

	assert.Equal(t, StatusDraft, doc.Status)
	assert.Empty(t, doc.AssignedSupervisor)
	assert.Empty(t, doc.ReviewedBy)
}

func TestApproveRejectPermission(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{ID: "d1", Title: "Doc", Author: "luis", Status: StatusReview, AssignedSupervisor: "carmen", ReviewedBy: "luis"})

	for _, actor := range []testUser{corp, plus, staff} {
		_, err := db.Approve(actor, "d1")
		assert.True(t, errors.Is(err, ErrUnauthorized), actor.role)

		_, err = db.Reject(actor, "d1")
		assert.True(t, errors.Is(err, ErrUnauthorized), actor.role)
	}
}

func TestApproveCorruptedDocument(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{ID: "d1", Title: "Doc", Author: "luis", Status: StatusDraft, AssignedSupervisor: "carmen"})

	_, err := db.Approve(super, "d1")
	var invariantErr *InvariantError
	assert.True(t, errors.As(err, &invariantErr), "a supervisor outside review is a corrupted record")
}

func TestTogglePriority(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{ID: "d1", Title: "Doc", Author: "luis", Status: StatusDraft})

	doc, err := db.TogglePriority(plus, "d1")
	require.NoError(t, err)
	assert.Equal(t, PriorityHigh, doc.Priority)

	doc, err = db.TogglePriority(plus, "d1")
	require.NoError(t, err)
	assert.Equal(t, PriorityNormal, doc.Priority)

	_, err = db.TogglePriority(staff, "d1")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestDeleteDocument(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{
		ID: "d1", Title: "Doc", Author: "luis", Status: StatusPublished,
		TargetGroups:  []Role{StoreStaff},
		Favorites:     map[string]bool{"marta": true},
		EvidenceFiles: map[string][]string{"marta": {"marta_receipt.pdf"}},
	})

	_, err := db.TogglePriority(plus, "d1") // still there
	require.NoError(t, err)

	err = db.DeleteDocument(plus, "d1")
	assert.True(t, errors.Is(err, ErrUnauthorized), "only supervisors delete")

	require.NoError(t, db.DeleteDocument(super, "d1"))
	_, err = db.DocumentDB.GetDocument("d1")
	assert.Error(t, err)
}

func TestReviewQueue(t *testing.T) {
	db, mem, _ := newTestDB()
	addDoc(mem, &Document{ID: "d1", Title: "One", Author: "luis", Status: StatusReview, AssignedSupervisor: "carmen", ReviewedBy: "luis"})
	addDoc(mem, &Document{ID: "d2", Title: "Two", Author: "luis", Status: StatusDraft})
	addDoc(mem, &Document{ID: "d3", Title: "Three", Author: "luis", Status: StatusReview, AssignedSupervisor: "carmen", ReviewedBy: "luis"})

	queue, err := db.ReviewQueue(super)
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, "d1", queue[0].ID)
	assert.Equal(t, "d3", queue[1].ID)

	_, err = db.ReviewQueue(plus)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

// A corporate-plus author routes a document to review; the supervisor sees
// it, a corporate user does not until it is published for their group.
func TestReviewRoundTrip(t *testing.T) {
	db, _, mailer := newTestDB()

	var req = validCreateRequest()
	req.TargetGroups = []Role{Corporate}
	req.SendToReview = true
	req.AssignedSupervisor = "carmen"

	doc, err := db.CreateDocument(plus, req)
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)

	visible, err := CanView(super.role, doc, super.name)
	require.NoError(t, err)
	assert.True(t, visible)

	visible, err = CanView(corp.role, doc, corp.name)
	require.NoError(t, err)
	assert.False(t, visible, "not visible to the target group while in review")

	doc, err = db.Approve(super, doc.ID)
	require.NoError(t, err)

	visible, err = CanView(corp.role, doc, corp.name)
	require.NoError(t, err)
	assert.True(t, visible, "published documents reach their target groups")
}
