package core

// CanView decides whether a user with the given role may see the document in
// its current status. It has no side effects and is total over the three
// legal statuses; any other status is a fatal invariant violation, not a
// silent false.
//
// Precedence:
//
//	review:    super-edit roles and the author
//	published: roles in the document's target groups
//	draft:     the author only
func CanView(role Role, d *Document, username string) (bool, error) {
	switch d.Status {
	case StatusReview:
		return role.CanSuperEdit() || d.Author == username, nil
	case StatusPublished:
		return d.Targets(role), nil
	case StatusDraft:
		return d.Author == username, nil
	}
	return false, &InvariantError{DocumentID: d.ID, Detail: "unknown status " + string(d.Status)}
}

// RequireView is the error-returning form used by mutating operations.
func RequireView(role Role, d *Document, username string) error {
	visible, err := CanView(role, d, username)
	if err != nil {
		return err
	}
	if !visible {
		return denied(role, "view document "+d.ID)
	}
	return nil
}
