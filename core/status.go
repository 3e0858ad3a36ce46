package core

// Status is the position of a document in the draft/review/published
// workflow. It is a closed enumeration, any other value is an invariant
// violation and must never be treated as "not visible".
type Status string

const (
	StatusDraft     Status = "draft"
	StatusReview    Status = "review"
	StatusPublished Status = "published"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft:
		return true
	case StatusReview:
		return true
	case StatusPublished:
		return true
	default:
		return false
	}
}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

func (p Priority) String() string {
	return string(p)
}

func (p Priority) Valid() bool {
	return p == PriorityNormal || p == PriorityHigh
}
