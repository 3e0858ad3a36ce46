package core

// A Role is one of four fixed access classes, assigned at login and constant
// for the session. Capabilities are derived from the role alone.
type Role string

const (
	Corporate     Role = "corporate"
	CorporatePlus Role = "corporate-plus"
	StoreStaff    Role = "store-staff"
	Supervisor    Role = "supervisor"
)

// AllRoles lists every role, in display order.
var AllRoles = []Role{Corporate, CorporatePlus, StoreStaff, Supervisor}

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case Corporate:
		return true
	case CorporatePlus:
		return true
	case StoreStaff:
		return true
	case Supervisor:
		return true
	default:
		return false
	}
}

// CanRead returns whether the role may read published documents which target it.
func (r Role) CanRead() bool {
	return r.Valid()
}

// CanEdit returns whether the role may create documents, modify its own
// drafts and submit them to review.
func (r Role) CanEdit() bool {
	return r == CorporatePlus || r == Supervisor
}

// CanSuperEdit returns whether the role may approve or reject documents in
// review and see all of them.
func (r Role) CanSuperEdit() bool {
	return r == Supervisor
}

func (r Role) CanDelete() bool {
	return r == Supervisor
}

func (r Role) CanManageCalendar() bool {
	return r == CorporatePlus || r == Supervisor
}

// CanUploadEvidence returns whether the role may attach evidence files to a
// document requiring them. No role combines edit and evidence upload:
// editors produce content, read-side roles attest to having consumed it.
func (r Role) CanUploadEvidence() bool {
	return r == Corporate || r == StoreStaff
}

// Label returns the display name of the role. It is total, an unknown role
// is a programming error and shows up as the raw string.
func (r Role) Label() string {
	switch r {
	case Corporate:
		return "Corporate"
	case CorporatePlus:
		return "Corporate+"
	case StoreStaff:
		return "Store Staff"
	case Supervisor:
		return "Supervisor"
	}
	return string(r)
}
