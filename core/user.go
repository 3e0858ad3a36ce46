package core

import "errors"

type DBUser interface {
	ID() int
	Name() string
	Role() Role
}

type UserDB interface {
	ChangePassword(u DBUser, old, new string) error
	Delete(u DBUser) error
	GetUser(id int) (DBUser, error)
	GetAllUsers(limit, offset int) ([]DBUser, error)
	GetSupervisors() ([]DBUser, error)
	InsertUser(name string, role Role) error
	LoginUser(name, password string) (DBUser, error)
	SetPassword(u DBUser, password string) error
	Writeable() bool
}

var ErrEmptyPassword = errors.New("refusing to set empty password")

// SetPassword shadows CoreDB.UserDB.SetPassword.
func (c *CoreDB) SetPassword(u DBUser, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	return c.UserDB.SetPassword(u, password)
}

// InsertUser shadows CoreDB.UserDB.InsertUser.
func (c *CoreDB) InsertUser(name string, role Role) error {
	if !role.Valid() {
		return invalid("unknown role %q", role)
	}
	return c.UserDB.InsertUser(name, role)
}

// Supervisors returns the users who can be assigned to review a document.
func (c *CoreDB) Supervisors() ([]DBUser, error) {
	return c.UserDB.GetSupervisors()
}
