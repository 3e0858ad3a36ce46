package sqldb

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/storedocs/storedocs/core"
	"github.com/storedocs/storedocs/util"
)

func clean(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ToLower(name)
	return name
}

func hash(salt string, password string) string {
	var hash = sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(hash[:])
}

type user struct {
	id   int
	name string
	role core.Role
	salt string
	pass string // hash
}

func (u *user) hash(password string) string {
	return hash(u.salt, password)
}

func (u *user) ID() int {
	return u.id
}

func (u *user) Name() string {
	return u.name
}

func (u *user) Role() core.Role {
	return u.role
}

type UserDB struct {
	*sql.DB
	delete         *sql.Stmt
	get            *sql.Stmt
	getAll         *sql.Stmt
	getSupervisors *sql.Stmt
	insert         *sql.Stmt
	login          *sql.Stmt
	setPassword    *sql.Stmt
}

func NewUserDB(db *sql.DB) *UserDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS usr (
			id INTEGER PRIMARY KEY,
			name varchar(128) NOT NULL,
			role varchar(32) NOT NULL,
			salt varchar(64) NOT NULL,
			password varchar(64) NOT NULL,
			UNIQUE(name)
		);`)

	var userDB = &UserDB{}
	userDB.DB = db
	userDB.delete = mustPrepare(db, "DELETE FROM usr WHERE id = ?")
	userDB.get = mustPrepare(db, "SELECT name, role, salt, password FROM usr WHERE id = ? LIMIT 1")
	userDB.getAll = mustPrepare(db, "SELECT id, name, role, salt FROM usr ORDER BY name LIMIT ? OFFSET ?")
	userDB.getSupervisors = mustPrepare(db, "SELECT id, name, role FROM usr WHERE role = ? ORDER BY name")
	userDB.insert = mustPrepare(db, "INSERT INTO usr (name, role, salt, password) VALUES (?, ?, '', '')") // empty password field is safe because no hash value equals it
	userDB.login = mustPrepare(db, "SELECT id, role, salt, password FROM usr WHERE name = ?")
	userDB.setPassword = mustPrepare(db, "UPDATE usr SET salt = ?, password = ? WHERE id = ?")
	return userDB
}

func (db *UserDB) Writeable() bool {
	return true
}

func (db *UserDB) ChangePassword(u core.DBUser, old, new string) error {
	if u.(*user).hash(old) != u.(*user).pass {
		return ErrAuth
	}
	return db.SetPassword(u, new)
}

func (db *UserDB) Delete(u core.DBUser) error {
	_, err := db.delete.Exec(u.ID())
	return err
}

// GetUser may return sql.ErrNoRows. The salt and password hash are scanned
// too, so the returned user works with ChangePassword.
func (db *UserDB) GetUser(id int) (core.DBUser, error) {
	var u = &user{
		id: id,
	}
	err := db.get.QueryRow(id).Scan(&u.name, &u.role, &u.salt, &u.pass)
	return u, err
}

func (db *UserDB) GetAllUsers(limit, offset int) ([]core.DBUser, error) {

	var all = []core.DBUser{}

	rows, err := db.getAll.Query(limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u = &user{}
		err = rows.Scan(&u.id, &u.name, &u.role, &u.salt)
		if err != nil {
			return nil, err
		}
		all = append(all, u)
	}

	return all, rows.Err()
}

// GetSupervisors returns the users holding the supervisor role, for the
// "assign supervisor" choice.
func (db *UserDB) GetSupervisors() ([]core.DBUser, error) {

	var all = []core.DBUser{}

	rows, err := db.getSupervisors.Query(string(core.Supervisor))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var u = &user{}
		err = rows.Scan(&u.id, &u.name, &u.role)
		if err != nil {
			return nil, err
		}
		all = append(all, u)
	}

	return all, rows.Err()
}

func (db *UserDB) InsertUser(name string, role core.Role) error {
	name = clean(name)
	_, err := db.insert.Exec(name, string(role))
	return err
}

func (db *UserDB) LoginUser(name, password string) (core.DBUser, error) {

	name = clean(name)

	var u = &user{name: name}

	err := db.login.QueryRow(name).Scan(&u.id, &u.role, &u.salt, &u.pass)
	if err == sql.ErrNoRows {
		return nil, ErrAuth // user not found
	}
	if err != nil {
		return nil, err
	}

	if u.hash(password) != u.pass {
		return nil, ErrAuth // wrong password
	}

	return u, nil
}

func (db *UserDB) SetPassword(u core.DBUser, password string) error {

	if password == "" {
		return errors.New("no password given")
	}

	if u.ID() == 0 {
		return errors.New("can't set password of user 0")
	}

	salt, err := util.RandomString32()
	if err != nil {
		return err
	}

	_, err = db.setPassword.Exec(salt, hash(salt, password), u.ID())
	if err != nil {
		return err
	}

	u.(*user).salt = salt
	u.(*user).pass = hash(salt, password)
	return nil
}
