package sqldb

import (
	"database/sql"
)

// FavoriteDB stores one row per (document, username), so writes by two
// different users on the same document never touch the same row.
type FavoriteDB struct {
	db        *sql.DB
	deleteAll *sql.Stmt
	set       *sql.Stmt
}

func NewFavoriteDB(db *sql.DB) *FavoriteDB {

	db.Exec(`
		CREATE TABLE IF NOT EXISTS favorite (
			documentId varchar(36) NOT NULL,
			username varchar(128) NOT NULL,
			favorite int(1) NOT NULL,
			PRIMARY KEY (documentId, username)
		);`)

	var favoriteDB = &FavoriteDB{}
	favoriteDB.db = db
	favoriteDB.deleteAll = mustPrepare(db, "DELETE FROM favorite WHERE documentId = ?")
	favoriteDB.set = mustPrepare(db, "REPLACE INTO favorite (documentId, username, favorite) VALUES (?, ?, ?)")
	return favoriteDB
}

func (db *FavoriteDB) SetFavorite(documentID, username string, favorite bool) error {
	_, err := db.set.Exec(documentID, username, boolToInt(favorite))
	return err
}

func (db *FavoriteDB) DeleteFavorites(documentID string) error {
	_, err := db.deleteAll.Exec(documentID)
	return err
}
