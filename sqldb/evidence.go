package sqldb

import (
	"database/sql"
)

// EvidenceDB stores one row per evidence filename, keyed by (document,
// username). The autoincrement id keeps each user's upload order.
type EvidenceDB struct {
	db        *sql.DB
	deleteAll *sql.Stmt
	insert    *sql.Stmt
	remove    *sql.Stmt
}

func NewEvidenceDB(db *sql.DB) *EvidenceDB {

	db.Exec(`
		CREATE TABLE IF NOT EXISTS evidence (
			id INTEGER PRIMARY KEY,
			documentId varchar(36) NOT NULL,
			username varchar(128) NOT NULL,
			filename varchar(255) NOT NULL
		);
		CREATE INDEX IF NOT EXISTS evidence_document_idx ON evidence(documentId, username);`)

	var evidenceDB = &EvidenceDB{}
	evidenceDB.db = db
	evidenceDB.deleteAll = mustPrepare(db, "DELETE FROM evidence WHERE documentId = ?")
	evidenceDB.insert = mustPrepare(db, "INSERT INTO evidence (documentId, username, filename) VALUES (?, ?, ?)")
	evidenceDB.remove = mustPrepare(db, "DELETE FROM evidence WHERE documentId = ? AND username = ? AND filename = ?")
	return evidenceDB
}

func (db *EvidenceDB) AddEvidence(documentID, username, filename string) error {
	_, err := db.insert.Exec(documentID, username, filename)
	return err
}

// RemoveEvidence removes all entries of the filename from the user's list.
func (db *EvidenceDB) RemoveEvidence(documentID, username, filename string) error {
	_, err := db.remove.Exec(documentID, username, filename)
	return err
}

func (db *EvidenceDB) DeleteEvidence(documentID string) error {
	_, err := db.deleteAll.Exec(documentID)
	return err
}
