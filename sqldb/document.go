package sqldb

import (
	"database/sql"
	"time"

	"github.com/storedocs/storedocs/core"
)

type DocumentDB struct {
	*sql.DB
	delete      *sql.Stmt
	get         *sql.Stmt
	getAll      *sql.Stmt
	getEvidence *sql.Stmt
	getFavs     *sql.Stmt
	insert      *sql.Stmt
	update      *sql.Stmt
}

func NewDocumentDB(db *sql.DB) *DocumentDB {

	db.Exec(
		`CREATE TABLE IF NOT EXISTS document (
			id varchar(36) PRIMARY KEY,
			created int(11) NOT NULL,
			title text NOT NULL,
			content text NOT NULL,
			category varchar(64) NOT NULL,
			tags text NOT NULL,
			attachedFiles text NOT NULL,
			author varchar(128) NOT NULL,
			lastModified int(11) NOT NULL,
			status varchar(16) NOT NULL,
			priority varchar(16) NOT NULL,
			requiresEvidence int(1) NOT NULL,
			assignedSupervisor varchar(128) NOT NULL,
			reviewedBy varchar(128) NOT NULL,
			targetGroups text NOT NULL
		);`)

	const columns = `id, title, content, category, tags, attachedFiles, author, lastModified,
		status, priority, requiresEvidence, assignedSupervisor, reviewedBy, targetGroups`

	var documentDB = &DocumentDB{}
	documentDB.DB = db
	documentDB.delete = mustPrepare(db, "DELETE FROM document WHERE id = ?")
	documentDB.get = mustPrepare(db, "SELECT "+columns+" FROM document WHERE id = ? LIMIT 1")
	documentDB.getAll = mustPrepare(db, "SELECT "+columns+" FROM document ORDER BY created")
	documentDB.getEvidence = mustPrepare(db, "SELECT username, filename FROM evidence WHERE documentId = ? ORDER BY id")
	documentDB.getFavs = mustPrepare(db, "SELECT username FROM favorite WHERE documentId = ? AND favorite = 1")
	documentDB.insert = mustPrepare(db, `INSERT INTO document (id, created, title, content, category, tags,
		attachedFiles, author, lastModified, status, priority, requiresEvidence, assignedSupervisor,
		reviewedBy, targetGroups) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	documentDB.update = mustPrepare(db, `UPDATE document SET title = ?, content = ?, category = ?, tags = ?,
		attachedFiles = ?, author = ?, lastModified = ?, status = ?, priority = ?, requiresEvidence = ?,
		assignedSupervisor = ?, reviewedBy = ?, targetGroups = ? WHERE id = ?`)
	return documentDB
}

func scanDocument(scan func(dest ...interface{}) error) (*core.Document, error) {

	var d = &core.Document{}
	var tags, attachedFiles, targetGroups string
	var lastModified int64
	var requiresEvidence int

	err := scan(&d.ID, &d.Title, &d.Content, &d.Category, &tags, &attachedFiles, &d.Author,
		&lastModified, &d.Status, &d.Priority, &requiresEvidence, &d.AssignedSupervisor,
		&d.ReviewedBy, &targetGroups)
	if err != nil {
		return nil, err
	}

	d.Tags = splitList(tags)
	d.AttachedFiles = splitList(attachedFiles)
	d.LastModified = time.Unix(lastModified, 0)
	d.RequiresEvidence = requiresEvidence != 0
	for _, r := range splitList(targetGroups) {
		d.TargetGroups = append(d.TargetGroups, core.Role(r))
	}
	d.EvidenceFiles = map[string][]string{}
	d.Favorites = map[string]bool{}

	return d, nil
}

// loadAttachments populates the per-user maps from the favorite and
// evidence tables.
func (db *DocumentDB) loadAttachments(d *core.Document) error {

	rows, err := db.getFavs.Query(d.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return err
		}
		d.Favorites[username] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = db.getEvidence.Query(d.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var username, filename string
		if err := rows.Scan(&username, &filename); err != nil {
			return err
		}
		d.EvidenceFiles[username] = append(d.EvidenceFiles[username], filename)
	}
	return rows.Err()
}

// GetDocument may return sql.ErrNoRows.
func (db *DocumentDB) GetDocument(id string) (*core.Document, error) {
	row := db.get.QueryRow(id)
	d, err := scanDocument(row.Scan)
	if err != nil {
		return nil, err
	}
	return d, db.loadAttachments(d)
}

func (db *DocumentDB) GetAllDocuments() ([]*core.Document, error) {

	rows, err := db.getAll.Query()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var all = []*core.Document{}
	for rows.Next() {
		d, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		all = append(all, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, d := range all {
		if err := db.loadAttachments(d); err != nil {
			return nil, err
		}
	}
	return all, nil
}

func (db *DocumentDB) InsertDocument(d *core.Document) error {
	var targetGroups = make([]string, len(d.TargetGroups))
	for i, r := range d.TargetGroups {
		targetGroups[i] = string(r)
	}
	_, err := db.insert.Exec(d.ID, time.Now().UnixNano(), d.Title, d.Content, d.Category,
		joinList(d.Tags), joinList(d.AttachedFiles), d.Author, d.LastModified.Unix(),
		string(d.Status), string(d.Priority), boolToInt(d.RequiresEvidence),
		d.AssignedSupervisor, d.ReviewedBy, joinList(targetGroups))
	return err
}

// UpdateDocument replaces the whole record. The per-user maps are owned by
// FavoriteDB and EvidenceDB and are not written here.
func (db *DocumentDB) UpdateDocument(d *core.Document) error {
	var targetGroups = make([]string, len(d.TargetGroups))
	for i, r := range d.TargetGroups {
		targetGroups[i] = string(r)
	}
	_, err := db.update.Exec(d.Title, d.Content, d.Category, joinList(d.Tags),
		joinList(d.AttachedFiles), d.Author, d.LastModified.Unix(), string(d.Status),
		string(d.Priority), boolToInt(d.RequiresEvidence), d.AssignedSupervisor,
		d.ReviewedBy, joinList(targetGroups), d.ID)
	return err
}

func (db *DocumentDB) DeleteDocument(id string) error {
	_, err := db.delete.Exec(id)
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
