// Package sqldb implements the core store interfaces on database/sql with
// prepared statements. It works with SQLite and MySQL.
package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var ErrAuth = errors.New("authentication failed")

func mustPrepare(db *sql.DB, query string) *sql.Stmt {
	stmt, err := db.Prepare(query)
	if err != nil {
		panic(fmt.Sprintf("error preparing %q: %v", query, err))
	}
	return stmt
}

// joinList and splitList pack a string slice into a single text column,
// newline separated. Values must not contain newlines.
func joinList(values []string) string {
	return strings.Join(values, "\n")
}

func splitList(packed string) []string {
	if packed == "" {
		return nil
	}
	return strings.Split(packed, "\n")
}
