package sqldb

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFavoriteMock(t *testing.T) (*FavoriteDB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS favorite")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectPrepare(regexp.QuoteMeta("DELETE FROM favorite WHERE documentId = ?"))
	mock.ExpectPrepare(regexp.QuoteMeta("REPLACE INTO favorite"))

	return NewFavoriteDB(db), mock
}

func TestSetFavorite(t *testing.T) {
	favoriteDB, mock := newFavoriteMock(t)

	mock.ExpectExec(regexp.QuoteMeta("REPLACE INTO favorite")).
		WithArgs("d1", "marta", 1).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, favoriteDB.SetFavorite("d1", "marta", true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetFavoriteOff(t *testing.T) {
	favoriteDB, mock := newFavoriteMock(t)

	mock.ExpectExec(regexp.QuoteMeta("REPLACE INTO favorite")).
		WithArgs("d1", "marta", 0).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, favoriteDB.SetFavorite("d1", "marta", false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFavorites(t *testing.T) {
	favoriteDB, mock := newFavoriteMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM favorite WHERE documentId = ?")).
		WithArgs("d1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, favoriteDB.DeleteFavorites("d1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
