package services

import (
	"testing"

	"github.com/MeenakshiPramod/WellHer/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRejectsShortPassword(t *testing.T) {
	gdb, _ := newMockDB(t)
	store := NewCredentialStore(gdb)

	err := store.Register("asha", "abc")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestRegisterInsertsNewUser(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := NewCredentialStore(gdb)

	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	require.NoError(t, store.Register("asha", "guest1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateUsername(t *testing.T) {
	gdb, mock := newMockDB(t)
	store := NewCredentialStore(gdb)

	// Second attempt always fails, regardless of password.
	mock.ExpectQuery(`SELECT \* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "asha"))

	err := store.Register("asha", "another-password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestVerifyMatchesStoredDigest(t *testing.T) {
	hash, err := utils.HashPassword("guest1")
	require.NoError(t, err)

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(1, "asha", hash)
	}

	t.Run("correct password", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows())
		assert.True(t, NewCredentialStore(gdb).Verify("asha", "guest1"))
	})

	t.Run("one character off", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(userRows())
		assert.False(t, NewCredentialStore(gdb).Verify("asha", "guest2"))
	})

	t.Run("unknown user", func(t *testing.T) {
		gdb, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		assert.False(t, NewCredentialStore(gdb).Verify("nobody", "guest1"))
	})
}
