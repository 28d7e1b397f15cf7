package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/notes-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestNoteRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	rows := sqlmock.NewRows([]string{"id", "title", "content", "colour", "user_id", "version"}).
		AddRow("note-1", "Title", "<p>body</p>", "blue", 7, 3)
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE id = \$1`).
		WillReturnRows(rows)

	note, err := repo.FindByID(context.Background(), "note-1")
	require.NoError(t, err)
	assert.Equal(t, "Title", note.Title)
	assert.Equal(t, models.ColourBlue, note.Colour)
	assert.Equal(t, uint64(7), note.UserID)
	assert.Equal(t, 3, note.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestNoteRepository_ListByCollection_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	dbErr := errors.New("connection reset")
	mock.ExpectQuery(`SELECT \* FROM "notes" WHERE user_id = \$1 AND is_favourite = \$2`).
		WillReturnError(dbErr)

	_, err := repo.ListByCollection(context.Background(), 1, models.CollectionFavourite)
	assert.ErrorIs(t, err, dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateFields_VersionConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	title := "Renamed"
	mock.ExpectExec(`UPDATE "notes" SET .*"version"=version \+ \$\d+ WHERE id = \$\d+ AND user_id = \$\d+ AND version = \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateFields(context.Background(), 1, "note-1", 2, NoteFields{Title: &title})
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_UpdateFields_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	public := true
	mock.ExpectExec(`UPDATE "notes" SET "is_public"=\$1,"version"=version \+ \$2`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateFields(context.Background(), 1, "note-1", 2, NoteFields{IsPublic: &public})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNoteRepository(db)

	mock.ExpectExec(`DELETE FROM "notes" WHERE id = \$1 AND user_id = \$2`).
		WithArgs("note-1", uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 1, "note-1")
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
