package repository

import (
	"context"
	"regexp"
	"testing"

	"artfolio/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSaveRepository_Create_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSaveRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "saves"`)).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err := repo.Create(ctx, 1, 5)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeAlreadyExists, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRepository_Delete_NotSaved(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSaveRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "saves"`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.Delete(ctx, 1, 5)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRepository_ListSavedByUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewSaveRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "title", "user_id"}).
		AddRow(9, "Saved Piece", 2)
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN saves ON saves.artwork_id = artworks.id`)).
		WillReturnRows(rows)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "inkwell"))

	artworks, err := repo.ListSavedByUser(ctx, 1)
	assert.NoError(t, err)
	require.Len(t, artworks, 1)
	assert.Equal(t, "Saved Piece", artworks[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}
