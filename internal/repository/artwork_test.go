package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"artfolio/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestArtworkRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArtworkRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "artworks"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	artwork := &models.Artwork{Title: "Dusk Study", UserID: 2}
	err := repo.Create(ctx, artwork)
	assert.NoError(t, err)
	assert.Equal(t, uint(11), artwork.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtworkRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArtworkRepository(db)
	ctx := context.Background()

	t.Run("Viewer sees counts and liked flag", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "title", "user_id", "like_count", "comment_count", "liked"}).
			AddRow(5, "Dusk Study", 2, 3, 1, true)
		mock.ExpectQuery(regexp.QuoteMeta(`(SELECT COUNT(*) FROM likes WHERE likes.artwork_id = artworks.id) as like_count`)).
			WillReturnRows(rows)

		// Preload User
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1`)).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "inkwell"))

		artwork, err := repo.GetByID(ctx, 5, 9)
		assert.NoError(t, err)
		require.NotNil(t, artwork)
		assert.Equal(t, 3, artwork.LikeCount)
		assert.Equal(t, 1, artwork.CommentCount)
		assert.True(t, artwork.Liked)
		assert.Equal(t, "inkwell", artwork.User.Username)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`FROM "artworks"`)).
			WillReturnError(gorm.ErrRecordNotFound)

		artwork, err := repo.GetByID(ctx, 99, 0)
		assert.Nil(t, artwork)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArtworkRepository_ListFollowed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArtworkRepository(db)
	ctx := context.Background()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "title", "user_id", "created_at", "like_count", "comment_count", "liked"}).
		AddRow(8, "Newer", 3, now, 0, 0, false).
		AddRow(6, "Older", 4, now.Add(-time.Hour), 2, 0, false)
	mock.ExpectQuery(regexp.QuoteMeta(`EXISTS (SELECT 1 FROM follows WHERE follows.follower_id = $2 AND follows.followee_id = artworks.user_id)`)).
		WillReturnRows(rows)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" IN ($1,$2)`)).
		WithArgs(3, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).
			AddRow(3, "mural_maker").
			AddRow(4, "glasswork"))

	artworks, err := repo.ListFollowed(ctx, 9)
	assert.NoError(t, err)
	require.Len(t, artworks, 2)
	assert.Equal(t, "Newer", artworks[0].Title)
	assert.Equal(t, "mural_maker", artworks[0].User.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArtworkRepository_ListByHashtag(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArtworkRepository(db)
	ctx := context.Background()

	t.Run("Unknown tag yields empty list", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`JOIN hashtags h ON h.id = ah.hashtag_id`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "user_id"}))

		artworks, err := repo.ListByHashtag(ctx, "nonexistent", 0)
		assert.NoError(t, err)
		assert.Empty(t, artworks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestArtworkRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewArtworkRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "artworks" SET "deleted_at"`)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 5)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing row reports not found", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE "artworks" SET "deleted_at"`)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 99)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
