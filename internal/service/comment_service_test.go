package service

import (
	"context"
	"strings"
	"testing"

	"artfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCommentService(noopCommentRepo(), noopArtworkRepo())
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(ctx, CreateCommentInput{UserID: 1, ArtworkID: 1})
		assertValidationError(t, err)
	})

	t.Run("whitespace-only content", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(ctx, CreateCommentInput{UserID: 1, ArtworkID: 1, Content: "   \n\t"})
		assertValidationError(t, err)
	})

	t.Run("content too long", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Create(ctx, CreateCommentInput{
			UserID:    1,
			ArtworkID: 1,
			Content:   strings.Repeat("x", maxCommentLen+1),
		})
		assertValidationError(t, err)
	})

	t.Run("unknown artwork is NotFound", func(t *testing.T) {
		t.Parallel()
		artworkRepo := noopArtworkRepo()
		artworkRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Artwork, error) {
			return nil, models.NewNotFoundError("Artwork", id)
		}
		svc2 := NewCommentService(noopCommentRepo(), artworkRepo)
		_, err := svc2.Create(ctx, CreateCommentInput{UserID: 1, ArtworkID: 99, Content: "hi"})
		assertNotFoundError(t, err)
	})
}

func TestCommentService_Create_Success(t *testing.T) {
	t.Parallel()

	commentRepo := noopCommentRepo()
	commentRepo.createFn = func(_ context.Context, c *models.Comment) error {
		c.ID = 42
		return nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
		return &models.Comment{ID: id, Content: "lovely brushwork", UserID: 1, ArtworkID: 1}, nil
	}

	svc := NewCommentService(commentRepo, noopArtworkRepo())
	comment, err := svc.Create(context.Background(), CreateCommentInput{
		UserID:    1,
		ArtworkID: 1,
		Content:   "lovely brushwork",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), comment.ID)
	assert.Equal(t, "lovely brushwork", comment.Content)
}

func TestCommentService_Update_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("someone else's comment is Forbidden, not NotFound", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, UserID: 10}, nil
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo())
		_, err := svc.Update(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Content: "new"})
		assertForbiddenError(t, err)
	})

	t.Run("missing comment is NotFound", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo())
		_, err := svc.Update(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Content: "new"})
		assertNotFoundError(t, err)
	})

	t.Run("owner can update content", func(t *testing.T) {
		t.Parallel()
		storedContent := "old"
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, UserID: 1, Content: storedContent}, nil
		}
		commentRepo.updateFn = func(_ context.Context, c *models.Comment) error {
			storedContent = c.Content
			return nil
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo())
		comment, err := svc.Update(context.Background(), UpdateCommentInput{UserID: 1, CommentID: 1, Content: "updated"})
		require.NoError(t, err)
		assert.Equal(t, "updated", comment.Content)
	})
}

func TestCommentService_Delete_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, UserID: 10}, nil
		}
		commentRepo.deleteFn = func(_ context.Context, _ uint) error {
			t.Fatal("delete must not reach the repository for a non-owner")
			return nil
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo())
		err := svc.Delete(context.Background(), 1, 1)
		assertForbiddenError(t, err)
	})

	t.Run("owner deletes", func(t *testing.T) {
		t.Parallel()
		deleted := false
		commentRepo := noopCommentRepo()
		commentRepo.getByIDFn = func(_ context.Context, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: 1, UserID: 1}, nil
		}
		commentRepo.deleteFn = func(_ context.Context, _ uint) error {
			deleted = true
			return nil
		}
		svc := NewCommentService(commentRepo, noopArtworkRepo())
		require.NoError(t, svc.Delete(context.Background(), 1, 1))
		assert.True(t, deleted)
	})
}
