package service

import (
	"context"
	"testing"

	"artfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngagementService(
	likeRepo *likeRepoStub,
	saveRepo *saveRepoStub,
	followRepo *followRepoStub,
	userRepo *userRepoStub,
	artworkRepo *artworkRepoStub,
) *EngagementService {
	return NewEngagementService(likeRepo, saveRepo, followRepo, userRepo, artworkRepo)
}

func TestEngagementService_Follow(t *testing.T) {
	t.Parallel()

	t.Run("self-follow rejected before any write", func(t *testing.T) {
		t.Parallel()
		followRepo := noopFollowRepo()
		followRepo.createFn = func(_ context.Context, _, _ uint) error {
			t.Fatal("self-follow must not reach the repository")
			return nil
		}
		svc := newEngagementService(noopLikeRepo(), noopSaveRepo(), followRepo, noopUserRepo(), noopArtworkRepo())
		err := svc.Follow(context.Background(), 5, 5)
		assertValidationError(t, err)
	})

	t.Run("unknown followee is NotFound", func(t *testing.T) {
		t.Parallel()
		userRepo := noopUserRepo()
		userRepo.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return nil, models.NewNotFoundError("User", id)
		}
		svc := newEngagementService(noopLikeRepo(), noopSaveRepo(), noopFollowRepo(), userRepo, noopArtworkRepo())
		err := svc.Follow(context.Background(), 1, 99)
		assertNotFoundError(t, err)
	})

	t.Run("second follow reports AlreadyExists", func(t *testing.T) {
		t.Parallel()
		followRepo := noopFollowRepo()
		followRepo.createFn = func(_ context.Context, _, _ uint) error {
			return models.NewAlreadyExistsError("Already following this user")
		}
		svc := newEngagementService(noopLikeRepo(), noopSaveRepo(), followRepo, noopUserRepo(), noopArtworkRepo())
		err := svc.Follow(context.Background(), 1, 2)
		assertAppErrorCode(t, err, models.CodeAlreadyExists)
	})

	t.Run("first follow succeeds", func(t *testing.T) {
		t.Parallel()
		var gotFollower, gotFollowee uint
		followRepo := noopFollowRepo()
		followRepo.createFn = func(_ context.Context, followerID, followeeID uint) error {
			gotFollower, gotFollowee = followerID, followeeID
			return nil
		}
		svc := newEngagementService(noopLikeRepo(), noopSaveRepo(), followRepo, noopUserRepo(), noopArtworkRepo())
		require.NoError(t, svc.Follow(context.Background(), 1, 2))
		assert.Equal(t, uint(1), gotFollower)
		assert.Equal(t, uint(2), gotFollowee)
	})
}

func TestEngagementService_Unfollow_AbsentEdge(t *testing.T) {
	t.Parallel()

	followRepo := noopFollowRepo()
	followRepo.deleteFn = func(_ context.Context, _, _ uint) error {
		return &models.AppError{Code: models.CodeNotFound, Message: "Not following this user"}
	}
	svc := newEngagementService(noopLikeRepo(), noopSaveRepo(), followRepo, noopUserRepo(), noopArtworkRepo())
	err := svc.Unfollow(context.Background(), 1, 2)
	assertNotFoundError(t, err)
}

func TestEngagementService_Like(t *testing.T) {
	t.Parallel()

	t.Run("unknown artwork is NotFound", func(t *testing.T) {
		t.Parallel()
		artworkRepo := noopArtworkRepo()
		artworkRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Artwork, error) {
			return nil, models.NewNotFoundError("Artwork", id)
		}
		svc := newEngagementService(noopLikeRepo(), noopSaveRepo(), noopFollowRepo(), noopUserRepo(), artworkRepo)
		err := svc.Like(context.Background(), 1, 99)
		assertNotFoundError(t, err)
	})

	t.Run("second like reports AlreadyExists", func(t *testing.T) {
		t.Parallel()
		likeRepo := noopLikeRepo()
		likeRepo.createFn = func(_ context.Context, _, _ uint) error {
			return models.NewAlreadyExistsError("Already liked this artwork")
		}
		svc := newEngagementService(likeRepo, noopSaveRepo(), noopFollowRepo(), noopUserRepo(), noopArtworkRepo())
		err := svc.Like(context.Background(), 1, 2)
		assertAppErrorCode(t, err, models.CodeAlreadyExists)
	})

	t.Run("unlike absent edge is NotFound", func(t *testing.T) {
		t.Parallel()
		likeRepo := noopLikeRepo()
		likeRepo.deleteFn = func(_ context.Context, _, _ uint) error {
			return &models.AppError{Code: models.CodeNotFound, Message: "Like not found"}
		}
		svc := newEngagementService(likeRepo, noopSaveRepo(), noopFollowRepo(), noopUserRepo(), noopArtworkRepo())
		err := svc.Unlike(context.Background(), 1, 2)
		assertNotFoundError(t, err)
	})
}

func TestEngagementService_SaveIndependentOfLike(t *testing.T) {
	t.Parallel()

	// A save on an artwork the user already liked must not collide with the
	// like edge; the relations are separate tables.
	likeRepo := noopLikeRepo()
	likeRepo.isLikedFn = func(_ context.Context, _, _ uint) (bool, error) { return true, nil }

	var saved bool
	saveRepo := noopSaveRepo()
	saveRepo.createFn = func(_ context.Context, userID, artworkID uint) error {
		saved = true
		assert.Equal(t, uint(1), userID)
		assert.Equal(t, uint(2), artworkID)
		return nil
	}

	svc := newEngagementService(likeRepo, saveRepo, noopFollowRepo(), noopUserRepo(), noopArtworkRepo())
	require.NoError(t, svc.Save(context.Background(), 1, 2))
	assert.True(t, saved)
}

func TestEngagementService_Likers_Summaries(t *testing.T) {
	t.Parallel()

	likeRepo := noopLikeRepo()
	likeRepo.likersFn = func(_ context.Context, _ uint) ([]models.User, error) {
		return []models.User{
			{ID: 1, Username: "ada", Password: "secret"},
			{ID: 2, Username: "brn", Avatar: "https://cdn.example/a.png"},
		}, nil
	}

	svc := newEngagementService(likeRepo, noopSaveRepo(), noopFollowRepo(), noopUserRepo(), noopArtworkRepo())
	likers, err := svc.Likers(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, likers, 2)
	assert.Equal(t, models.PlaceholderAvatarURL, likers[0].Avatar)
	assert.Equal(t, "https://cdn.example/a.png", likers[1].Avatar)
}
