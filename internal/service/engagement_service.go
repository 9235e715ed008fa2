package service

import (
	"context"
	"errors"

	"artfolio/internal/models"
	"artfolio/internal/observability"
	"artfolio/internal/repository"
)

// EngagementService owns the Like, Save and Follow edges. Every add is
// idempotent at the observable level: the unique constraint in storage
// guarantees at most one edge per pair and the second add reports
// AlreadyExists instead of duplicating or crashing. Every remove is
// attributable: the actor's own id is always the edge's user/follower column.
type EngagementService struct {
	likeRepo    repository.LikeRepository
	saveRepo    repository.SaveRepository
	followRepo  repository.FollowRepository
	userRepo    repository.UserRepository
	artworkRepo repository.ArtworkRepository
}

func NewEngagementService(
	likeRepo repository.LikeRepository,
	saveRepo repository.SaveRepository,
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
	artworkRepo repository.ArtworkRepository,
) *EngagementService {
	return &EngagementService{
		likeRepo:    likeRepo,
		saveRepo:    saveRepo,
		followRepo:  followRepo,
		userRepo:    userRepo,
		artworkRepo: artworkRepo,
	}
}

// recordWrite tracks edge write outcomes for the engagement metrics.
func recordWrite(relation string, err error) {
	outcome := "ok"
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.CodeAlreadyExists:
			outcome = "duplicate"
		case models.CodeNotFound:
			outcome = "missing"
		default:
			outcome = "error"
		}
	} else if err != nil {
		outcome = "error"
	}
	observability.EngagementWrites.WithLabelValues(relation, outcome).Inc()
}

// Follow creates a follow edge. Self-follows are rejected before any write.
func (s *EngagementService) Follow(ctx context.Context, followerID, followeeID uint) error {
	if followerID == followeeID {
		return models.NewValidationError("Cannot follow yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, followeeID); err != nil {
		return err
	}
	err := s.followRepo.Create(ctx, followerID, followeeID)
	recordWrite("follow", err)
	return err
}

// Unfollow removes the follow edge; removing an absent edge is NotFound.
func (s *EngagementService) Unfollow(ctx context.Context, followerID, followeeID uint) error {
	err := s.followRepo.Delete(ctx, followerID, followeeID)
	recordWrite("unfollow", err)
	return err
}

func (s *EngagementService) Followers(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	users, err := s.followRepo.Followers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

func (s *EngagementService) Following(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	users, err := s.followRepo.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

func (s *EngagementService) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.followRepo.IsFollowing(ctx, followerID, followeeID)
}

// Like creates a like edge after verifying the artwork exists.
func (s *EngagementService) Like(ctx context.Context, userID, artworkID uint) error {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, 0); err != nil {
		return err
	}
	err := s.likeRepo.Create(ctx, userID, artworkID)
	recordWrite("like", err)
	return err
}

func (s *EngagementService) Unlike(ctx context.Context, userID, artworkID uint) error {
	err := s.likeRepo.Delete(ctx, userID, artworkID)
	recordWrite("unlike", err)
	return err
}

// Likers returns who liked an artwork; the count equals the live number of
// like rows at read time.
func (s *EngagementService) Likers(ctx context.Context, artworkID uint) ([]models.UserSummary, error) {
	users, err := s.likeRepo.Likers(ctx, artworkID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

func (s *EngagementService) LikedArtworks(ctx context.Context, userID uint) ([]*models.Artwork, error) {
	artworks, err := s.likeRepo.ListLikedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	applyPlaceholders(artworks)
	return artworks, nil
}

func (s *EngagementService) IsLiked(ctx context.Context, userID, artworkID uint) (bool, error) {
	return s.likeRepo.IsLiked(ctx, userID, artworkID)
}

// Save creates a bookmark edge after verifying the artwork exists.
func (s *EngagementService) Save(ctx context.Context, userID, artworkID uint) error {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, 0); err != nil {
		return err
	}
	err := s.saveRepo.Create(ctx, userID, artworkID)
	recordWrite("save", err)
	return err
}

func (s *EngagementService) Unsave(ctx context.Context, userID, artworkID uint) error {
	err := s.saveRepo.Delete(ctx, userID, artworkID)
	recordWrite("unsave", err)
	return err
}

func (s *EngagementService) SavedArtworks(ctx context.Context, userID uint) ([]*models.Artwork, error) {
	artworks, err := s.saveRepo.ListSavedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	applyPlaceholders(artworks)
	return artworks, nil
}

func (s *EngagementService) IsSaved(ctx context.Context, userID, artworkID uint) (bool, error) {
	return s.saveRepo.IsSaved(ctx, userID, artworkID)
}

func summarize(users []models.User) []models.UserSummary {
	summaries := make([]models.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries
}

func applyPlaceholders(artworks []*models.Artwork) {
	for _, a := range artworks {
		a.ApplyPlaceholders()
	}
}
