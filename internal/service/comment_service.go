package service

import (
	"context"
	"strings"

	"artfolio/internal/models"
	"artfolio/internal/repository"
)

const maxCommentLen = 1000

type CommentService struct {
	commentRepo repository.CommentRepository
	artworkRepo repository.ArtworkRepository
}

type CreateCommentInput struct {
	UserID    uint
	ArtworkID uint
	Content   string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

func NewCommentService(commentRepo repository.CommentRepository, artworkRepo repository.ArtworkRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, artworkRepo: artworkRepo}
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Comment content is required")
	}
	if len(content) > maxCommentLen {
		return models.NewValidationError("Comment too long (max 1000 characters)")
	}
	return nil
}

func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}
	if _, err := s.artworkRepo.GetByID(ctx, in.ArtworkID, 0); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Content:   in.Content,
		UserID:    in.UserID,
		ArtworkID: in.ArtworkID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) ListByArtwork(ctx context.Context, artworkID uint) ([]*models.Comment, error) {
	if _, err := s.artworkRepo.GetByID(ctx, artworkID, 0); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByArtwork(ctx, artworkID)
}

// Update edits a comment's content. A comment that exists but belongs to
// someone else is Forbidden, not NotFound.
func (s *CommentService) Update(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own comments")
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) Delete(ctx context.Context, userID, commentID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != userID {
		return models.NewForbiddenError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
