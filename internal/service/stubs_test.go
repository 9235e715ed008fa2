package service

import (
	"context"
	"errors"
	"testing"

	"artfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	createFn        func(context.Context, *models.User) error
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByEmailFn    func(context.Context, string) (*models.User, error)
	getByLoginFn    func(context.Context, string) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	updateFn        func(context.Context, *models.User) error
	searchFn        func(context.Context, string) ([]models.User, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	return s.getByLoginFn(ctx, login)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Search(ctx context.Context, query string) ([]models.User, error) {
	return s.searchFn(ctx, query)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(_ context.Context, _ *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "artist"}, nil
		},
		getByEmailFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByLoginFn:    func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		getByUsernameFn: func(_ context.Context, _ string) (*models.User, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.User) error { return nil },
		searchFn:        func(_ context.Context, _ string) ([]models.User, error) { return nil, nil },
	}
}

// artworkRepoStub is a stub for repository.ArtworkRepository.
type artworkRepoStub struct {
	createFn        func(context.Context, *models.Artwork) error
	getByIDFn       func(context.Context, uint, uint) (*models.Artwork, error)
	listByUserFn    func(context.Context, uint, uint) ([]*models.Artwork, error)
	listAllFn       func(context.Context, uint) ([]*models.Artwork, error)
	listFollowedFn  func(context.Context, uint) ([]*models.Artwork, error)
	listByHashtagFn func(context.Context, string, uint) ([]*models.Artwork, error)
	updateFn        func(context.Context, *models.Artwork) error
	deleteFn        func(context.Context, uint) error
}

func (s *artworkRepoStub) Create(ctx context.Context, artwork *models.Artwork) error {
	return s.createFn(ctx, artwork)
}
func (s *artworkRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Artwork, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *artworkRepoStub) ListByUser(ctx context.Context, userID, currentUserID uint) ([]*models.Artwork, error) {
	return s.listByUserFn(ctx, userID, currentUserID)
}
func (s *artworkRepoStub) ListAll(ctx context.Context, currentUserID uint) ([]*models.Artwork, error) {
	return s.listAllFn(ctx, currentUserID)
}
func (s *artworkRepoStub) ListFollowed(ctx context.Context, viewerID uint) ([]*models.Artwork, error) {
	return s.listFollowedFn(ctx, viewerID)
}
func (s *artworkRepoStub) ListByHashtag(ctx context.Context, tag string, currentUserID uint) ([]*models.Artwork, error) {
	return s.listByHashtagFn(ctx, tag, currentUserID)
}
func (s *artworkRepoStub) Update(ctx context.Context, artwork *models.Artwork) error {
	return s.updateFn(ctx, artwork)
}
func (s *artworkRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopArtworkRepo() *artworkRepoStub {
	return &artworkRepoStub{
		createFn: func(_ context.Context, _ *models.Artwork) error { return nil },
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Artwork, error) {
			return &models.Artwork{ID: id, Title: "Untitled", UserID: 1}, nil
		},
		listByUserFn:    func(_ context.Context, _, _ uint) ([]*models.Artwork, error) { return nil, nil },
		listAllFn:       func(_ context.Context, _ uint) ([]*models.Artwork, error) { return nil, nil },
		listFollowedFn:  func(_ context.Context, _ uint) ([]*models.Artwork, error) { return nil, nil },
		listByHashtagFn: func(_ context.Context, _ string, _ uint) ([]*models.Artwork, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Artwork) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// commentRepoStub is a stub for repository.CommentRepository.
type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listByArtworkFn func(context.Context, uint) ([]*models.Comment, error)
	updateFn        func(context.Context, *models.Comment) error
	deleteFn        func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByArtwork(ctx context.Context, artworkID uint) ([]*models.Comment, error) {
	return s.listByArtworkFn(ctx, artworkID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		getByIDFn:       func(_ context.Context, id uint) (*models.Comment, error) { return &models.Comment{ID: id}, nil },
		listByArtworkFn: func(_ context.Context, _ uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:        func(_ context.Context, _ *models.Comment) error { return nil },
		deleteFn:        func(_ context.Context, _ uint) error { return nil },
	}
}

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	createFn       func(context.Context, uint, uint) error
	deleteFn       func(context.Context, uint, uint) error
	followersFn    func(context.Context, uint) ([]models.User, error)
	followingFn    func(context.Context, uint) ([]models.User, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
}

func (s *followRepoStub) Create(ctx context.Context, followerID, followeeID uint) error {
	return s.createFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Delete(ctx context.Context, followerID, followeeID uint) error {
	return s.deleteFn(ctx, followerID, followeeID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followeeID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followeeID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		createFn:       func(_ context.Context, _, _ uint) error { return nil },
		deleteFn:       func(_ context.Context, _, _ uint) error { return nil },
		followersFn:    func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		followingFn:    func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		followingIDsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		isFollowingFn:  func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	createFn          func(context.Context, uint, uint) error
	deleteFn          func(context.Context, uint, uint) error
	likersFn          func(context.Context, uint) ([]models.User, error)
	listLikedByUserFn func(context.Context, uint) ([]*models.Artwork, error)
	isLikedFn         func(context.Context, uint, uint) (bool, error)
}

func (s *likeRepoStub) Create(ctx context.Context, userID, artworkID uint) error {
	return s.createFn(ctx, userID, artworkID)
}
func (s *likeRepoStub) Delete(ctx context.Context, userID, artworkID uint) error {
	return s.deleteFn(ctx, userID, artworkID)
}
func (s *likeRepoStub) Likers(ctx context.Context, artworkID uint) ([]models.User, error) {
	return s.likersFn(ctx, artworkID)
}
func (s *likeRepoStub) ListLikedByUser(ctx context.Context, userID uint) ([]*models.Artwork, error) {
	return s.listLikedByUserFn(ctx, userID)
}
func (s *likeRepoStub) IsLiked(ctx context.Context, userID, artworkID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, artworkID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		createFn:          func(_ context.Context, _, _ uint) error { return nil },
		deleteFn:          func(_ context.Context, _, _ uint) error { return nil },
		likersFn:          func(_ context.Context, _ uint) ([]models.User, error) { return nil, nil },
		listLikedByUserFn: func(_ context.Context, _ uint) ([]*models.Artwork, error) { return nil, nil },
		isLikedFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// saveRepoStub is a stub for repository.SaveRepository.
type saveRepoStub struct {
	createFn          func(context.Context, uint, uint) error
	deleteFn          func(context.Context, uint, uint) error
	listSavedByUserFn func(context.Context, uint) ([]*models.Artwork, error)
	isSavedFn         func(context.Context, uint, uint) (bool, error)
}

func (s *saveRepoStub) Create(ctx context.Context, userID, artworkID uint) error {
	return s.createFn(ctx, userID, artworkID)
}
func (s *saveRepoStub) Delete(ctx context.Context, userID, artworkID uint) error {
	return s.deleteFn(ctx, userID, artworkID)
}
func (s *saveRepoStub) ListSavedByUser(ctx context.Context, userID uint) ([]*models.Artwork, error) {
	return s.listSavedByUserFn(ctx, userID)
}
func (s *saveRepoStub) IsSaved(ctx context.Context, userID, artworkID uint) (bool, error) {
	return s.isSavedFn(ctx, userID, artworkID)
}

func noopSaveRepo() *saveRepoStub {
	return &saveRepoStub{
		createFn:          func(_ context.Context, _, _ uint) error { return nil },
		deleteFn:          func(_ context.Context, _, _ uint) error { return nil },
		listSavedByUserFn: func(_ context.Context, _ uint) ([]*models.Artwork, error) { return nil, nil },
		isSavedFn:         func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

// hashtagRepoStub is a stub for repository.HashtagRepository.
type hashtagRepoStub struct {
	getOrCreateFn   func(context.Context, string) (*models.Hashtag, error)
	linkFn          func(context.Context, uint, uint) error
	listByArtworkFn func(context.Context, uint) ([]models.Hashtag, error)
	searchFn        func(context.Context, string) ([]models.Hashtag, error)
}

func (s *hashtagRepoStub) GetOrCreate(ctx context.Context, tag string) (*models.Hashtag, error) {
	return s.getOrCreateFn(ctx, tag)
}
func (s *hashtagRepoStub) Link(ctx context.Context, artworkID, hashtagID uint) error {
	return s.linkFn(ctx, artworkID, hashtagID)
}
func (s *hashtagRepoStub) ListByArtwork(ctx context.Context, artworkID uint) ([]models.Hashtag, error) {
	return s.listByArtworkFn(ctx, artworkID)
}
func (s *hashtagRepoStub) Search(ctx context.Context, query string) ([]models.Hashtag, error) {
	return s.searchFn(ctx, query)
}

func noopHashtagRepo() *hashtagRepoStub {
	nextID := uint(0)
	return &hashtagRepoStub{
		getOrCreateFn: func(_ context.Context, tag string) (*models.Hashtag, error) {
			nextID++
			return &models.Hashtag{ID: nextID, Tag: tag}, nil
		},
		linkFn:          func(_ context.Context, _, _ uint) error { return nil },
		listByArtworkFn: func(_ context.Context, _ uint) ([]models.Hashtag, error) { return nil, nil },
		searchFn:        func(_ context.Context, _ string) ([]models.Hashtag, error) { return nil, nil },
	}
}

// leaderboardRepoStub is a stub for repository.LeaderboardRepository.
type leaderboardRepoStub struct {
	topArtworksFn func(context.Context, models.LeaderboardWindow) ([]models.ArtworkRank, error)
	topArtistsFn  func(context.Context, models.LeaderboardWindow) ([]models.ArtistRank, error)
}

func (s *leaderboardRepoStub) TopArtworks(ctx context.Context, window models.LeaderboardWindow) ([]models.ArtworkRank, error) {
	return s.topArtworksFn(ctx, window)
}
func (s *leaderboardRepoStub) TopArtists(ctx context.Context, window models.LeaderboardWindow) ([]models.ArtistRank, error) {
	return s.topArtistsFn(ctx, window)
}

// assertAppErrorCode asserts that err is an AppError with the given code.
func assertAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %T: %v", err, err)
	assert.Equal(t, code, appErr.Code)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeValidation)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func assertForbiddenError(t *testing.T, err error) {
	t.Helper()
	assertAppErrorCode(t, err, models.CodeForbidden)
}
