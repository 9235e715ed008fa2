package repository

import (
	"context"

	"artfolio/internal/models"

	"gorm.io/gorm"
)

// leaderboardCap bounds leaderboard result sizes.
const leaderboardCap = 50

// LeaderboardRepository aggregates like totals into ranked boards. Windows
// filter on the artwork's own created_at; likes carry no window of their own.
type LeaderboardRepository interface {
	TopArtworks(ctx context.Context, window models.LeaderboardWindow) ([]models.ArtworkRank, error)
	TopArtists(ctx context.Context, window models.LeaderboardWindow) ([]models.ArtistRank, error)
}

// leaderboardRepository implements LeaderboardRepository
type leaderboardRepository struct {
	db *gorm.DB
}

// NewLeaderboardRepository creates a new leaderboard repository
func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// applyWindow appends the created_at window filter for the artwork alias "a".
func applyWindow(db *gorm.DB, window models.LeaderboardWindow) *gorm.DB {
	if window.Year != 0 {
		db = db.Where("EXTRACT(YEAR FROM a.created_at) = ?", window.Year)
	}
	if window.Month != 0 {
		db = db.Where("EXTRACT(MONTH FROM a.created_at) = ?", window.Month)
	}
	return db
}

// TopArtworks groups likes per artwork within the window, highest totals
// first. The id ascending tie-break keeps results reproducible.
func (r *leaderboardRepository) TopArtworks(ctx context.Context, window models.LeaderboardWindow) ([]models.ArtworkRank, error) {
	var ranks []models.ArtworkRank
	q := r.db.WithContext(ctx).
		Table("artworks a").
		Select("a.id as artwork_id, a.title, a.image_url, u.id as user_id, u.username, u.avatar, COUNT(l.user_id) as total_likes").
		Joins("INNER JOIN users u ON a.user_id = u.id").
		Joins("LEFT JOIN likes l ON a.id = l.artwork_id").
		Where("a.deleted_at IS NULL")
	q = applyWindow(q, window)
	if err := q.
		Group("a.id, u.id").
		Order("total_likes DESC, a.id ASC").
		Limit(leaderboardCap).
		Scan(&ranks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ranks, nil
}

// TopArtists sums like totals across each user's artworks within the window
// and also reports the distinct artwork count.
func (r *leaderboardRepository) TopArtists(ctx context.Context, window models.LeaderboardWindow) ([]models.ArtistRank, error) {
	var ranks []models.ArtistRank
	q := r.db.WithContext(ctx).
		Table("users u").
		Select("u.id as user_id, u.username, u.avatar, u.bio, COUNT(l.user_id) as total_likes, COUNT(DISTINCT a.id) as artwork_count").
		Joins("INNER JOIN artworks a ON u.id = a.user_id").
		Joins("LEFT JOIN likes l ON a.id = l.artwork_id").
		Where("a.deleted_at IS NULL")
	q = applyWindow(q, window)
	if err := q.
		Group("u.id").
		Order("total_likes DESC, u.id ASC").
		Limit(leaderboardCap).
		Scan(&ranks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ranks, nil
}
