package models

// LeaderboardWindow filters leaderboard aggregation by the artwork's creation
// time. The zero value means all-time; Year alone means a calendar year;
// Year+Month means one calendar month.
type LeaderboardWindow struct {
	Month int `json:"month,omitempty"`
	Year  int `json:"year,omitempty"`
}

// AllTime reports whether the window places no time restriction.
func (w LeaderboardWindow) AllTime() bool {
	return w.Year == 0 && w.Month == 0
}

// ArtworkRank is one leaderboard row for the top-artworks board.
type ArtworkRank struct {
	ArtworkID  uint   `json:"artwork_id"`
	Title      string `json:"title"`
	ImageURL   string `json:"image_url"`
	UserID     uint   `json:"user_id"`
	Username   string `json:"username"`
	Avatar     string `json:"avatar"`
	TotalLikes int    `json:"total_likes"`
}

// ArtistRank is one leaderboard row for the top-artists board.
type ArtistRank struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	Avatar       string `json:"avatar"`
	Bio          string `json:"bio"`
	TotalLikes   int    `json:"total_likes"`
	ArtworkCount int    `json:"artwork_count"`
}
