package models

type DashboardStats struct {
	PlayersTotal          int `json:"players_total"`
	MatchesTotal          int `json:"matches_total"`
	FinishedMatches       int `json:"finished_matches"`
	PublishedArticles     int `json:"published_articles"`
	GalleryItemsTotal     int `json:"gallery_items_total"`
	PendingRatingRequests int `json:"pending_rating_requests"`
}
