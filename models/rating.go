package models

import "time"

// RatingUnset is the sentinel for "player not rated this session".
// Persisted scores are always within [RatingMin, RatingMax].
const (
	RatingUnset = 0
	RatingMin   = 1
	RatingMax   = 10
)

// Rating is one rater's score for one player in one match. The
// (match_id, player_id, rater_id) triple is unique in the store and
// resubmission overwrites in place.
type Rating struct {
	ID        int       `json:"id"`
	MatchID   int       `json:"match_id"`
	PlayerID  int       `json:"player_id"`
	RaterID   int       `json:"rater_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
