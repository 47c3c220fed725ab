package models

import "time"

// LineupEntry links a match to a player who took part in it. Only players
// on a match's lineup can be rated for that match.
type LineupEntry struct {
	ID        int       `json:"id"`
	MatchID   int       `json:"match_id"`
	PlayerID  int       `json:"player_id"`
	Player    *Player   `json:"player,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
