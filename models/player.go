package models

import "time"

// Player positions follow the usual pitch abbreviations.
var PlayerPositions = []string{"GK", "CB", "LB", "RB", "CDM", "CM", "CAM", "LM", "RM", "LW", "RW", "ST", "CF"}

func IsValidPosition(pos string) bool {
	for _, p := range PlayerPositions {
		if p == pos {
			return true
		}
	}
	return false
}

type Player struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	JerseyNumber  int        `json:"jersey_number"`
	Position      string     `json:"position"`
	Bio           string     `json:"bio,omitempty"`
	PhotoKey      *string    `json:"-"`
	PhotoURL      string     `json:"photo_url,omitempty"`
	IsCaptain     bool       `json:"is_captain"`
	IsViceCaptain bool       `json:"is_vice_captain"`
	DateJoined    *time.Time `json:"date_joined,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}
