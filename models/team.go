package models

import "time"

// Team is an opponent club a match is played against. The single row with
// IsHomeTeam set represents our own club.
type Team struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	IsHomeTeam bool      `json:"is_home_team"`
	CreatedAt  time.Time `json:"created_at"`
}
