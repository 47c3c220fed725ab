package models

// PlayerStats are season totals per player. Appearance/goal style counters
// are maintained by the admin; AverageRating and ManOfTheMatch are
// recomputed from stored ratings.
type PlayerStats struct {
	ID            int     `json:"id"`
	PlayerID      int     `json:"player_id"`
	Appearances   int     `json:"appearances"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	CleanSheets   int     `json:"clean_sheets"`
	YellowCards   int     `json:"yellow_cards"`
	RedCards      int     `json:"red_cards"`
	MinutesPlayed int     `json:"minutes_played"`
	ManOfTheMatch int     `json:"man_of_the_match"`
	AverageRating float64 `json:"average_rating"`
	Player        *Player `json:"player,omitempty"`
}
