package models

import "time"

type MatchStatus string

const (
	StatusScheduled MatchStatus = "scheduled"
	StatusLive      MatchStatus = "live"
	StatusFinished  MatchStatus = "finished"
	StatusPostponed MatchStatus = "postponed"
	StatusCancelled MatchStatus = "cancelled"
)

func ParseMatchStatus(s string) (MatchStatus, bool) {
	switch MatchStatus(s) {
	case StatusScheduled, StatusLive, StatusFinished, StatusPostponed, StatusCancelled:
		return MatchStatus(s), true
	}
	return "", false
}

type Match struct {
	ID          int         `json:"id"`
	OpponentID  int         `json:"opponent_id"`
	MatchDate   time.Time   `json:"match_date"`
	Venue       string      `json:"venue"`
	Competition string      `json:"competition"`
	Status      MatchStatus `json:"status"`
	HomeScore   int         `json:"home_score"`
	AwayScore   int         `json:"away_score"`
	IsHome      bool        `json:"is_home"`
	MatchReport string      `json:"match_report,omitempty"`
	Formation   string      `json:"formation,omitempty"`
	Opponent    *Team       `json:"opponent,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
