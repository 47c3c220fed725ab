package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
)

var ErrMatchOpponentRequired = errors.New("match opponent is required")

type MatchService interface {
	CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error)
	GetMatchByID(ctx context.Context, id int) (*models.Match, error)
	ListMatches(ctx context.Context, status string, limit int) ([]models.Match, error)
	UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error)
	DeleteMatch(ctx context.Context, id int) error

	AddLineupPlayer(ctx context.Context, matchID, playerID int) error
	RemoveLineupPlayer(ctx context.Context, matchID, playerID int) error
	GetLineup(ctx context.Context, matchID int) ([]models.LineupEntry, error)
}

type MatchInput struct {
	OpponentID  int    `json:"opponent_id"`
	MatchDate   string `json:"match_date"`
	Venue       string `json:"venue"`
	Competition string `json:"competition"`
	Status      string `json:"status"`
	HomeScore   int    `json:"home_score"`
	AwayScore   int    `json:"away_score"`
	IsHome      bool   `json:"is_home"`
	MatchReport string `json:"match_report"`
	Formation   string `json:"formation"`
}

type matchService struct {
	matchRepo  repositories.MatchRepository
	lineupRepo repositories.LineupRepository
}

func NewMatchService(matchRepo repositories.MatchRepository, lineupRepo repositories.LineupRepository) MatchService {
	return &matchService{
		matchRepo:  matchRepo,
		lineupRepo: lineupRepo,
	}
}

func (s *matchService) validate(input MatchInput) (*models.Match, error) {
	if input.OpponentID <= 0 {
		return nil, ErrMatchOpponentRequired
	}
	if strings.TrimSpace(input.MatchDate) == "" {
		return nil, ErrMatchDateRequired
	}
	matchDate, err := time.Parse(time.RFC3339, input.MatchDate)
	if err != nil {
		// Date-only input comes from the admin date picker.
		matchDate, err = parseDate(input.MatchDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid match_date", ErrValidationFailed)
		}
	}
	status, ok := models.ParseMatchStatus(input.Status)
	if !ok {
		return nil, ErrMatchStatusInvalid
	}

	return &models.Match{
		OpponentID:  input.OpponentID,
		MatchDate:   matchDate,
		Venue:       strings.TrimSpace(input.Venue),
		Competition: strings.TrimSpace(input.Competition),
		Status:      status,
		HomeScore:   input.HomeScore,
		AwayScore:   input.AwayScore,
		IsHome:      input.IsHome,
		MatchReport: input.MatchReport,
		Formation:   input.Formation,
	}, nil
}

func (s *matchService) CreateMatch(ctx context.Context, input MatchInput) (*models.Match, error) {
	match, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if err := s.matchRepo.Create(ctx, match); err != nil {
		if errors.Is(err, repositories.ErrMatchOpponentInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return s.GetMatchByID(ctx, match.ID)
}

func (s *matchService) GetMatchByID(ctx context.Context, id int) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match %d: %w", id, err)
	}
	return match, nil
}

// ListMatches filters by status when one is given; an unknown status is a
// validation error rather than an empty result.
func (s *matchService) ListMatches(ctx context.Context, status string, limit int) ([]models.Match, error) {
	var parsed models.MatchStatus
	if status != "" {
		var ok bool
		parsed, ok = models.ParseMatchStatus(status)
		if !ok {
			return nil, ErrMatchStatusInvalid
		}
	}

	matches, err := s.matchRepo.List(ctx, parsed, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	return matches, nil
}

func (s *matchService) UpdateMatch(ctx context.Context, id int, input MatchInput) (*models.Match, error) {
	match, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	match.ID = id

	if err := s.matchRepo.Update(ctx, match); err != nil {
		switch {
		case errors.Is(err, repositories.ErrMatchNotFound):
			return nil, ErrMatchNotFound
		case errors.Is(err, repositories.ErrMatchOpponentInvalid):
			return nil, ErrTeamNotFound
		default:
			return nil, fmt.Errorf("failed to update match %d: %w", id, err)
		}
	}
	return s.GetMatchByID(ctx, id)
}

func (s *matchService) DeleteMatch(ctx context.Context, id int) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return ErrMatchNotFound
		}
		return fmt.Errorf("failed to delete match %d: %w", id, err)
	}
	return nil
}

func (s *matchService) AddLineupPlayer(ctx context.Context, matchID, playerID int) error {
	entry := &models.LineupEntry{MatchID: matchID, PlayerID: playerID}
	if err := s.lineupRepo.Add(ctx, entry); err != nil {
		switch {
		case errors.Is(err, repositories.ErrLineupEntryConflict):
			return ErrLineupConflict
		case errors.Is(err, repositories.ErrLineupRefInvalid):
			return ErrNotFound
		default:
			return fmt.Errorf("failed to add player %d to lineup of match %d: %w", playerID, matchID, err)
		}
	}
	return nil
}

func (s *matchService) RemoveLineupPlayer(ctx context.Context, matchID, playerID int) error {
	if err := s.lineupRepo.Remove(ctx, matchID, playerID); err != nil {
		if errors.Is(err, repositories.ErrLineupEntryNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove player %d from lineup of match %d: %w", playerID, matchID, err)
	}
	return nil
}

func (s *matchService) GetLineup(ctx context.Context, matchID int) ([]models.LineupEntry, error) {
	if _, err := s.GetMatchByID(ctx, matchID); err != nil {
		return nil, err
	}
	lineup, err := s.lineupRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lineup for match %d: %w", matchID, err)
	}
	return lineup, nil
}
