package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
)

// ratableMatchLimit caps the selectable match list, newest first.
const ratableMatchLimit = 10

// RatingService drives the rating submission flow: pick a finished match,
// load its lineup together with the players this rater already scored, then
// accept a batch of fresh scores as one upsert.
type RatingService interface {
	ListRatableMatches(ctx context.Context) ([]models.Match, error)
	GetMatchRatingContext(ctx context.Context, matchID, raterID int) (*MatchRatingContext, error)
	SubmitRatings(ctx context.Context, input SubmitRatingsInput) (*SubmitRatingsResult, error)
}

// MatchRatingContext is everything the rating page needs for one match.
type MatchRatingContext struct {
	Match          models.Match         `json:"match"`
	Lineup         []models.LineupEntry `json:"lineup"`
	RatedPlayerIDs []int                `json:"rated_player_ids"`
}

type PlayerScore struct {
	PlayerID int `json:"player_id"`
	Score    int `json:"score"`
}

type SubmitRatingsInput struct {
	MatchID int           `json:"match_id"`
	RaterID int           `json:"-"`
	Scores  []PlayerScore `json:"scores"`
}

type SubmitRatingsResult struct {
	Submitted int `json:"submitted"`
	// RatedPlayerIDs is the refreshed set after the write, so the client can
	// lock newly rated players without a second round trip.
	RatedPlayerIDs []int `json:"rated_player_ids"`
}

type ratingService struct {
	matchRepo  repositories.MatchRepository
	lineupRepo repositories.LineupRepository
	ratingRepo repositories.RatingRepository
}

func NewRatingService(
	matchRepo repositories.MatchRepository,
	lineupRepo repositories.LineupRepository,
	ratingRepo repositories.RatingRepository,
) RatingService {
	return &ratingService{
		matchRepo:  matchRepo,
		lineupRepo: lineupRepo,
		ratingRepo: ratingRepo,
	}
}

func (s *ratingService) ListRatableMatches(ctx context.Context) ([]models.Match, error) {
	matches, err := s.matchRepo.List(ctx, models.StatusFinished, ratableMatchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratable matches: %w", err)
	}
	return matches, nil
}

func (s *ratingService) GetMatchRatingContext(ctx context.Context, matchID, raterID int) (*MatchRatingContext, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to load match %d: %w", matchID, err)
	}
	if match.Status != models.StatusFinished {
		return nil, ErrMatchNotRatable
	}

	lineup, err := s.lineupRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load lineup for match %d: %w", matchID, err)
	}

	ratedIDs, err := s.ratingRepo.ListPlayerIDsRated(ctx, matchID, raterID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing ratings for match %d: %w", matchID, err)
	}

	return &MatchRatingContext{
		Match:          *match,
		Lineup:         lineup,
		RatedPlayerIDs: ratedIDs,
	}, nil
}

// SubmitRatings validates before it touches the store: scores at the unset
// sentinel are dropped, an empty remainder is a validation error and issues
// no store call at all, and every kept score must be in range and belong to
// a lineup player. The match status is re-verified server-side because the
// client's match list can be stale. The write itself is a single upsert;
// the unique key on (match, player, rater) makes resubmission overwrite
// rather than duplicate, with no existence pre-check.
func (s *ratingService) SubmitRatings(ctx context.Context, input SubmitRatingsInput) (*SubmitRatingsResult, error) {
	touched := make([]PlayerScore, 0, len(input.Scores))
	for _, score := range input.Scores {
		if score.Score == models.RatingUnset {
			continue
		}
		if score.Score < models.RatingMin || score.Score > models.RatingMax {
			return nil, ErrScoreOutOfRange
		}
		touched = append(touched, score)
	}
	if len(touched) == 0 {
		return nil, ErrNoRatingsTouched
	}

	match, err := s.matchRepo.GetByID(ctx, input.MatchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to verify match %d: %w", input.MatchID, err)
	}
	if match.Status != models.StatusFinished {
		return nil, ErrMatchNotRatable
	}

	lineup, err := s.lineupRepo.ListByMatch(ctx, input.MatchID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify lineup for match %d: %w", input.MatchID, err)
	}
	inLineup := make(map[int]bool, len(lineup))
	for _, entry := range lineup {
		inLineup[entry.PlayerID] = true
	}

	ratings := make([]models.Rating, 0, len(touched))
	for _, score := range touched {
		if !inLineup[score.PlayerID] {
			return nil, ErrPlayerNotInLineup
		}
		ratings = append(ratings, models.Rating{
			MatchID:  input.MatchID,
			PlayerID: score.PlayerID,
			RaterID:  input.RaterID,
			Score:    score.Score,
		})
	}

	if err := s.ratingRepo.UpsertBatch(ctx, ratings); err != nil {
		return nil, fmt.Errorf("failed to submit ratings: %w", err)
	}

	ratedIDs, err := s.ratingRepo.ListPlayerIDsRated(ctx, input.MatchID, input.RaterID)
	if err != nil {
		return nil, fmt.Errorf("ratings stored but failed to reload rated set: %w", err)
	}

	return &SubmitRatingsResult{
		Submitted:      len(ratings),
		RatedPlayerIDs: ratedIDs,
	}, nil
}
