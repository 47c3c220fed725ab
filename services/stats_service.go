package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
)

type StatsService interface {
	ListStats(ctx context.Context) ([]models.PlayerStats, error)
	SaveCounters(ctx context.Context, input StatsInput) (*models.PlayerStats, error)
	// RecomputeFromRatings refreshes average_rating and man_of_the_match for
	// every rated player. The manual counters are left untouched; their
	// rollup from match data has no defined rule.
	RecomputeFromRatings(ctx context.Context) (int, error)
}

type StatsInput struct {
	PlayerID      int `json:"player_id"`
	Appearances   int `json:"appearances"`
	Goals         int `json:"goals"`
	Assists       int `json:"assists"`
	CleanSheets   int `json:"clean_sheets"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
	MinutesPlayed int `json:"minutes_played"`
}

type statsService struct {
	statsRepo  repositories.StatsRepository
	ratingRepo repositories.RatingRepository
}

func NewStatsService(statsRepo repositories.StatsRepository, ratingRepo repositories.RatingRepository) StatsService {
	return &statsService{
		statsRepo:  statsRepo,
		ratingRepo: ratingRepo,
	}
}

func (s *statsService) ListStats(ctx context.Context) ([]models.PlayerStats, error) {
	stats, err := s.statsRepo.ListWithPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list player stats: %w", err)
	}
	return stats, nil
}

func (s *statsService) SaveCounters(ctx context.Context, input StatsInput) (*models.PlayerStats, error) {
	if input.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: player_id is required", ErrValidationFailed)
	}
	for _, v := range []int{input.Appearances, input.Goals, input.Assists, input.CleanSheets, input.YellowCards, input.RedCards, input.MinutesPlayed} {
		if v < 0 {
			return nil, fmt.Errorf("%w: counters cannot be negative", ErrValidationFailed)
		}
	}

	stats := &models.PlayerStats{
		PlayerID:      input.PlayerID,
		Appearances:   input.Appearances,
		Goals:         input.Goals,
		Assists:       input.Assists,
		CleanSheets:   input.CleanSheets,
		YellowCards:   input.YellowCards,
		RedCards:      input.RedCards,
		MinutesPlayed: input.MinutesPlayed,
	}
	if err := s.statsRepo.UpsertCounters(ctx, stats); err != nil {
		if errors.Is(err, repositories.ErrStatsPlayerInvalid) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to save stats for player %d: %w", input.PlayerID, err)
	}
	return stats, nil
}

func (s *statsService) RecomputeFromRatings(ctx context.Context) (int, error) {
	averages, err := s.ratingRepo.AverageByPlayer(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load rating averages: %w", err)
	}
	motm, err := s.ratingRepo.MOTMCountByPlayer(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load man-of-the-match counts: %w", err)
	}

	updated := 0
	for playerID, avg := range averages {
		rounded := math.Round(avg*10) / 10
		if err := s.statsRepo.UpdateComputed(ctx, playerID, rounded, motm[playerID]); err != nil {
			// A player deleted since being rated is skipped, not fatal.
			if errors.Is(err, repositories.ErrStatsPlayerInvalid) {
				continue
			}
			return updated, fmt.Errorf("failed to store computed stats for player %d: %w", playerID, err)
		}
		updated++
	}
	return updated, nil
}
