package services

import (
	"context"
	"errors"
	"testing"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
)

type fakeStatsRepo struct {
	upsertCountersFn func(ctx context.Context, stats *models.PlayerStats) error
	updateComputedFn func(ctx context.Context, playerID int, averageRating float64, manOfTheMatch int) error
}

func (f *fakeStatsRepo) ListWithPlayers(ctx context.Context) ([]models.PlayerStats, error) {
	return nil, errUnexpectedCall
}

func (f *fakeStatsRepo) UpsertCounters(ctx context.Context, stats *models.PlayerStats) error {
	if f.upsertCountersFn == nil {
		return errUnexpectedCall
	}
	return f.upsertCountersFn(ctx, stats)
}

func (f *fakeStatsRepo) UpdateComputed(ctx context.Context, playerID int, averageRating float64, manOfTheMatch int) error {
	if f.updateComputedFn == nil {
		return errUnexpectedCall
	}
	return f.updateComputedFn(ctx, playerID, averageRating, manOfTheMatch)
}

func TestSaveCountersRejectsNegativeValues(t *testing.T) {
	svc := NewStatsService(&fakeStatsRepo{}, &fakeRatingRepo{})

	_, err := svc.SaveCounters(context.Background(), StatsInput{PlayerID: 1, Goals: -1})
	if !errors.Is(err, ErrValidationFailed) {
		t.Fatalf("expected ErrValidationFailed, got %v", err)
	}
}

func TestRecomputeFromRatingsRoundsAndJoinsMOTM(t *testing.T) {
	ratingRepo := &fakeRatingRepo{
		averageByPlayerFn: func(ctx context.Context) (map[int]float64, error) {
			return map[int]float64{10: 7.6666666}, nil
		},
		motmCountByPlayerFn: func(ctx context.Context) (map[int]int, error) {
			return map[int]int{10: 2}, nil
		},
	}

	var gotAvg float64
	var gotMOTM int
	statsRepo := &fakeStatsRepo{
		updateComputedFn: func(ctx context.Context, playerID int, averageRating float64, manOfTheMatch int) error {
			gotAvg = averageRating
			gotMOTM = manOfTheMatch
			return nil
		},
	}
	svc := NewStatsService(statsRepo, ratingRepo)

	updated, err := svc.RecomputeFromRatings(context.Background())
	if err != nil {
		t.Fatalf("RecomputeFromRatings: %v", err)
	}
	if updated != 1 {
		t.Fatalf("expected 1 update, got %d", updated)
	}
	if gotAvg != 7.7 {
		t.Fatalf("expected average rounded to 7.7, got %v", gotAvg)
	}
	if gotMOTM != 2 {
		t.Fatalf("expected 2 man-of-the-match awards, got %d", gotMOTM)
	}
}

func TestRecomputeFromRatingsSkipsDeletedPlayers(t *testing.T) {
	ratingRepo := &fakeRatingRepo{
		averageByPlayerFn: func(ctx context.Context) (map[int]float64, error) {
			return map[int]float64{10: 7.0, 11: 6.0}, nil
		},
		motmCountByPlayerFn: func(ctx context.Context) (map[int]int, error) {
			return map[int]int{}, nil
		},
	}
	statsRepo := &fakeStatsRepo{
		updateComputedFn: func(ctx context.Context, playerID int, averageRating float64, manOfTheMatch int) error {
			if playerID == 11 {
				return repositories.ErrStatsPlayerInvalid
			}
			return nil
		},
	}
	svc := NewStatsService(statsRepo, ratingRepo)

	updated, err := svc.RecomputeFromRatings(context.Background())
	if err != nil {
		t.Fatalf("RecomputeFromRatings: %v", err)
	}
	if updated != 1 {
		t.Fatalf("expected deleted player to be skipped, got %d updates", updated)
	}
}
