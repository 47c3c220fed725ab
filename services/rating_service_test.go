package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/galacticos-fc/clubsite/models"
)

func finishedMatch(id int) *models.Match {
	return &models.Match{ID: id, Status: models.StatusFinished}
}

func lineupOf(playerIDs ...int) []models.LineupEntry {
	entries := make([]models.LineupEntry, 0, len(playerIDs))
	for _, id := range playerIDs {
		entries = append(entries, models.LineupEntry{PlayerID: id})
	}
	return entries
}

func TestSubmitRatingsEmptySubmissionTouchesNothing(t *testing.T) {
	matchRepo := &fakeMatchRepo{}
	ratingRepo := &fakeRatingRepo{}
	svc := NewRatingService(matchRepo, &fakeLineupRepo{}, ratingRepo)

	// All scores at the unset sentinel: the user opened the form and
	// submitted without touching a slider.
	_, err := svc.SubmitRatings(context.Background(), SubmitRatingsInput{
		MatchID: 1,
		RaterID: 5,
		Scores: []PlayerScore{
			{PlayerID: 10, Score: models.RatingUnset},
			{PlayerID: 11, Score: models.RatingUnset},
		},
	})
	if !errors.Is(err, ErrNoRatingsTouched) {
		t.Fatalf("expected ErrNoRatingsTouched, got %v", err)
	}
	if ratingRepo.upsertCalls != 0 {
		t.Fatalf("empty submission must not write, got %d upsert calls", ratingRepo.upsertCalls)
	}
}

func TestSubmitRatingsScoreOutOfRange(t *testing.T) {
	svc := NewRatingService(&fakeMatchRepo{}, &fakeLineupRepo{}, &fakeRatingRepo{})

	for _, score := range []int{-1, 11, 100} {
		_, err := svc.SubmitRatings(context.Background(), SubmitRatingsInput{
			MatchID: 1,
			RaterID: 5,
			Scores:  []PlayerScore{{PlayerID: 10, Score: score}},
		})
		if !errors.Is(err, ErrScoreOutOfRange) {
			t.Fatalf("score %d: expected ErrScoreOutOfRange, got %v", score, err)
		}
	}
}

func TestSubmitRatingsRejectsUnfinishedMatch(t *testing.T) {
	for _, status := range []models.MatchStatus{models.StatusScheduled, models.StatusLive, models.StatusPostponed, models.StatusCancelled} {
		matchRepo := &fakeMatchRepo{
			getByIDFn: func(ctx context.Context, id int) (*models.Match, error) {
				return &models.Match{ID: id, Status: status}, nil
			},
		}
		svc := NewRatingService(matchRepo, &fakeLineupRepo{}, &fakeRatingRepo{})

		_, err := svc.SubmitRatings(context.Background(), SubmitRatingsInput{
			MatchID: 1,
			RaterID: 5,
			Scores:  []PlayerScore{{PlayerID: 10, Score: 7}},
		})
		if !errors.Is(err, ErrMatchNotRatable) {
			t.Fatalf("status %s: expected ErrMatchNotRatable, got %v", status, err)
		}
	}
}

func TestSubmitRatingsRejectsPlayerOutsideLineup(t *testing.T) {
	matchRepo := &fakeMatchRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Match, error) {
			return finishedMatch(id), nil
		},
	}
	lineupRepo := &fakeLineupRepo{
		listByMatchFn: func(ctx context.Context, matchID int) ([]models.LineupEntry, error) {
			return lineupOf(10, 11), nil
		},
	}
	ratingRepo := &fakeRatingRepo{}
	svc := NewRatingService(matchRepo, lineupRepo, ratingRepo)

	_, err := svc.SubmitRatings(context.Background(), SubmitRatingsInput{
		MatchID: 1,
		RaterID: 5,
		Scores:  []PlayerScore{{PlayerID: 99, Score: 7}},
	})
	if !errors.Is(err, ErrPlayerNotInLineup) {
		t.Fatalf("expected ErrPlayerNotInLineup, got %v", err)
	}
	if ratingRepo.upsertCalls != 0 {
		t.Fatalf("invalid submission must not write")
	}
}

func TestSubmitRatingsSkipsUntouchedAndUpserts(t *testing.T) {
	matchRepo := &fakeMatchRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Match, error) {
			return finishedMatch(id), nil
		},
	}
	lineupRepo := &fakeLineupRepo{
		listByMatchFn: func(ctx context.Context, matchID int) ([]models.LineupEntry, error) {
			return lineupOf(10, 11, 12), nil
		},
	}

	var stored []models.Rating
	ratingRepo := &fakeRatingRepo{
		upsertBatchFn: func(ctx context.Context, ratings []models.Rating) error {
			stored = ratings
			return nil
		},
		listPlayerIDsRatedFn: func(ctx context.Context, matchID, raterID int) ([]int, error) {
			return []int{10, 12}, nil
		},
	}
	svc := NewRatingService(matchRepo, lineupRepo, ratingRepo)

	result, err := svc.SubmitRatings(context.Background(), SubmitRatingsInput{
		MatchID: 3,
		RaterID: 5,
		Scores: []PlayerScore{
			{PlayerID: 10, Score: 8},
			{PlayerID: 11, Score: models.RatingUnset},
			{PlayerID: 12, Score: 6},
		},
	})
	if err != nil {
		t.Fatalf("SubmitRatings: %v", err)
	}

	if result.Submitted != 2 {
		t.Fatalf("expected 2 submitted, got %d", result.Submitted)
	}
	if ratingRepo.upsertCalls != 1 {
		t.Fatalf("expected a single batch upsert, got %d calls", ratingRepo.upsertCalls)
	}
	want := []models.Rating{
		{MatchID: 3, PlayerID: 10, RaterID: 5, Score: 8},
		{MatchID: 3, PlayerID: 12, RaterID: 5, Score: 6},
	}
	if !reflect.DeepEqual(stored, want) {
		t.Fatalf("stored ratings mismatch:\n got %+v\nwant %+v", stored, want)
	}
	if !reflect.DeepEqual(result.RatedPlayerIDs, []int{10, 12}) {
		t.Fatalf("expected refreshed rated set [10 12], got %v", result.RatedPlayerIDs)
	}
}

func TestGetMatchRatingContext(t *testing.T) {
	matchRepo := &fakeMatchRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Match, error) {
			return finishedMatch(id), nil
		},
	}
	lineupRepo := &fakeLineupRepo{
		listByMatchFn: func(ctx context.Context, matchID int) ([]models.LineupEntry, error) {
			return lineupOf(10, 11), nil
		},
	}
	ratingRepo := &fakeRatingRepo{
		listPlayerIDsRatedFn: func(ctx context.Context, matchID, raterID int) ([]int, error) {
			if matchID != 4 || raterID != 5 {
				t.Fatalf("rated set looked up with wrong keys: match %d rater %d", matchID, raterID)
			}
			return []int{11}, nil
		},
	}
	svc := NewRatingService(matchRepo, lineupRepo, ratingRepo)

	ratingCtx, err := svc.GetMatchRatingContext(context.Background(), 4, 5)
	if err != nil {
		t.Fatalf("GetMatchRatingContext: %v", err)
	}
	if len(ratingCtx.Lineup) != 2 {
		t.Fatalf("expected 2 lineup entries, got %d", len(ratingCtx.Lineup))
	}
	if !reflect.DeepEqual(ratingCtx.RatedPlayerIDs, []int{11}) {
		t.Fatalf("expected rated set [11], got %v", ratingCtx.RatedPlayerIDs)
	}
}

func TestGetMatchRatingContextRejectsUnfinished(t *testing.T) {
	matchRepo := &fakeMatchRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.Match, error) {
			return &models.Match{ID: id, Status: models.StatusScheduled}, nil
		},
	}
	svc := NewRatingService(matchRepo, &fakeLineupRepo{}, &fakeRatingRepo{})

	_, err := svc.GetMatchRatingContext(context.Background(), 4, 5)
	if !errors.Is(err, ErrMatchNotRatable) {
		t.Fatalf("expected ErrMatchNotRatable, got %v", err)
	}
}

func TestListRatableMatchesQueriesFinishedWithCap(t *testing.T) {
	matchRepo := &fakeMatchRepo{
		listFn: func(ctx context.Context, status models.MatchStatus, limit int) ([]models.Match, error) {
			if status != models.StatusFinished {
				t.Fatalf("expected finished filter, got %s", status)
			}
			if limit != 10 {
				t.Fatalf("expected limit 10, got %d", limit)
			}
			return []models.Match{{ID: 1}, {ID: 2}}, nil
		},
	}
	svc := NewRatingService(matchRepo, &fakeLineupRepo{}, &fakeRatingRepo{})

	matches, err := svc.ListRatableMatches(context.Background())
	if err != nil {
		t.Fatalf("ListRatableMatches: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
}
