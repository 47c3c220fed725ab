package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/galacticos-fc/clubsite/models"
	"github.com/lib/pq"
)

func TestUpsertBatchSingleStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT INTO player_ratings \(match_id, player_id, rater_id, score\).*ON CONFLICT \(match_id, player_id, rater_id\).*DO UPDATE SET score = EXCLUDED.score`).
		WithArgs(3, 10, 5, 8, 3, 12, 5, 6).
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewPostgresRatingRepository(db)
	err = repo.UpsertBatch(context.Background(), []models.Rating{
		{MatchID: 3, PlayerID: 10, RaterID: 5, Score: 8},
		{MatchID: 3, PlayerID: 12, RaterID: 5, Score: 6},
	})
	if err != nil {
		t.Fatalf("UpsertBatch: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertBatchEmptyIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRatingRepository(db)
	if err := repo.UpsertBatch(context.Background(), nil); err != nil {
		t.Fatalf("UpsertBatch(nil): %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("empty batch must not touch the database: %v", err)
	}
}

func TestUpsertBatchMapsForeignKeyViolation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`INSERT INTO player_ratings`).
		WithArgs(3, 10, 5, 8).
		WillReturnError(&pq.Error{Code: "23503"})

	repo := NewPostgresRatingRepository(db)
	err = repo.UpsertBatch(context.Background(), []models.Rating{
		{MatchID: 3, PlayerID: 10, RaterID: 5, Score: 8},
	})
	if err != ErrRatingRefInvalid {
		t.Fatalf("expected ErrRatingRefInvalid, got %v", err)
	}
}

func TestListPlayerIDsRated(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"player_id"}).AddRow(10).AddRow(12)
	mock.ExpectQuery(`SELECT player_id FROM player_ratings WHERE match_id = \$1 AND rater_id = \$2`).
		WithArgs(3, 5).
		WillReturnRows(rows)

	repo := NewPostgresRatingRepository(db)
	ids, err := repo.ListPlayerIDsRated(context.Background(), 3, 5)
	if err != nil {
		t.Fatalf("ListPlayerIDsRated: %v", err)
	}
	if len(ids) != 2 || ids[0] != 10 || ids[1] != 12 {
		t.Fatalf("expected [10 12], got %v", ids)
	}
}

func TestMOTMCountByPlayer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{"player_id", "count"}).AddRow(10, 3).AddRow(11, 1)
	mock.ExpectQuery(`(?s)WITH match_averages AS.*RANK\(\) OVER \(PARTITION BY match_id ORDER BY AVG\(score\) DESC\).*WHERE rnk = 1`).
		WillReturnRows(rows)

	repo := NewPostgresRatingRepository(db)
	counts, err := repo.MOTMCountByPlayer(context.Background())
	if err != nil {
		t.Fatalf("MOTMCountByPlayer: %v", err)
	}
	if counts[10] != 3 || counts[11] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
