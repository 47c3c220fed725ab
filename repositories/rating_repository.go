package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/lib/pq"
)

var ErrRatingRefInvalid = errors.New("rating references an unknown match, player or rater")

type RatingRepository interface {
	// UpsertBatch writes every rating in one statement. A conflict on the
	// (match_id, player_id, rater_id) unique key overwrites the stored score.
	// The database constraint is the only concurrency guard; callers must not
	// pre-check existence.
	UpsertBatch(ctx context.Context, ratings []models.Rating) error
	// ListPlayerIDsRated returns the ids of players the rater has already
	// scored for the given match.
	ListPlayerIDsRated(ctx context.Context, matchID, raterID int) ([]int, error)
	ListByMatchAndPlayer(ctx context.Context, matchID, playerID int) ([]models.Rating, error)
	// AverageByPlayer aggregates stored scores per player across all matches.
	AverageByPlayer(ctx context.Context) (map[int]float64, error)
	// MOTMCountByPlayer counts, per player, the finished matches where the
	// player holds the highest average score.
	MOTMCountByPlayer(ctx context.Context) (map[int]int, error)
}

type postgresRatingRepository struct {
	db *sql.DB
}

func NewPostgresRatingRepository(db *sql.DB) RatingRepository {
	return &postgresRatingRepository{db: db}
}

func (r *postgresRatingRepository) UpsertBatch(ctx context.Context, ratings []models.Rating) error {
	if len(ratings) == 0 {
		return nil
	}

	query := `
		INSERT INTO player_ratings (match_id, player_id, rater_id, score)
		VALUES `
	args := make([]interface{}, 0, len(ratings)*4)
	for i, rating := range ratings {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, rating.MatchID, rating.PlayerID, rating.RaterID, rating.Score)
	}
	query += `
		ON CONFLICT (match_id, player_id, rater_id)
		DO UPDATE SET score = EXCLUDED.score, updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrRatingRefInvalid
		}
		return fmt.Errorf("failed to upsert %d ratings: %w", len(ratings), err)
	}
	return nil
}

func (r *postgresRatingRepository) ListPlayerIDsRated(ctx context.Context, matchID, raterID int) ([]int, error) {
	query := `SELECT player_id FROM player_ratings WHERE match_id = $1 AND rater_id = $2`

	rows, err := r.db.QueryContext(ctx, query, matchID, raterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list rated players for match %d: %w", matchID, err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan rated player id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *postgresRatingRepository) ListByMatchAndPlayer(ctx context.Context, matchID, playerID int) ([]models.Rating, error) {
	query := `
		SELECT id, match_id, player_id, rater_id, score, created_at, updated_at
		FROM player_ratings
		WHERE match_id = $1 AND player_id = $2
		ORDER BY updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, matchID, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for match %d player %d: %w", matchID, playerID, err)
	}
	defer rows.Close()

	ratings := make([]models.Rating, 0)
	for rows.Next() {
		var rating models.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.MatchID,
			&rating.PlayerID,
			&rating.RaterID,
			&rating.Score,
			&rating.CreatedAt,
			&rating.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *postgresRatingRepository) AverageByPlayer(ctx context.Context) (map[int]float64, error) {
	query := `SELECT player_id, AVG(score) FROM player_ratings GROUP BY player_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate rating averages: %w", err)
	}
	defer rows.Close()

	averages := make(map[int]float64)
	for rows.Next() {
		var playerID int
		var avg float64
		if err := rows.Scan(&playerID, &avg); err != nil {
			return nil, fmt.Errorf("failed to scan rating average: %w", err)
		}
		averages[playerID] = avg
	}
	return averages, rows.Err()
}

func (r *postgresRatingRepository) MOTMCountByPlayer(ctx context.Context) (map[int]int, error) {
	query := `
		WITH match_averages AS (
			SELECT match_id, player_id, AVG(score) AS avg_score,
			       RANK() OVER (PARTITION BY match_id ORDER BY AVG(score) DESC) AS rnk
			FROM player_ratings
			GROUP BY match_id, player_id
		)
		SELECT player_id, COUNT(*)
		FROM match_averages
		WHERE rnk = 1
		GROUP BY player_id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate man-of-the-match counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int)
	for rows.Next() {
		var playerID, count int
		if err := rows.Scan(&playerID, &count); err != nil {
			return nil, fmt.Errorf("failed to scan man-of-the-match count: %w", err)
		}
		counts[playerID] = count
	}
	return counts, rows.Err()
}
