package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/lib/pq"
)

var (
	ErrStatsNotFound      = errors.New("player stats not found")
	ErrStatsPlayerInvalid = errors.New("stats reference an unknown player")
)

type StatsRepository interface {
	// ListWithPlayers returns stats joined with player identity, ordered by
	// goals descending.
	ListWithPlayers(ctx context.Context) ([]models.PlayerStats, error)
	// UpsertCounters writes the admin-maintained counters for a player.
	UpsertCounters(ctx context.Context, stats *models.PlayerStats) error
	// UpdateComputed stores recomputed rating aggregates for a player.
	UpdateComputed(ctx context.Context, playerID int, averageRating float64, manOfTheMatch int) error
}

type postgresStatsRepository struct {
	db *sql.DB
}

func NewPostgresStatsRepository(db *sql.DB) StatsRepository {
	return &postgresStatsRepository{db: db}
}

func (r *postgresStatsRepository) ListWithPlayers(ctx context.Context) ([]models.PlayerStats, error) {
	query := `
		SELECT
			s.id, s.player_id, s.appearances, s.goals, s.assists, s.clean_sheets,
			s.yellow_cards, s.red_cards, s.minutes_played, s.man_of_the_match, s.average_rating,
			p.id, p.name, p.jersey_number, p.position, p.bio, p.photo_key,
			p.is_captain, p.is_vice_captain, p.date_joined, p.is_active, p.created_at
		FROM player_stats s
		JOIN players p ON s.player_id = p.id
		ORDER BY s.goals DESC, p.jersey_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list player stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.PlayerStats, 0)
	for rows.Next() {
		var s models.PlayerStats
		var p models.Player
		if err := rows.Scan(
			&s.ID, &s.PlayerID, &s.Appearances, &s.Goals, &s.Assists, &s.CleanSheets,
			&s.YellowCards, &s.RedCards, &s.MinutesPlayed, &s.ManOfTheMatch, &s.AverageRating,
			&p.ID, &p.Name, &p.JerseyNumber, &p.Position, &p.Bio, &p.PhotoKey,
			&p.IsCaptain, &p.IsViceCaptain, &p.DateJoined, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player stats: %w", err)
		}
		s.Player = &p
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *postgresStatsRepository) UpsertCounters(ctx context.Context, stats *models.PlayerStats) error {
	query := `
		INSERT INTO player_stats (player_id, appearances, goals, assists, clean_sheets, yellow_cards, red_cards, minutes_played)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (player_id) DO UPDATE SET
			appearances = EXCLUDED.appearances,
			goals = EXCLUDED.goals,
			assists = EXCLUDED.assists,
			clean_sheets = EXCLUDED.clean_sheets,
			yellow_cards = EXCLUDED.yellow_cards,
			red_cards = EXCLUDED.red_cards,
			minutes_played = EXCLUDED.minutes_played
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		stats.PlayerID,
		stats.Appearances,
		stats.Goals,
		stats.Assists,
		stats.CleanSheets,
		stats.YellowCards,
		stats.RedCards,
		stats.MinutesPlayed,
	).Scan(&stats.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrStatsPlayerInvalid
		}
		return err
	}
	return nil
}

func (r *postgresStatsRepository) UpdateComputed(ctx context.Context, playerID int, averageRating float64, manOfTheMatch int) error {
	query := `
		INSERT INTO player_stats (player_id, average_rating, man_of_the_match)
		VALUES ($1, $2, $3)
		ON CONFLICT (player_id) DO UPDATE SET
			average_rating = EXCLUDED.average_rating,
			man_of_the_match = EXCLUDED.man_of_the_match`

	_, err := r.db.ExecContext(ctx, query, playerID, averageRating, manOfTheMatch)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrStatsPlayerInvalid
		}
		return fmt.Errorf("failed to update computed stats for player %d: %w", playerID, err)
	}
	return nil
}
