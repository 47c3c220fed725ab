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
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchOpponentInvalid = errors.New("match opponent does not exist")
)

type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id int) (*models.Match, error)
	// List returns matches newest first, joined with the opponent team name.
	// An empty status lists every match; limit <= 0 means no limit.
	List(ctx context.Context, status models.MatchStatus, limit int) ([]models.Match, error)
	Update(ctx context.Context, match *models.Match) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, status models.MatchStatus) (int, error)
}

type postgresMatchRepository struct {
	db *sql.DB
}

func NewPostgresMatchRepository(db *sql.DB) MatchRepository {
	return &postgresMatchRepository{db: db}
}

func (r *postgresMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (opponent_id, match_date, venue, competition, status, home_score, away_score, is_home, match_report, formation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		match.OpponentID,
		match.MatchDate,
		match.Venue,
		match.Competition,
		match.Status,
		match.HomeScore,
		match.AwayScore,
		match.IsHome,
		match.MatchReport,
		match.Formation,
	).Scan(&match.ID, &match.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" && pqErr.Constraint == "matches_opponent_id_fkey" {
			return ErrMatchOpponentInvalid
		}
		return err
	}
	return nil
}

func (r *postgresMatchRepository) GetByID(ctx context.Context, id int) (*models.Match, error) {
	query := `
		SELECT
			m.id, m.opponent_id, m.match_date, m.venue, m.competition, m.status,
			m.home_score, m.away_score, m.is_home, m.match_report, m.formation, m.created_at,
			t.id, t.name, t.is_home_team, t.created_at
		FROM matches m
		JOIN teams t ON m.opponent_id = t.id
		WHERE m.id = $1`

	match, err := scanMatchWithOpponent(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match by id %d: %w", id, err)
	}
	return match, nil
}

func (r *postgresMatchRepository) List(ctx context.Context, status models.MatchStatus, limit int) ([]models.Match, error) {
	query := `
		SELECT
			m.id, m.opponent_id, m.match_date, m.venue, m.competition, m.status,
			m.home_score, m.away_score, m.is_home, m.match_report, m.formation, m.created_at,
			t.id, t.name, t.is_home_team, t.created_at
		FROM matches m
		JOIN teams t ON m.opponent_id = t.id`

	args := make([]interface{}, 0, 2)
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE m.status = $%d", len(args))
	}
	query += " ORDER BY m.match_date DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	matches := make([]models.Match, 0)
	for rows.Next() {
		match, err := scanMatchWithOpponent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func (r *postgresMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches SET
			opponent_id = $1,
			match_date = $2,
			venue = $3,
			competition = $4,
			status = $5,
			home_score = $6,
			away_score = $7,
			is_home = $8,
			match_report = $9,
			formation = $10
		WHERE id = $11`

	result, err := r.db.ExecContext(ctx, query,
		match.OpponentID,
		match.MatchDate,
		match.Venue,
		match.Competition,
		match.Status,
		match.HomeScore,
		match.AwayScore,
		match.IsHome,
		match.MatchReport,
		match.Formation,
		match.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" && pqErr.Constraint == "matches_opponent_id_fkey" {
			return ErrMatchOpponentInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrMatchNotFound)
}

func (r *postgresMatchRepository) Count(ctx context.Context, status models.MatchStatus) (int, error) {
	query := `SELECT COUNT(*) FROM matches`
	args := make([]interface{}, 0, 1)
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}

func scanMatchWithOpponent(row rowScanner) (*models.Match, error) {
	var match models.Match
	var team models.Team
	err := row.Scan(
		&match.ID,
		&match.OpponentID,
		&match.MatchDate,
		&match.Venue,
		&match.Competition,
		&match.Status,
		&match.HomeScore,
		&match.AwayScore,
		&match.IsHome,
		&match.MatchReport,
		&match.Formation,
		&match.CreatedAt,
		&team.ID,
		&team.Name,
		&team.IsHomeTeam,
		&team.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	match.Opponent = &team
	return &match, nil
}
