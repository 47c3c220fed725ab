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
	ErrLineupEntryNotFound = errors.New("lineup entry not found")
	ErrLineupEntryConflict = errors.New("player is already in the match lineup")
	ErrLineupRefInvalid    = errors.New("lineup references an unknown match or player")
)

type LineupRepository interface {
	Add(ctx context.Context, entry *models.LineupEntry) error
	Remove(ctx context.Context, matchID, playerID int) error
	// ListByMatch resolves each entry to its full player record, ordered by
	// jersey number.
	ListByMatch(ctx context.Context, matchID int) ([]models.LineupEntry, error)
}

type postgresLineupRepository struct {
	db *sql.DB
}

func NewPostgresLineupRepository(db *sql.DB) LineupRepository {
	return &postgresLineupRepository{db: db}
}

func (r *postgresLineupRepository) Add(ctx context.Context, entry *models.LineupEntry) error {
	query := `
		INSERT INTO match_lineups (match_id, player_id)
		VALUES ($1, $2)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, entry.MatchID, entry.PlayerID).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return ErrLineupEntryConflict
			case "23503":
				return ErrLineupRefInvalid
			}
		}
		return err
	}
	return nil
}

func (r *postgresLineupRepository) Remove(ctx context.Context, matchID, playerID int) error {
	query := `DELETE FROM match_lineups WHERE match_id = $1 AND player_id = $2`
	result, err := r.db.ExecContext(ctx, query, matchID, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrLineupEntryNotFound)
}

func (r *postgresLineupRepository) ListByMatch(ctx context.Context, matchID int) ([]models.LineupEntry, error) {
	query := `
		SELECT
			l.id, l.match_id, l.player_id, l.created_at,
			p.id, p.name, p.jersey_number, p.position, p.bio, p.photo_key,
			p.is_captain, p.is_vice_captain, p.date_joined, p.is_active, p.created_at
		FROM match_lineups l
		JOIN players p ON l.player_id = p.id
		WHERE l.match_id = $1
		ORDER BY p.jersey_number ASC`

	rows, err := r.db.QueryContext(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lineup for match %d: %w", matchID, err)
	}
	defer rows.Close()

	entries := make([]models.LineupEntry, 0)
	for rows.Next() {
		var entry models.LineupEntry
		var player models.Player
		if err := rows.Scan(
			&entry.ID,
			&entry.MatchID,
			&entry.PlayerID,
			&entry.CreatedAt,
			&player.ID,
			&player.Name,
			&player.JerseyNumber,
			&player.Position,
			&player.Bio,
			&player.PhotoKey,
			&player.IsCaptain,
			&player.IsViceCaptain,
			&player.DateJoined,
			&player.IsActive,
			&player.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lineup entry: %w", err)
		}
		entry.Player = &player
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
