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
	ErrPlayerNotFound       = errors.New("player not found")
	ErrPlayerNumberConflict = errors.New("jersey number already taken")
)

type PlayerRepository interface {
	Create(ctx context.Context, player *models.Player) error
	GetByID(ctx context.Context, id int) (*models.Player, error)
	List(ctx context.Context, activeOnly bool) ([]models.Player, error)
	Update(ctx context.Context, player *models.Player) error
	UpdatePhotoKey(ctx context.Context, id int, key *string) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerColumns = `id, name, jersey_number, position, bio, photo_key, is_captain, is_vice_captain, date_joined, is_active, created_at`

func (r *postgresPlayerRepository) Create(ctx context.Context, player *models.Player) error {
	query := `
		INSERT INTO players (name, jersey_number, position, bio, photo_key, is_captain, is_vice_captain, date_joined, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		player.Name,
		player.JerseyNumber,
		player.Position,
		player.Bio,
		player.PhotoKey,
		player.IsCaptain,
		player.IsViceCaptain,
		player.DateJoined,
		player.IsActive,
	).Scan(&player.ID, &player.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "players_jersey_number_key" {
			return ErrPlayerNumberConflict
		}
		return err
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	player, err := scanPlayer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id %d: %w", id, err)
	}
	return player, nil
}

// List returns the squad ordered by jersey number.
func (r *postgresPlayerRepository) List(ctx context.Context, activeOnly bool) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY jersey_number ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, *player)
	}
	return players, rows.Err()
}

func (r *postgresPlayerRepository) Update(ctx context.Context, player *models.Player) error {
	query := `
		UPDATE players SET
			name = $1,
			jersey_number = $2,
			position = $3,
			bio = $4,
			is_captain = $5,
			is_vice_captain = $6,
			date_joined = $7,
			is_active = $8
		WHERE id = $9`

	result, err := r.db.ExecContext(ctx, query,
		player.Name,
		player.JerseyNumber,
		player.Position,
		player.Bio,
		player.IsCaptain,
		player.IsViceCaptain,
		player.DateJoined,
		player.IsActive,
		player.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "players_jersey_number_key" {
			return ErrPlayerNumberConflict
		}
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdatePhotoKey(ctx context.Context, id int, key *string) error {
	query := `UPDATE players SET photo_key = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, key, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM players WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM players`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count players: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var player models.Player
	err := row.Scan(
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
	)
	if err != nil {
		return nil, err
	}
	return &player, nil
}
