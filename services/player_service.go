package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
	"github.com/galacticos-fc/clubsite/storage"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error)
	GetPlayerByID(ctx context.Context, id int) (*models.Player, error)
	ListPlayers(ctx context.Context, activeOnly bool) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int) error
	UploadPlayerPhoto(ctx context.Context, id int, file io.Reader, filename, contentType string) (*models.Player, error)
}

type PlayerInput struct {
	Name          string  `json:"name"`
	JerseyNumber  int     `json:"jersey_number"`
	Position      string  `json:"position"`
	Bio           string  `json:"bio"`
	IsCaptain     bool    `json:"is_captain"`
	IsViceCaptain bool    `json:"is_vice_captain"`
	DateJoined    *string `json:"date_joined"`
	IsActive      bool    `json:"is_active"`
}

type playerService struct {
	playerRepo repositories.PlayerRepository
	uploader   storage.FileUploader
}

func NewPlayerService(playerRepo repositories.PlayerRepository, uploader storage.FileUploader) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
		uploader:   uploader,
	}
}

func (s *playerService) validate(input PlayerInput) (*models.Player, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrPlayerNameRequired
	}
	if input.JerseyNumber < 1 || input.JerseyNumber > 99 {
		return nil, ErrJerseyNumberInvalid
	}
	if !models.IsValidPosition(input.Position) {
		return nil, ErrPositionInvalid
	}

	player := &models.Player{
		Name:          name,
		JerseyNumber:  input.JerseyNumber,
		Position:      input.Position,
		Bio:           input.Bio,
		IsCaptain:     input.IsCaptain,
		IsViceCaptain: input.IsViceCaptain,
		IsActive:      input.IsActive,
	}
	if input.DateJoined != nil && *input.DateJoined != "" {
		joined, err := parseDate(*input.DateJoined)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date_joined", ErrValidationFailed)
		}
		player.DateJoined = &joined
	}
	return player, nil
}

func (s *playerService) CreatePlayer(ctx context.Context, input PlayerInput) (*models.Player, error) {
	player, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	if err := s.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repositories.ErrPlayerNumberConflict) {
			return nil, ErrJerseyNumberConflict
		}
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	s.attachPhotoURL(player)
	return player, nil
}

func (s *playerService) GetPlayerByID(ctx context.Context, id int) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player %d: %w", id, err)
	}
	s.attachPhotoURL(player)
	return player, nil
}

func (s *playerService) ListPlayers(ctx context.Context, activeOnly bool) ([]models.Player, error) {
	players, err := s.playerRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	for i := range players {
		s.attachPhotoURL(&players[i])
	}
	return players, nil
}

func (s *playerService) UpdatePlayer(ctx context.Context, id int, input PlayerInput) (*models.Player, error) {
	player, err := s.validate(input)
	if err != nil {
		return nil, err
	}
	player.ID = id

	if err := s.playerRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerNotFound):
			return nil, ErrPlayerNotFound
		case errors.Is(err, repositories.ErrPlayerNumberConflict):
			return nil, ErrJerseyNumberConflict
		default:
			return nil, fmt.Errorf("failed to update player %d: %w", id, err)
		}
	}
	return s.GetPlayerByID(ctx, id)
}

func (s *playerService) DeletePlayer(ctx context.Context, id int) error {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to load player %d before delete: %w", id, err)
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to delete player %d: %w", id, err)
	}

	if player.PhotoKey != nil {
		// Best effort; a dangling object is not worth failing the delete.
		_ = s.uploader.Delete(ctx, *player.PhotoKey)
	}
	return nil
}

func (s *playerService) UploadPlayerPhoto(ctx context.Context, id int, file io.Reader, filename, contentType string) (*models.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player %d for photo upload: %w", id, err)
	}

	key := storage.NewObjectKey("players", filename)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload player photo: %w", err)
	}

	oldKey := player.PhotoKey
	if err := s.playerRepo.UpdatePhotoKey(ctx, id, &key); err != nil {
		_ = s.uploader.Delete(ctx, key)
		return nil, fmt.Errorf("failed to store player photo key: %w", err)
	}
	if oldKey != nil {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	player.PhotoKey = &key
	s.attachPhotoURL(player)
	return player, nil
}

func (s *playerService) attachPhotoURL(player *models.Player) {
	if player.PhotoKey != nil {
		player.PhotoURL = s.uploader.GetPublicURL(*player.PhotoKey)
	}
}
