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

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.ClubSettings, error)
	// SaveSettings writes the singleton row: insert on first save, update
	// afterwards, in one upsert.
	SaveSettings(ctx context.Context, input SettingsInput) (*models.ClubSettings, error)
	UploadClubLogo(ctx context.Context, file io.Reader, filename, contentType string) (*models.ClubSettings, error)
}

type SettingsInput struct {
	ClubName        string `json:"club_name"`
	ClubSlogan      string `json:"club_slogan"`
	FoundedYear     *int   `json:"founded_year"`
	HomeGround      string `json:"home_ground"`
	ClubColors      string `json:"club_colors"`
	AboutText       string `json:"about_text"`
	ContactEmail    string `json:"contact_email"`
	SocialFacebook  string `json:"social_facebook"`
	SocialInstagram string `json:"social_instagram"`
	SocialTwitter   string `json:"social_twitter"`
	SocialYoutube   string `json:"social_youtube"`
	SocialTiktok    string `json:"social_tiktok"`
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
	uploader     storage.FileUploader
}

func NewSettingsService(settingsRepo repositories.SettingsRepository, uploader storage.FileUploader) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		uploader:     uploader,
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*models.ClubSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get club settings: %w", err)
	}
	s.attachLogoURL(settings)
	return settings, nil
}

func (s *settingsService) SaveSettings(ctx context.Context, input SettingsInput) (*models.ClubSettings, error) {
	if strings.TrimSpace(input.ClubName) == "" {
		return nil, ErrClubNameRequired
	}

	// Preserve an existing logo across saves; the form never carries it.
	var logoKey *string
	if existing, err := s.settingsRepo.Get(ctx); err == nil {
		logoKey = existing.ClubLogoKey
	} else if !errors.Is(err, repositories.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to load existing settings: %w", err)
	}

	settings := &models.ClubSettings{
		ClubName:        strings.TrimSpace(input.ClubName),
		ClubLogoKey:     logoKey,
		ClubSlogan:      input.ClubSlogan,
		FoundedYear:     input.FoundedYear,
		HomeGround:      input.HomeGround,
		ClubColors:      input.ClubColors,
		AboutText:       input.AboutText,
		ContactEmail:    input.ContactEmail,
		SocialFacebook:  input.SocialFacebook,
		SocialInstagram: input.SocialInstagram,
		SocialTwitter:   input.SocialTwitter,
		SocialYoutube:   input.SocialYoutube,
		SocialTiktok:    input.SocialTiktok,
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save club settings: %w", err)
	}
	s.attachLogoURL(settings)
	return settings, nil
}

func (s *settingsService) UploadClubLogo(ctx context.Context, file io.Reader, filename, contentType string) (*models.ClubSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingsNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to load settings for logo upload: %w", err)
	}

	key := storage.NewObjectKey("club", filename)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload club logo: %w", err)
	}

	oldKey := settings.ClubLogoKey
	settings.ClubLogoKey = &key
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		_ = s.uploader.Delete(ctx, key)
		return nil, fmt.Errorf("failed to store club logo key: %w", err)
	}
	if oldKey != nil {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	s.attachLogoURL(settings)
	return settings, nil
}

func (s *settingsService) attachLogoURL(settings *models.ClubSettings) {
	if settings.ClubLogoKey != nil {
		settings.ClubLogoURL = s.uploader.GetPublicURL(*settings.ClubLogoKey)
	}
}
