package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
)

var ErrSettingsNotFound = errors.New("club settings not configured")

// settingsRowID pins the singleton row. Every write upserts against it.
const settingsRowID = 1

type SettingsRepository interface {
	Get(ctx context.Context) (*models.ClubSettings, error)
	// Upsert inserts the singleton row or updates it in place.
	Upsert(ctx context.Context, settings *models.ClubSettings) error
}

type postgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) SettingsRepository {
	return &postgresSettingsRepository{db: db}
}

func (r *postgresSettingsRepository) Get(ctx context.Context) (*models.ClubSettings, error) {
	query := `
		SELECT id, club_name, club_logo_key, club_slogan, founded_year, home_ground, club_colors,
		       about_text, contact_email, social_facebook, social_instagram, social_twitter,
		       social_youtube, social_tiktok
		FROM club_settings
		WHERE id = $1`

	var s models.ClubSettings
	err := r.db.QueryRowContext(ctx, query, settingsRowID).Scan(
		&s.ID,
		&s.ClubName,
		&s.ClubLogoKey,
		&s.ClubSlogan,
		&s.FoundedYear,
		&s.HomeGround,
		&s.ClubColors,
		&s.AboutText,
		&s.ContactEmail,
		&s.SocialFacebook,
		&s.SocialInstagram,
		&s.SocialTwitter,
		&s.SocialYoutube,
		&s.SocialTiktok,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get club settings: %w", err)
	}
	return &s, nil
}

func (r *postgresSettingsRepository) Upsert(ctx context.Context, settings *models.ClubSettings) error {
	query := `
		INSERT INTO club_settings (
			id, club_name, club_logo_key, club_slogan, founded_year, home_ground, club_colors,
			about_text, contact_email, social_facebook, social_instagram, social_twitter,
			social_youtube, social_tiktok
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			club_name = EXCLUDED.club_name,
			club_logo_key = EXCLUDED.club_logo_key,
			club_slogan = EXCLUDED.club_slogan,
			founded_year = EXCLUDED.founded_year,
			home_ground = EXCLUDED.home_ground,
			club_colors = EXCLUDED.club_colors,
			about_text = EXCLUDED.about_text,
			contact_email = EXCLUDED.contact_email,
			social_facebook = EXCLUDED.social_facebook,
			social_instagram = EXCLUDED.social_instagram,
			social_twitter = EXCLUDED.social_twitter,
			social_youtube = EXCLUDED.social_youtube,
			social_tiktok = EXCLUDED.social_tiktok`

	_, err := r.db.ExecContext(ctx, query,
		settingsRowID,
		settings.ClubName,
		settings.ClubLogoKey,
		settings.ClubSlogan,
		settings.FoundedYear,
		settings.HomeGround,
		settings.ClubColors,
		settings.AboutText,
		settings.ContactEmail,
		settings.SocialFacebook,
		settings.SocialInstagram,
		settings.SocialTwitter,
		settings.SocialYoutube,
		settings.SocialTiktok,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert club settings: %w", err)
	}
	settings.ID = settingsRowID
	return nil
}
