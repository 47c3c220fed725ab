package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/galacticos-fc/clubsite/models"
)

func TestSettingsGetNotConfigured(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)SELECT id, club_name, club_logo_key.*FROM club_settings.*WHERE id = \$1`).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	repo := NewPostgresSettingsRepository(db)
	_, err = repo.Get(context.Background())
	if err != ErrSettingsNotFound {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}
}

func TestSettingsUpsertPinsSingletonRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`(?s)INSERT INTO club_settings.*ON CONFLICT \(id\) DO UPDATE SET.*club_name = EXCLUDED.club_name`).
		WithArgs(
			1, "Galacticos FC", nil, "More than a club", nil, "", "",
			"", "", "", "", "", "", "",
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresSettingsRepository(db)
	settings := &models.ClubSettings{
		ClubName:   "Galacticos FC",
		ClubSlogan: "More than a club",
	}
	if err := repo.Upsert(context.Background(), settings); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if settings.ID != 1 {
		t.Fatalf("upsert must pin the singleton id, got %d", settings.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
