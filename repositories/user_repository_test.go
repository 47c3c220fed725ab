package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/galacticos-fc/clubsite/models"
	"github.com/lib/pq"
)

func TestUserCreateMapsEmailConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)INSERT INTO users.*RETURNING id, created_at`).
		WithArgs("Jamie Vardy", "jamie@example.com", "hash", models.RoleFan, false).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	repo := NewPostgresUserRepository(db)
	err = repo.Create(context.Background(), &models.User{
		FullName:     "Jamie Vardy",
		Email:        "jamie@example.com",
		PasswordHash: "hash",
		Role:         models.RoleFan,
	})
	if err != ErrUserEmailConflict {
		t.Fatalf("expected ErrUserEmailConflict, got %v", err)
	}
}

func TestUserCreateReturnsGeneratedFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	createdAt := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "created_at"}).AddRow(7, createdAt)
	mock.ExpectQuery(`(?s)INSERT INTO users.*RETURNING id, created_at`).
		WithArgs("Jamie Vardy", "jamie@example.com", "hash", models.RolePlayer, false).
		WillReturnRows(rows)

	repo := NewPostgresUserRepository(db)
	user := &models.User{
		FullName:     "Jamie Vardy",
		Email:        "jamie@example.com",
		PasswordHash: "hash",
		Role:         models.RolePlayer,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID != 7 {
		t.Fatalf("expected generated id 7, got %d", user.ID)
	}
	if !user.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created_at %v, got %v", createdAt, user.CreatedAt)
	}
}
