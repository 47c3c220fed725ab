package services

import (
	"context"
	"errors"
	"testing"

	"github.com/galacticos-fc/clubsite/models"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterPasswordMismatchBeforeStore(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName:        "Jamie Vardy",
		Email:           "jamie@example.com",
		Password:        "password123",
		ConfirmPassword: "password124",
		Role:            "fan",
	})
	if !errors.Is(err, ErrPasswordsDoNotMatch) {
		t.Fatalf("expected ErrPasswordsDoNotMatch, got %v", err)
	}
	if repo.createCalls != 0 {
		t.Fatalf("mismatched passwords must not reach the store")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:           "a@example.com",
		Password:        "short",
		ConfirmPassword: "short",
		Role:            "fan",
	})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc := NewAuthService(&fakeUserRepo{})

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:           "a@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "admin",
	})
	if !errors.Is(err, ErrRoleNotSelfAssign) {
		t.Fatalf("expected ErrRoleNotSelfAssign, got %v", err)
	}
}

func TestRegisterNormalizesAndStartsUnauthorized(t *testing.T) {
	var created *models.User
	repo := &fakeUserRepo{
		createFn: func(ctx context.Context, user *models.User) error {
			user.ID = 1
			created = user
			return nil
		},
	}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		FullName:        "  Jamie Vardy ",
		Email:           " Jamie@Example.COM ",
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            "player",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if created.Email != "jamie@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.FullName != "Jamie Vardy" {
		t.Fatalf("expected trimmed name, got %q", created.FullName)
	}
	if created.AuthorizedForRatings {
		t.Fatalf("new accounts must not start with rating authorization")
	}
	if created.PasswordHash == "password123" || created.PasswordHash == "" {
		t.Fatalf("password must be stored hashed")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	svc := NewAuthService(repo)

	_, err = svc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "wrong"})
	if !errors.Is(err, ErrAuthInvalidCredentials) {
		t.Fatalf("expected ErrAuthInvalidCredentials, got %v", err)
	}
}

func TestLoginStripsPasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	repo := &fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: 1, Email: email, PasswordHash: string(hash), Role: models.RoleFan}, nil
		},
	}
	svc := NewAuthService(repo)

	user, err := svc.Login(context.Background(), LoginInput{Email: "a@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.PasswordHash != "" {
		t.Fatalf("password hash must not leave the service")
	}
}
