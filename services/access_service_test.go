package services

import (
	"context"
	"errors"
	"testing"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
)

func TestCheckRatingAccessAnonymous(t *testing.T) {
	svc := NewAccessService(&fakeUserRepo{})

	decision, user, err := svc.CheckRatingAccess(context.Background(), 0)
	if err != nil {
		t.Fatalf("CheckRatingAccess: %v", err)
	}
	if decision != AccessRedirectToLogin {
		t.Fatalf("expected redirect to login, got %v", decision)
	}
	if user != nil {
		t.Fatalf("expected no user for anonymous caller, got %+v", user)
	}
}

func TestCheckRatingAccessByRole(t *testing.T) {
	tests := []struct {
		name       string
		role       models.UserRole
		authorized bool
		want       AccessDecision
	}{
		{"admin always granted", models.RoleAdmin, false, AccessGranted},
		{"authorized player granted", models.RolePlayer, true, AccessGranted},
		{"unauthorized player pending", models.RolePlayer, false, AccessAuthorizationRequired},
		{"fan denied", models.RoleFan, true, AccessDenied},
		{"staff denied", models.RoleStaff, true, AccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUserRepo{
				getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
					return &models.User{ID: id, Role: tt.role, AuthorizedForRatings: tt.authorized}, nil
				},
			}
			svc := NewAccessService(repo)

			decision, user, err := svc.CheckRatingAccess(context.Background(), 7)
			if err != nil {
				t.Fatalf("CheckRatingAccess: %v", err)
			}
			if decision != tt.want {
				t.Fatalf("expected decision %v, got %v", tt.want, decision)
			}
			if user == nil {
				t.Fatalf("expected resolved user")
			}
		})
	}
}

func TestCheckRatingAccessMissingProfileDenies(t *testing.T) {
	repo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return nil, repositories.ErrUserNotFound
		},
	}
	svc := NewAccessService(repo)

	decision, _, err := svc.CheckRatingAccess(context.Background(), 7)
	if err != nil {
		t.Fatalf("missing profile should not surface an error, got %v", err)
	}
	if decision != AccessDenied {
		t.Fatalf("expected denied for missing profile, got %v", decision)
	}
}

func TestCheckRatingAccessStoreFailureFailsClosed(t *testing.T) {
	storeErr := errors.New("connection reset")
	repo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return nil, storeErr
		},
	}
	svc := NewAccessService(repo)

	decision, _, err := svc.CheckRatingAccess(context.Background(), 7)
	if decision != AccessDenied {
		t.Fatalf("expected denied on store failure, got %v", decision)
	}
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to be reported for logging, got %v", err)
	}
}

func TestCheckAdminAccessNonAdminLooksUnauthenticated(t *testing.T) {
	// Every non-admin outcome must be indistinguishable from a missing
	// session, including store failures and deleted accounts.
	cases := []struct {
		name string
		fn   func(ctx context.Context, id int) (*models.User, error)
	}{
		{"player", func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Role: models.RolePlayer}, nil
		}},
		{"fan", func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleFan}, nil
		}},
		{"deleted account", func(ctx context.Context, id int) (*models.User, error) {
			return nil, repositories.ErrUserNotFound
		}},
		{"store failure", func(ctx context.Context, id int) (*models.User, error) {
			return nil, errors.New("timeout")
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewAccessService(&fakeUserRepo{getByIDFn: tc.fn})
			decision, _, _ := svc.CheckAdminAccess(context.Background(), 3)
			if decision != AccessRedirectToLogin {
				t.Fatalf("expected redirect to login, got %v", decision)
			}
		})
	}
}

func TestCheckAdminAccessAdminGranted(t *testing.T) {
	repo := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id int) (*models.User, error) {
			return &models.User{ID: id, Role: models.RoleAdmin}, nil
		},
	}
	svc := NewAccessService(repo)

	decision, user, err := svc.CheckAdminAccess(context.Background(), 1)
	if err != nil {
		t.Fatalf("CheckAdminAccess: %v", err)
	}
	if decision != AccessGranted {
		t.Fatalf("expected granted, got %v", decision)
	}
	if user == nil || user.Role != models.RoleAdmin {
		t.Fatalf("expected admin user, got %+v", user)
	}
}
