package services

import (
	"context"
	"errors"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
)

// AccessDecision is the gate's verdict for a protected page.
type AccessDecision int

const (
	// AccessGranted admits the request.
	AccessGranted AccessDecision = iota
	// AccessRedirectToLogin means no usable session; the client should send
	// the user to the login page without rendering anything.
	AccessRedirectToLogin
	// AccessDenied means the session's role can never hold the capability.
	AccessDenied
	// AccessAuthorizationRequired means the role is right but the admin has
	// not flipped the rating flag yet; the user should be pointed at the
	// contact page, not told their role is wrong.
	AccessAuthorizationRequired
)

// AccessService resolves a user's profile and decides admission to the
// rating and admin surfaces. Decisions are read-only; any store failure
// during role resolution denies (fail closed).
type AccessService interface {
	CheckRatingAccess(ctx context.Context, userID int) (AccessDecision, *models.User, error)
	CheckAdminAccess(ctx context.Context, userID int) (AccessDecision, *models.User, error)
}

type accessService struct {
	userRepo repositories.UserRepository
}

func NewAccessService(userRepo repositories.UserRepository) AccessService {
	return &accessService{userRepo: userRepo}
}

// CheckRatingAccess admits admins unconditionally and players carrying the
// rating authorization flag. Fans and staff are denied outright; an
// unauthorized player gets the distinct "authorization required" verdict.
func (s *accessService) CheckRatingAccess(ctx context.Context, userID int) (AccessDecision, *models.User, error) {
	if userID <= 0 {
		return AccessRedirectToLogin, nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		// Missing profile and store failure both deny; the store error is
		// reported so the handler can log it.
		if errors.Is(err, repositories.ErrUserNotFound) {
			return AccessDenied, nil, nil
		}
		return AccessDenied, nil, err
	}

	switch user.Role {
	case models.RoleAdmin:
		return AccessGranted, user, nil
	case models.RolePlayer:
		if user.AuthorizedForRatings {
			return AccessGranted, user, nil
		}
		return AccessAuthorizationRequired, user, nil
	case models.RoleFan, models.RoleStaff:
		return AccessDenied, user, nil
	default:
		return AccessDenied, user, nil
	}
}

// CheckAdminAccess treats anything but a resolvable admin profile as
// unauthenticated, so the response never confirms the admin area exists.
func (s *accessService) CheckAdminAccess(ctx context.Context, userID int) (AccessDecision, *models.User, error) {
	if userID <= 0 {
		return AccessRedirectToLogin, nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return AccessRedirectToLogin, nil, nil
		}
		return AccessRedirectToLogin, nil, err
	}

	if user.Role != models.RoleAdmin {
		return AccessRedirectToLogin, user, nil
	}
	return AccessGranted, user, nil
}
