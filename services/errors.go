package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business rules
	ErrValidationFailed     = errors.New("validation failed")
	ErrPasswordTooShort     = errors.New("password must be at least 8 characters")
	ErrPasswordsDoNotMatch  = errors.New("passwords do not match")
	ErrInvalidRole          = errors.New("invalid role")
	ErrRoleNotSelfAssign    = errors.New("admin role cannot be requested at registration")
	ErrPlayerNameRequired   = errors.New("player name is required")
	ErrJerseyNumberInvalid  = errors.New("jersey number must be between 1 and 99")
	ErrPositionInvalid      = errors.New("unknown player position")
	ErrMatchStatusInvalid   = errors.New("invalid match status provided")
	ErrMatchDateRequired    = errors.New("match date is required")
	ErrTitleRequired        = errors.New("title is required")
	ErrContentRequired      = errors.New("content is required")
	ErrClubNameRequired     = errors.New("club name is required")
	ErrContactBodyRequired  = errors.New("message body is required")
	ErrContactEmailRequired = errors.New("sender email is required")

	// Rating submission
	ErrNoRatingsTouched  = errors.New("rate at least one player")
	ErrScoreOutOfRange   = errors.New("rating score must be between 1 and 10")
	ErrMatchNotRatable   = errors.New("only finished matches can be rated")
	ErrPlayerNotInLineup = errors.New("rated player is not in the match lineup")

	// Conflicts
	ErrUserEmailConflict    = errors.New("email address is already in use")
	ErrJerseyNumberConflict = errors.New("jersey number is already taken")
	ErrTeamNameConflict     = errors.New("team name is already in use")
	ErrLineupConflict       = errors.New("player is already in the match lineup")

	// Authentication and authorization
	ErrAuthInvalidCredentials = errors.New("invalid email or password")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAccessDenied           = errors.New("access denied")
	ErrAuthorizationRequired  = errors.New("authorization required")
	ErrForbiddenOperation     = errors.New("operation not allowed for the current user")

	// Entity-specific not-found (more context than ErrNotFound)
	ErrUserNotFound        = errors.New("user not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrTeamNotFound        = errors.New("team not found")
	ErrMatchNotFound       = errors.New("match not found")
	ErrArticleNotFound     = errors.New("news article not found")
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrSettingsNotFound    = errors.New("club settings not configured")

	ErrTeamInUse = errors.New("team cannot be deleted while matches reference it")
)
