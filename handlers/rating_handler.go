package handlers

import (
	"log/slog"
	"net/http"

	"github.com/galacticos-fc/clubsite/middleware"
	"github.com/galacticos-fc/clubsite/services"
)

type RatingHandler struct {
	accessService services.AccessService
	ratingService services.RatingService
}

func NewRatingHandler(accessService services.AccessService, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		accessService: accessService,
		ratingService: ratingService,
	}
}

// checkAccess runs the gate and writes the rejection when the verdict is
// anything but granted. Returns true when the request may proceed.
func (h *RatingHandler) checkAccess(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID := middleware.OptionalUserID(r.Context())

	decision, _, err := h.accessService.CheckRatingAccess(r.Context(), userID)
	if err != nil {
		slog.Error("rating access check failed", "error", err, "user_id", userID)
	}

	switch decision {
	case services.AccessGranted:
		return userID, true
	case services.AccessRedirectToLogin:
		unauthorizedResponse(w, r, services.ErrAuthenticationRequired.Error())
	case services.AccessAuthorizationRequired:
		forbiddenResponse(w, r, "authorization_required", services.ErrAuthorizationRequired.Error())
	default:
		forbiddenResponse(w, r, "access_denied", services.ErrAccessDenied.Error())
	}
	return 0, false
}

// CheckAccess exposes the gate verdict itself; the client uses it to decide
// which screen to render before loading any rating data.
func (h *RatingHandler) CheckAccess(w http.ResponseWriter, r *http.Request) {
	userID := middleware.OptionalUserID(r.Context())

	decision, user, err := h.accessService.CheckRatingAccess(r.Context(), userID)
	if err != nil {
		slog.Error("rating access check failed", "error", err, "user_id", userID)
	}

	response := jsonResponse{}
	switch decision {
	case services.AccessGranted:
		response["access"] = "granted"
		response["user"] = user
	case services.AccessRedirectToLogin:
		response["access"] = "redirect_to_login"
	case services.AccessAuthorizationRequired:
		response["access"] = "authorization_required"
	default:
		response["access"] = "denied"
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RatingHandler) ListRatableMatches(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.checkAccess(w, r); !ok {
		return
	}

	matches, err := h.ratingService.ListRatableMatches(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RatingHandler) GetMatchRatingContext(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.checkAccess(w, r)
	if !ok {
		return
	}

	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	ratingCtx, err := h.ratingService.GetMatchRatingContext(r.Context(), matchID, userID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, ratingCtx, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *RatingHandler) SubmitRatings(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.checkAccess(w, r)
	if !ok {
		return
	}

	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.SubmitRatingsInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.MatchID = matchID
	input.RaterID = userID

	result, err := h.ratingService.SubmitRatings(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, result, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
