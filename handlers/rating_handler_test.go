package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/services"
	"github.com/go-chi/chi/v5"
)

type stubAccessService struct {
	decision services.AccessDecision
	user     *models.User
}

func (s *stubAccessService) CheckRatingAccess(ctx context.Context, userID int) (services.AccessDecision, *models.User, error) {
	return s.decision, s.user, nil
}

func (s *stubAccessService) CheckAdminAccess(ctx context.Context, userID int) (services.AccessDecision, *models.User, error) {
	return s.decision, s.user, nil
}

type stubRatingService struct {
	matches []models.Match
	result  *services.SubmitRatingsResult
	err     error
}

func (s *stubRatingService) ListRatableMatches(ctx context.Context) ([]models.Match, error) {
	return s.matches, s.err
}

func (s *stubRatingService) GetMatchRatingContext(ctx context.Context, matchID, raterID int) (*services.MatchRatingContext, error) {
	return nil, s.err
}

func (s *stubRatingService) SubmitRatings(ctx context.Context, input services.SubmitRatingsInput) (*services.SubmitRatingsResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestListRatableMatchesGateRejections(t *testing.T) {
	cases := []struct {
		name       string
		decision   services.AccessDecision
		wantStatus int
		wantCode   string
	}{
		{"anonymous", services.AccessRedirectToLogin, http.StatusUnauthorized, ""},
		{"wrong role", services.AccessDenied, http.StatusForbidden, "access_denied"},
		{"pending authorization", services.AccessAuthorizationRequired, http.StatusForbidden, "authorization_required"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewRatingHandler(&stubAccessService{decision: tc.decision}, &stubRatingService{})

			req := httptest.NewRequest(http.MethodGet, "/ratings/matches", nil)
			rec := httptest.NewRecorder()
			h.ListRatableMatches(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
			if tc.wantCode != "" {
				var body struct {
					Code string `json:"code"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("decode body: %v", err)
				}
				if body.Code != tc.wantCode {
					t.Fatalf("expected code %q, got %q", tc.wantCode, body.Code)
				}
			}
		})
	}
}

func TestListRatableMatchesGranted(t *testing.T) {
	h := NewRatingHandler(
		&stubAccessService{decision: services.AccessGranted, user: &models.User{ID: 1}},
		&stubRatingService{matches: []models.Match{{ID: 1}, {ID: 2}}},
	)

	req := httptest.NewRequest(http.MethodGet, "/ratings/matches", nil)
	rec := httptest.NewRecorder()
	h.ListRatableMatches(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Matches []models.Match `json:"matches"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(body.Matches))
	}
}

func TestSubmitRatingsEmptySubmissionIs400(t *testing.T) {
	h := NewRatingHandler(
		&stubAccessService{decision: services.AccessGranted, user: &models.User{ID: 1}},
		&stubRatingService{err: services.ErrNoRatingsTouched},
	)

	router := chi.NewRouter()
	router.Post("/ratings/matches/{matchID}", h.SubmitRatings)

	body := `{"match_id": 3, "scores": [{"player_id": 10, "score": 0}]}`
	req := httptest.NewRequest(http.MethodPost, "/ratings/matches/3", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "rate at least one player") {
		t.Fatalf("expected validation message, got %s", rec.Body.String())
	}
}

func TestCheckAccessVerdicts(t *testing.T) {
	cases := []struct {
		decision services.AccessDecision
		want     string
	}{
		{services.AccessGranted, "granted"},
		{services.AccessRedirectToLogin, "redirect_to_login"},
		{services.AccessAuthorizationRequired, "authorization_required"},
		{services.AccessDenied, "denied"},
	}

	for _, tc := range cases {
		h := NewRatingHandler(&stubAccessService{decision: tc.decision, user: &models.User{ID: 1}}, &stubRatingService{})

		req := httptest.NewRequest(http.MethodGet, "/ratings/access", nil)
		rec := httptest.NewRecorder()
		h.CheckAccess(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("verdict endpoint must answer 200, got %d", rec.Code)
		}
		var body struct {
			Access string `json:"access"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Access != tc.want {
			t.Fatalf("expected access %q, got %q", tc.want, body.Access)
		}
	}
}
