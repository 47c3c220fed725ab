package services

import (
	"context"
	"errors"
	"io"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/storage"
)

// Fake repositories with pluggable behavior. Unset methods fail loudly so a
// test cannot silently depend on a call it did not declare.

var errUnexpectedCall = errors.New("unexpected repository call")

type fakeUserRepo struct {
	createFn     func(ctx context.Context, user *models.User) error
	getByIDFn    func(ctx context.Context, id int) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)

	createCalls int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.createCalls++
	if f.createFn == nil {
		return errUnexpectedCall
	}
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.getByEmailFn == nil {
		return nil, errUnexpectedCall
	}
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.User, error) {
	return nil, errUnexpectedCall
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id int, role models.UserRole) error {
	return errUnexpectedCall
}

func (f *fakeUserRepo) UpdateRatingAuthorization(ctx context.Context, id int, authorized bool) error {
	return errUnexpectedCall
}

func (f *fakeUserRepo) CountByRoleAndAuthorization(ctx context.Context, role models.UserRole, authorized bool) (int, error) {
	return 0, errUnexpectedCall
}

func (f *fakeUserRepo) Delete(ctx context.Context, id int) error {
	return errUnexpectedCall
}

type fakeMatchRepo struct {
	getByIDFn func(ctx context.Context, id int) (*models.Match, error)
	listFn    func(ctx context.Context, status models.MatchStatus, limit int) ([]models.Match, error)
}

func (f *fakeMatchRepo) Create(ctx context.Context, match *models.Match) error {
	return errUnexpectedCall
}

func (f *fakeMatchRepo) GetByID(ctx context.Context, id int) (*models.Match, error) {
	if f.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeMatchRepo) List(ctx context.Context, status models.MatchStatus, limit int) ([]models.Match, error) {
	if f.listFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listFn(ctx, status, limit)
}

func (f *fakeMatchRepo) Update(ctx context.Context, match *models.Match) error {
	return errUnexpectedCall
}

func (f *fakeMatchRepo) Delete(ctx context.Context, id int) error {
	return errUnexpectedCall
}

func (f *fakeMatchRepo) Count(ctx context.Context, status models.MatchStatus) (int, error) {
	return 0, errUnexpectedCall
}

type fakeLineupRepo struct {
	listByMatchFn func(ctx context.Context, matchID int) ([]models.LineupEntry, error)
}

func (f *fakeLineupRepo) Add(ctx context.Context, entry *models.LineupEntry) error {
	return errUnexpectedCall
}

func (f *fakeLineupRepo) Remove(ctx context.Context, matchID, playerID int) error {
	return errUnexpectedCall
}

func (f *fakeLineupRepo) ListByMatch(ctx context.Context, matchID int) ([]models.LineupEntry, error) {
	if f.listByMatchFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listByMatchFn(ctx, matchID)
}

type fakeRatingRepo struct {
	upsertBatchFn        func(ctx context.Context, ratings []models.Rating) error
	listPlayerIDsRatedFn func(ctx context.Context, matchID, raterID int) ([]int, error)
	averageByPlayerFn    func(ctx context.Context) (map[int]float64, error)
	motmCountByPlayerFn  func(ctx context.Context) (map[int]int, error)

	upsertCalls int
}

func (f *fakeRatingRepo) UpsertBatch(ctx context.Context, ratings []models.Rating) error {
	f.upsertCalls++
	if f.upsertBatchFn == nil {
		return errUnexpectedCall
	}
	return f.upsertBatchFn(ctx, ratings)
}

func (f *fakeRatingRepo) ListPlayerIDsRated(ctx context.Context, matchID, raterID int) ([]int, error) {
	if f.listPlayerIDsRatedFn == nil {
		return nil, errUnexpectedCall
	}
	return f.listPlayerIDsRatedFn(ctx, matchID, raterID)
}

func (f *fakeRatingRepo) ListByMatchAndPlayer(ctx context.Context, matchID, playerID int) ([]models.Rating, error) {
	return nil, errUnexpectedCall
}

func (f *fakeRatingRepo) AverageByPlayer(ctx context.Context) (map[int]float64, error) {
	if f.averageByPlayerFn == nil {
		return nil, errUnexpectedCall
	}
	return f.averageByPlayerFn(ctx)
}

func (f *fakeRatingRepo) MOTMCountByPlayer(ctx context.Context) (map[int]int, error) {
	if f.motmCountByPlayerFn == nil {
		return nil, errUnexpectedCall
	}
	return f.motmCountByPlayerFn(ctx)
}

type fakeNewsRepo struct {
	createFn  func(ctx context.Context, article *models.NewsArticle) error
	getByIDFn func(ctx context.Context, id int) (*models.NewsArticle, error)
	updateFn  func(ctx context.Context, article *models.NewsArticle) error
}

func (f *fakeNewsRepo) Create(ctx context.Context, article *models.NewsArticle) error {
	if f.createFn == nil {
		return errUnexpectedCall
	}
	return f.createFn(ctx, article)
}

func (f *fakeNewsRepo) GetByID(ctx context.Context, id int) (*models.NewsArticle, error) {
	if f.getByIDFn == nil {
		return nil, errUnexpectedCall
	}
	return f.getByIDFn(ctx, id)
}

func (f *fakeNewsRepo) ListAll(ctx context.Context) ([]models.NewsArticle, error) {
	return nil, errUnexpectedCall
}

func (f *fakeNewsRepo) ListPublished(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	return nil, errUnexpectedCall
}

func (f *fakeNewsRepo) Update(ctx context.Context, article *models.NewsArticle) error {
	if f.updateFn == nil {
		return errUnexpectedCall
	}
	return f.updateFn(ctx, article)
}

func (f *fakeNewsRepo) Delete(ctx context.Context, id int) error {
	return errUnexpectedCall
}

func (f *fakeNewsRepo) CountPublished(ctx context.Context) (int, error) {
	return 0, errUnexpectedCall
}

type fakeUploader struct{}

func (f *fakeUploader) Upload(ctx context.Context, key, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	return &storage.UploadResult{Key: key}, nil
}

func (f *fakeUploader) Delete(ctx context.Context, key string) error {
	return nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}
