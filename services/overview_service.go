package services

import (
	"context"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
	"golang.org/x/sync/errgroup"
)

// Overview bundles what the home page shows in a single response.
type Overview struct {
	LatestResults   []models.Match       `json:"latest_results"`
	UpcomingMatches []models.Match       `json:"upcoming_matches"`
	LatestNews      []models.NewsArticle `json:"latest_news"`
	FeaturedGallery []models.GalleryItem `json:"featured_gallery"`
}

type OverviewService interface {
	GetOverview(ctx context.Context) (*Overview, error)
	GetDashboardStats(ctx context.Context) (models.DashboardStats, error)
}

type overviewService struct {
	matchRepo   repositories.MatchRepository
	newsService NewsService
	gallerySvc  GalleryService
	playerRepo  repositories.PlayerRepository
	newsRepo    repositories.NewsRepository
	galleryRepo repositories.GalleryRepository
	userRepo    repositories.UserRepository
}

func NewOverviewService(
	matchRepo repositories.MatchRepository,
	newsService NewsService,
	gallerySvc GalleryService,
	playerRepo repositories.PlayerRepository,
	newsRepo repositories.NewsRepository,
	galleryRepo repositories.GalleryRepository,
	userRepo repositories.UserRepository,
) OverviewService {
	return &overviewService{
		matchRepo:   matchRepo,
		newsService: newsService,
		gallerySvc:  gallerySvc,
		playerRepo:  playerRepo,
		newsRepo:    newsRepo,
		galleryRepo: galleryRepo,
		userRepo:    userRepo,
	}
}

// GetOverview fans the four independent reads out concurrently; the first
// failure cancels the rest.
func (s *overviewService) GetOverview(ctx context.Context) (*Overview, error) {
	var overview Overview
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		results, err := s.matchRepo.List(gCtx, models.StatusFinished, 5)
		if err != nil {
			return fmt.Errorf("latest results: %w", err)
		}
		overview.LatestResults = results
		return nil
	})
	g.Go(func() error {
		upcoming, err := s.matchRepo.List(gCtx, models.StatusScheduled, 5)
		if err != nil {
			return fmt.Errorf("upcoming matches: %w", err)
		}
		overview.UpcomingMatches = upcoming
		return nil
	})
	g.Go(func() error {
		news, err := s.newsService.ListPublishedArticles(gCtx, 3)
		if err != nil {
			return fmt.Errorf("latest news: %w", err)
		}
		overview.LatestNews = news
		return nil
	})
	g.Go(func() error {
		gallery, err := s.gallerySvc.ListItems(gCtx, "", true)
		if err != nil {
			return fmt.Errorf("featured gallery: %w", err)
		}
		overview.FeaturedGallery = gallery
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (s *overviewService) GetDashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.playerRepo.Count(gCtx)
		stats.PlayersTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.matchRepo.Count(gCtx, "")
		stats.MatchesTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.matchRepo.Count(gCtx, models.StatusFinished)
		stats.FinishedMatches = n
		return err
	})
	g.Go(func() error {
		n, err := s.newsRepo.CountPublished(gCtx)
		stats.PublishedArticles = n
		return err
	})
	g.Go(func() error {
		n, err := s.galleryRepo.Count(gCtx)
		stats.GalleryItemsTotal = n
		return err
	})
	g.Go(func() error {
		n, err := s.userRepo.CountByRoleAndAuthorization(gCtx, models.RolePlayer, false)
		stats.PendingRatingRequests = n
		return err
	})

	if err := g.Wait(); err != nil {
		return models.DashboardStats{}, fmt.Errorf("failed to collect dashboard stats: %w", err)
	}
	return stats, nil
}
