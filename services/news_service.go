package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
	"github.com/galacticos-fc/clubsite/storage"
)

type NewsService interface {
	CreateArticle(ctx context.Context, authorID int, input ArticleInput) (*models.NewsArticle, error)
	GetArticleByID(ctx context.Context, id int) (*models.NewsArticle, error)
	// GetPublishedArticle is the public detail view; drafts stay invisible.
	GetPublishedArticle(ctx context.Context, id int) (*models.NewsArticle, error)
	ListAllArticles(ctx context.Context) ([]models.NewsArticle, error)
	ListPublishedArticles(ctx context.Context, limit int) ([]models.NewsArticle, error)
	UpdateArticle(ctx context.Context, id int, input ArticleInput) (*models.NewsArticle, error)
	DeleteArticle(ctx context.Context, id int) error
	UploadFeaturedImage(ctx context.Context, id int, file io.Reader, filename, contentType string) (*models.NewsArticle, error)
}

type ArticleInput struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	Excerpt     string `json:"excerpt"`
	IsPublished bool   `json:"is_published"`
}

type newsService struct {
	newsRepo repositories.NewsRepository
	uploader storage.FileUploader
	now      func() time.Time
}

func NewNewsService(newsRepo repositories.NewsRepository, uploader storage.FileUploader) NewsService {
	return &newsService{
		newsRepo: newsRepo,
		uploader: uploader,
		now:      time.Now,
	}
}

func (s *newsService) validate(input ArticleInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(input.Content) == "" {
		return ErrContentRequired
	}
	return nil
}

func (s *newsService) CreateArticle(ctx context.Context, authorID int, input ArticleInput) (*models.NewsArticle, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	article := &models.NewsArticle{
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Excerpt:     strings.TrimSpace(input.Excerpt),
		AuthorID:    authorID,
		IsPublished: input.IsPublished,
	}
	if input.IsPublished {
		now := s.now()
		article.PublishedAt = &now
	}

	if err := s.newsRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	s.attachImageURL(article)
	return article, nil
}

func (s *newsService) GetArticleByID(ctx context.Context, id int) (*models.NewsArticle, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article %d: %w", id, err)
	}
	s.attachImageURL(article)
	return article, nil
}

func (s *newsService) GetPublishedArticle(ctx context.Context, id int) (*models.NewsArticle, error) {
	article, err := s.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !article.IsPublished {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *newsService) ListAllArticles(ctx context.Context) ([]models.NewsArticle, error) {
	articles, err := s.newsRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	for i := range articles {
		s.attachImageURL(&articles[i])
	}
	return articles, nil
}

func (s *newsService) ListPublishedArticles(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	articles, err := s.newsRepo.ListPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list published articles: %w", err)
	}
	for i := range articles {
		s.attachImageURL(&articles[i])
	}
	return articles, nil
}

// UpdateArticle stamps published_at the first time an article flips to
// published; unpublishing clears it so a later re-publish gets a fresh
// timestamp.
func (s *newsService) UpdateArticle(ctx context.Context, id int, input ArticleInput) (*models.NewsArticle, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	article, err := s.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Title = strings.TrimSpace(input.Title)
	article.Content = input.Content
	article.Excerpt = strings.TrimSpace(input.Excerpt)

	switch {
	case input.IsPublished && !article.IsPublished:
		now := s.now()
		article.PublishedAt = &now
	case !input.IsPublished:
		article.PublishedAt = nil
	}
	article.IsPublished = input.IsPublished

	if err := s.newsRepo.Update(ctx, article); err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to update article %d: %w", id, err)
	}
	return article, nil
}

func (s *newsService) DeleteArticle(ctx context.Context, id int) error {
	article, err := s.GetArticleByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.newsRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrArticleNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("failed to delete article %d: %w", id, err)
	}

	if article.FeaturedImageKey != nil {
		_ = s.uploader.Delete(ctx, *article.FeaturedImageKey)
	}
	return nil
}

func (s *newsService) UploadFeaturedImage(ctx context.Context, id int, file io.Reader, filename, contentType string) (*models.NewsArticle, error) {
	article, err := s.GetArticleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := storage.NewObjectKey("news", filename)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload featured image: %w", err)
	}

	oldKey := article.FeaturedImageKey
	article.FeaturedImageKey = &key
	if err := s.newsRepo.Update(ctx, article); err != nil {
		_ = s.uploader.Delete(ctx, key)
		return nil, fmt.Errorf("failed to store featured image key: %w", err)
	}
	if oldKey != nil {
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	s.attachImageURL(article)
	return article, nil
}

func (s *newsService) attachImageURL(article *models.NewsArticle) {
	if article.FeaturedImageKey != nil {
		article.FeaturedImageURL = s.uploader.GetPublicURL(*article.FeaturedImageKey)
	}
}
