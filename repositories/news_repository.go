package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
)

var ErrArticleNotFound = errors.New("news article not found")

type NewsRepository interface {
	Create(ctx context.Context, article *models.NewsArticle) error
	GetByID(ctx context.Context, id int) (*models.NewsArticle, error)
	// ListAll returns every article newest first (admin view).
	ListAll(ctx context.Context) ([]models.NewsArticle, error)
	// ListPublished returns only published articles, newest published first.
	ListPublished(ctx context.Context, limit int) ([]models.NewsArticle, error)
	Update(ctx context.Context, article *models.NewsArticle) error
	Delete(ctx context.Context, id int) error
	CountPublished(ctx context.Context) (int, error)
}

type postgresNewsRepository struct {
	db *sql.DB
}

func NewPostgresNewsRepository(db *sql.DB) NewsRepository {
	return &postgresNewsRepository{db: db}
}

const newsColumns = `id, title, content, excerpt, author_id, featured_image_key, is_published, published_at, created_at, updated_at`

func (r *postgresNewsRepository) Create(ctx context.Context, article *models.NewsArticle) error {
	query := `
		INSERT INTO news (title, content, excerpt, author_id, featured_image_key, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		article.Title,
		article.Content,
		article.Excerpt,
		article.AuthorID,
		article.FeaturedImageKey,
		article.IsPublished,
		article.PublishedAt,
	).Scan(&article.ID, &article.CreatedAt, &article.UpdatedAt)
}

func (r *postgresNewsRepository) GetByID(ctx context.Context, id int) (*models.NewsArticle, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE id = $1`

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to get article by id %d: %w", id, err)
	}
	return article, nil
}

func (r *postgresNewsRepository) ListAll(ctx context.Context) ([]models.NewsArticle, error) {
	query := `SELECT ` + newsColumns + ` FROM news ORDER BY created_at DESC`
	return r.listArticles(ctx, query)
}

func (r *postgresNewsRepository) ListPublished(ctx context.Context, limit int) ([]models.NewsArticle, error) {
	query := `SELECT ` + newsColumns + ` FROM news WHERE is_published = TRUE ORDER BY published_at DESC`
	if limit > 0 {
		return r.listArticles(ctx, query+` LIMIT $1`, limit)
	}
	return r.listArticles(ctx, query)
}

func (r *postgresNewsRepository) Update(ctx context.Context, article *models.NewsArticle) error {
	query := `
		UPDATE news SET
			title = $1,
			content = $2,
			excerpt = $3,
			featured_image_key = $4,
			is_published = $5,
			published_at = $6,
			updated_at = NOW()
		WHERE id = $7`

	result, err := r.db.ExecContext(ctx, query,
		article.Title,
		article.Content,
		article.Excerpt,
		article.FeaturedImageKey,
		article.IsPublished,
		article.PublishedAt,
		article.ID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrArticleNotFound)
}

func (r *postgresNewsRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM news WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrArticleNotFound)
}

func (r *postgresNewsRepository) CountPublished(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM news WHERE is_published = TRUE`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count published articles: %w", err)
	}
	return count, nil
}

func (r *postgresNewsRepository) listArticles(ctx context.Context, query string, args ...interface{}) ([]models.NewsArticle, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.NewsArticle, 0)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, *article)
	}
	return articles, rows.Err()
}

func scanArticle(row rowScanner) (*models.NewsArticle, error) {
	var article models.NewsArticle
	err := row.Scan(
		&article.ID,
		&article.Title,
		&article.Content,
		&article.Excerpt,
		&article.AuthorID,
		&article.FeaturedImageKey,
		&article.IsPublished,
		&article.PublishedAt,
		&article.CreatedAt,
		&article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &article, nil
}
