package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/lib/pq"
)

var (
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrGalleryMatchInvalid = errors.New("gallery item references an unknown match")
)

type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	GetByID(ctx context.Context, id int) (*models.GalleryItem, error)
	// List returns items newest first. galleryType filters when non-empty;
	// featuredOnly narrows to featured items.
	List(ctx context.Context, galleryType string, featuredOnly bool) ([]models.GalleryItem, error)
	Update(ctx context.Context, item *models.GalleryItem) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}

type postgresGalleryRepository struct {
	db *sql.DB
}

func NewPostgresGalleryRepository(db *sql.DB) GalleryRepository {
	return &postgresGalleryRepository{db: db}
}

const galleryColumns = `id, title, description, image_key, gallery_type, match_id, is_featured, upload_date`

func (r *postgresGalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	query := `
		INSERT INTO gallery_items (title, description, image_key, gallery_type, match_id, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, upload_date`

	err := r.db.QueryRowContext(ctx, query,
		item.Title,
		item.Description,
		item.ImageKey,
		item.GalleryType,
		item.MatchID,
		item.IsFeatured,
	).Scan(&item.ID, &item.UploadDate)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrGalleryMatchInvalid
		}
		return err
	}
	return nil
}

func (r *postgresGalleryRepository) GetByID(ctx context.Context, id int) (*models.GalleryItem, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_items WHERE id = $1`

	item, err := scanGalleryItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("failed to get gallery item by id %d: %w", id, err)
	}
	return item, nil
}

func (r *postgresGalleryRepository) List(ctx context.Context, galleryType string, featuredOnly bool) ([]models.GalleryItem, error) {
	query := `SELECT ` + galleryColumns + ` FROM gallery_items`
	args := make([]interface{}, 0, 1)
	conditions := ""
	if galleryType != "" {
		args = append(args, galleryType)
		conditions = fmt.Sprintf(" WHERE gallery_type = $%d", len(args))
	}
	if featuredOnly {
		if conditions == "" {
			conditions = " WHERE is_featured = TRUE"
		} else {
			conditions += " AND is_featured = TRUE"
		}
	}
	query += conditions + " ORDER BY upload_date DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	defer rows.Close()

	items := make([]models.GalleryItem, 0)
	for rows.Next() {
		item, err := scanGalleryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *postgresGalleryRepository) Update(ctx context.Context, item *models.GalleryItem) error {
	query := `
		UPDATE gallery_items SET
			title = $1,
			description = $2,
			gallery_type = $3,
			match_id = $4,
			is_featured = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.Description,
		item.GalleryType,
		item.MatchID,
		item.IsFeatured,
		item.ID,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrGalleryMatchInvalid
		}
		return err
	}
	return checkAffectedRows(result, ErrGalleryItemNotFound)
}

func (r *postgresGalleryRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM gallery_items WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrGalleryItemNotFound)
}

func (r *postgresGalleryRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM gallery_items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count gallery items: %w", err)
	}
	return count, nil
}

func scanGalleryItem(row rowScanner) (*models.GalleryItem, error) {
	var item models.GalleryItem
	err := row.Scan(
		&item.ID,
		&item.Title,
		&item.Description,
		&item.ImageKey,
		&item.GalleryType,
		&item.MatchID,
		&item.IsFeatured,
		&item.UploadDate,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
