package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/galacticos-fc/clubsite/models"
	"github.com/galacticos-fc/clubsite/repositories"
	"github.com/galacticos-fc/clubsite/storage"
)

type GalleryService interface {
	// CreateItem uploads the image and records the item in one call; gallery
	// entries without an image are meaningless.
	CreateItem(ctx context.Context, input GalleryItemInput, file io.Reader, filename, contentType string) (*models.GalleryItem, error)
	ListItems(ctx context.Context, galleryType string, featuredOnly bool) ([]models.GalleryItem, error)
	UpdateItem(ctx context.Context, id int, input GalleryItemInput) (*models.GalleryItem, error)
	DeleteItem(ctx context.Context, id int) error
}

type GalleryItemInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	GalleryType string `json:"gallery_type"`
	MatchID     *int   `json:"match_id"`
	IsFeatured  bool   `json:"is_featured"`
}

type galleryService struct {
	galleryRepo repositories.GalleryRepository
	uploader    storage.FileUploader
}

func NewGalleryService(galleryRepo repositories.GalleryRepository, uploader storage.FileUploader) GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		uploader:    uploader,
	}
}

func (s *galleryService) CreateItem(ctx context.Context, input GalleryItemInput, file io.Reader, filename, contentType string) (*models.GalleryItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	galleryType := input.GalleryType
	if galleryType == "" {
		galleryType = "general"
	}

	key := storage.NewObjectKey("gallery", filename)
	if _, err := s.uploader.Upload(ctx, key, contentType, file); err != nil {
		return nil, fmt.Errorf("failed to upload gallery image: %w", err)
	}

	item := &models.GalleryItem{
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		ImageKey:    &key,
		GalleryType: galleryType,
		MatchID:     input.MatchID,
		IsFeatured:  input.IsFeatured,
	}
	if err := s.galleryRepo.Create(ctx, item); err != nil {
		_ = s.uploader.Delete(ctx, key)
		if errors.Is(err, repositories.ErrGalleryMatchInvalid) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to create gallery item: %w", err)
	}
	s.attachImageURL(item)
	return item, nil
}

func (s *galleryService) ListItems(ctx context.Context, galleryType string, featuredOnly bool) ([]models.GalleryItem, error) {
	items, err := s.galleryRepo.List(ctx, galleryType, featuredOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	for i := range items {
		s.attachImageURL(&items[i])
	}
	return items, nil
}

func (s *galleryService) UpdateItem(ctx context.Context, id int, input GalleryItemInput) (*models.GalleryItem, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}

	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGalleryItemNotFound) {
			return nil, ErrGalleryItemNotFound
		}
		return nil, fmt.Errorf("failed to get gallery item %d: %w", id, err)
	}

	item.Title = strings.TrimSpace(input.Title)
	item.Description = input.Description
	if input.GalleryType != "" {
		item.GalleryType = input.GalleryType
	}
	item.MatchID = input.MatchID
	item.IsFeatured = input.IsFeatured

	if err := s.galleryRepo.Update(ctx, item); err != nil {
		switch {
		case errors.Is(err, repositories.ErrGalleryItemNotFound):
			return nil, ErrGalleryItemNotFound
		case errors.Is(err, repositories.ErrGalleryMatchInvalid):
			return nil, ErrMatchNotFound
		default:
			return nil, fmt.Errorf("failed to update gallery item %d: %w", id, err)
		}
	}
	s.attachImageURL(item)
	return item, nil
}

func (s *galleryService) DeleteItem(ctx context.Context, id int) error {
	item, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrGalleryItemNotFound) {
			return ErrGalleryItemNotFound
		}
		return fmt.Errorf("failed to load gallery item %d before delete: %w", id, err)
	}

	if err := s.galleryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrGalleryItemNotFound) {
			return ErrGalleryItemNotFound
		}
		return fmt.Errorf("failed to delete gallery item %d: %w", id, err)
	}

	if item.ImageKey != nil {
		_ = s.uploader.Delete(ctx, *item.ImageKey)
	}
	return nil
}

func (s *galleryService) attachImageURL(item *models.GalleryItem) {
	if item.ImageKey != nil {
		item.ImageURL = s.uploader.GetPublicURL(*item.ImageKey)
	}
}
