package models

import "time"

type GalleryItem struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ImageKey    *string   `json:"-"`
	ImageURL    string    `json:"image_url,omitempty"`
	GalleryType string    `json:"gallery_type"`
	MatchID     *int      `json:"match_id,omitempty"`
	IsFeatured  bool      `json:"is_featured"`
	UploadDate  time.Time `json:"upload_date"`
}
