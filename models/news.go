package models

import "time"

type NewsArticle struct {
	ID               int        `json:"id"`
	Title            string     `json:"title"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt,omitempty"`
	AuthorID         int        `json:"author_id"`
	FeaturedImageKey *string    `json:"-"`
	FeaturedImageURL string     `json:"featured_image_url,omitempty"`
	IsPublished      bool       `json:"is_published"`
	PublishedAt      *time.Time `json:"published_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
