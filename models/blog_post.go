package models

import "time"

// Blog is a blog document as returned by the content store.
type Blog struct {
	ID            string    `json:"_id" validate:"required"`
	Type          string    `json:"_type,omitempty"`
	Title         string    `json:"title" validate:"required,max=100"`
	Slug          Slug      `json:"slug"`
	Excerpt       string    `json:"excerpt" validate:"max=300"`
	Content       string    `json:"content" validate:"required"`
	FeaturedImage *ImageRef `json:"featuredImage,omitempty"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	LikeCount     *int      `json:"likeCount"`
	Author        string    `json:"author,omitempty"`
	IsPublished   bool      `json:"isPublished"`
	IsFeatured    bool      `json:"isFeatured"`
	PublishedAt   string    `json:"publishedAt,omitempty" validate:"omitempty,timestamp"`
	CreatedAt     string    `json:"createdAt" validate:"omitempty,timestamp"`
	UpdatedAt     string    `json:"updatedAt,omitempty" validate:"omitempty,timestamp"`
}

// BlogDisplay is the flattened, defaulted projection of a Blog.
type BlogDisplay struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	LikeCount   int        `json:"likeCount"`
	Author      string     `json:"author,omitempty"`
	IsPublished bool       `json:"isPublished"`
	IsFeatured  bool       `json:"isFeatured"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
