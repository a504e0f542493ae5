package models

import "time"

// Slug is the store's slug object; only Current is meaningful.
type Slug struct {
	Current string `json:"current" validate:"required"`
}

// Project is a project document exactly as the content store returns it.
// Nothing in it is trusted until content validates and projects it.
type Project struct {
	ID          string    `json:"_id" validate:"required"`
	Type        string    `json:"_type,omitempty"`
	Name        string    `json:"name" validate:"required,max=100"`
	Slug        Slug      `json:"slug"`
	Description string    `json:"description" validate:"max=500"`
	Image       *ImageRef `json:"image,omitempty"`
	UsedTechs   []string  `json:"usedTechs"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"isFeatured"`
	Order       *float64  `json:"order"`
	CreatedAt   string    `json:"createdAt" validate:"omitempty,timestamp"`
}

// ProjectDisplay is the read-only projection handed to callers.
type ProjectDisplay struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Techs       []string  `json:"techs"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	LiveURL     string    `json:"liveUrl,omitempty"`
	GithubURL   string    `json:"githubUrl,omitempty"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"isFeatured"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
}
