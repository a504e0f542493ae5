package models

import "time"

// SocialLink is one entry of the about document's social links.
type SocialLink struct {
	Platform string `json:"platform" validate:"required,oneof=linkedin github twitter instagram website other"`
	URL      string `json:"url" validate:"required"`
	Label    string `json:"label,omitempty"`
}

// About is the profile document. At most one is active at a time.
type About struct {
	ID           string       `json:"_id" validate:"required"`
	Type         string       `json:"_type,omitempty"`
	Title        string       `json:"title" validate:"required"`
	CurrentRole  string       `json:"currentRole" validate:"max=100"`
	Description  []Block      `json:"description"`
	ProfileImage *ImageRef    `json:"profileImage,omitempty"`
	Skills       []string     `json:"skills"`
	Experience   *float64     `json:"experience"`
	Location     string       `json:"location,omitempty"`
	Email        string       `json:"email,omitempty"`
	SocialLinks  []SocialLink `json:"socialLinks"`
	IsActive     bool         `json:"isActive"`
	UpdatedAt    string       `json:"updatedAt,omitempty" validate:"omitempty,timestamp"`
}

// SocialLinkDisplay adds the name and icon a front end shows for a link.
type SocialLinkDisplay struct {
	SocialLink
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// AboutDisplay is the projection of the active About document.
type AboutDisplay struct {
	ID              string              `json:"id"`
	Title           string              `json:"title"`
	CurrentRole     string              `json:"currentRole"`
	Description     []Block             `json:"description"`
	ProfileImageURL string              `json:"profileImageUrl,omitempty"`
	Skills          []string            `json:"skills"`
	Experience      *float64            `json:"experience,omitempty"`
	Location        string              `json:"location,omitempty"`
	Email           string              `json:"email,omitempty"`
	SocialLinks     []SocialLinkDisplay `json:"socialLinks"`
	IsActive        bool                `json:"isActive"`
	UpdatedAt       *time.Time          `json:"updatedAt,omitempty"`
}
