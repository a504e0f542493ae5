package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectRecord is the projects table of the self-hosted content store.
type ProjectRecord struct {
	ID          string                      `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	Name        string                      `json:"name" db:"name" gorm:"column:name;type:text;not null"`
	Slug        string                      `json:"slug" db:"slug" gorm:"column:slug;type:text;not null;uniqueIndex"`
	Description string                      `json:"description" db:"description" gorm:"column:description;type:text"`
	Image       datatypes.JSON              `json:"image,omitempty" db:"image" gorm:"column:image"`
	UsedTechs   datatypes.JSONSlice[string] `json:"usedTechs" db:"used_techs" gorm:"column:used_techs"`
	DemoURL     string                      `json:"demoUrl,omitempty" db:"demo_url" gorm:"column:demo_url;type:text"`
	LiveURL     string                      `json:"liveUrl,omitempty" db:"live_url" gorm:"column:live_url;type:text"`
	GithubURL   string                      `json:"githubUrl,omitempty" db:"github_url" gorm:"column:github_url;type:text"`
	Category    string                      `json:"category" db:"category" gorm:"column:category;type:text;not null"`
	IsFeatured  bool                        `json:"isFeatured" db:"is_featured" gorm:"column:is_featured;not null;default:false;index"`
	SortOrder   *float64                    `json:"order,omitempty" db:"sort_order" gorm:"column:sort_order"`
	CreatedAt   time.Time                   `json:"createdAt" db:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
}

func (ProjectRecord) TableName() string { return "projects" }

// BlogRecord is the blogs table. A NULL like_count means never liked.
type BlogRecord struct {
	ID            string                      `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	Title         string                      `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	Slug          string                      `json:"slug" db:"slug" gorm:"column:slug;type:text;not null;uniqueIndex"`
	Excerpt       string                      `json:"excerpt" db:"excerpt" gorm:"column:excerpt;type:text"`
	Content       string                      `json:"content" db:"content" gorm:"column:content;type:text;not null"`
	FeaturedImage datatypes.JSON              `json:"featuredImage,omitempty" db:"featured_image" gorm:"column:featured_image"`
	Category      string                      `json:"category" db:"category" gorm:"column:category;type:text;index"`
	Tags          datatypes.JSONSlice[string] `json:"tags" db:"tags" gorm:"column:tags"`
	LikeCount     *int                        `json:"likeCount,omitempty" db:"like_count" gorm:"column:like_count"`
	Author        string                      `json:"author,omitempty" db:"author" gorm:"column:author;type:text"`
	IsPublished   bool                        `json:"isPublished" db:"is_published" gorm:"column:is_published;not null;default:false;index"`
	IsFeatured    bool                        `json:"isFeatured" db:"is_featured" gorm:"column:is_featured;not null;default:false"`
	PublishedAt   *time.Time                  `json:"publishedAt,omitempty" db:"published_at" gorm:"column:published_at"`
	CreatedAt     time.Time                   `json:"createdAt" db:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt     time.Time                   `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (BlogRecord) TableName() string { return "blogs" }

// AboutRecord is the about table; at most one row should be active.
type AboutRecord struct {
	ID           string                      `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	Title        string                      `json:"title" db:"title" gorm:"column:title;type:text;not null"`
	CurrentRole  string                      `json:"currentRole" db:"current_role" gorm:"column:current_role;type:text"`
	Description  datatypes.JSON              `json:"description" db:"description" gorm:"column:description"`
	ProfileImage datatypes.JSON              `json:"profileImage,omitempty" db:"profile_image" gorm:"column:profile_image"`
	Skills       datatypes.JSONSlice[string] `json:"skills" db:"skills" gorm:"column:skills"`
	Experience   *float64                    `json:"experience,omitempty" db:"experience" gorm:"column:experience"`
	Location     string                      `json:"location,omitempty" db:"location" gorm:"column:location;type:text"`
	Email        string                      `json:"email,omitempty" db:"email" gorm:"column:email;type:text"`
	SocialLinks  datatypes.JSON              `json:"socialLinks" db:"social_links" gorm:"column:social_links"`
	IsActive     bool                        `json:"isActive" db:"is_active" gorm:"column:is_active;not null;default:false;index"`
	UpdatedAt    time.Time                   `json:"updatedAt" db:"updated_at" gorm:"column:updated_at;not null;autoUpdateTime"`
}

func (AboutRecord) TableName() string { return "about" }
