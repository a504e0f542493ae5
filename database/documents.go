package database

import (
	"encoding/json"
	"time"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/models"
	"gorm.io/datatypes"
)

// Rows are handed to the query layer in the same raw shape the hosted CMS
// returns, so validation and projection stay in one place.

func projectDocument(r models.ProjectRecord) models.Project {
	return models.Project{
		ID:          r.ID,
		Type:        "project",
		Name:        r.Name,
		Slug:        models.Slug{Current: r.Slug},
		Description: r.Description,
		Image:       imageRef(r.Image),
		UsedTechs:   []string(r.UsedTechs),
		DemoURL:     r.DemoURL,
		LiveURL:     r.LiveURL,
		GithubURL:   r.GithubURL,
		Category:    r.Category,
		IsFeatured:  r.IsFeatured,
		Order:       r.SortOrder,
		CreatedAt:   timestamp(r.CreatedAt),
	}
}

func blogDocument(r models.BlogRecord) models.Blog {
	b := models.Blog{
		ID:            r.ID,
		Type:          "blog",
		Title:         r.Title,
		Slug:          models.Slug{Current: r.Slug},
		Excerpt:       r.Excerpt,
		Content:       r.Content,
		FeaturedImage: imageRef(r.FeaturedImage),
		Category:      r.Category,
		Tags:          []string(r.Tags),
		LikeCount:     r.LikeCount,
		Author:        r.Author,
		IsPublished:   r.IsPublished,
		IsFeatured:    r.IsFeatured,
		CreatedAt:     timestamp(r.CreatedAt),
		UpdatedAt:     timestamp(r.UpdatedAt),
	}
	if r.PublishedAt != nil {
		b.PublishedAt = timestamp(*r.PublishedAt)
	}
	return b
}

func aboutDocument(r models.AboutRecord) models.About {
	a := models.About{
		ID:           r.ID,
		Type:         "about",
		Title:        r.Title,
		CurrentRole:  r.CurrentRole,
		ProfileImage: imageRef(r.ProfileImage),
		Skills:       []string(r.Skills),
		Experience:   r.Experience,
		Location:     r.Location,
		Email:        r.Email,
		IsActive:     r.IsActive,
		UpdatedAt:    timestamp(r.UpdatedAt),
	}
	if len(r.Description) > 0 {
		_ = json.Unmarshal(r.Description, &a.Description)
	}
	if len(r.SocialLinks) > 0 {
		_ = json.Unmarshal(r.SocialLinks, &a.SocialLinks)
	}
	return a
}

func projectRecord(p models.Project) (models.ProjectRecord, error) {
	image, err := jsonColumn(p.Image)
	if err != nil {
		return models.ProjectRecord{}, err
	}
	return models.ProjectRecord{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug.Current,
		Description: p.Description,
		Image:       image,
		UsedTechs:   datatypes.JSONSlice[string](p.UsedTechs),
		DemoURL:     p.DemoURL,
		LiveURL:     p.LiveURL,
		GithubURL:   p.GithubURL,
		Category:    p.Category,
		IsFeatured:  p.IsFeatured,
		SortOrder:   p.Order,
		CreatedAt:   parseTime(p.CreatedAt),
	}, nil
}

func blogRecord(b models.Blog) (models.BlogRecord, error) {
	image, err := jsonColumn(b.FeaturedImage)
	if err != nil {
		return models.BlogRecord{}, err
	}
	r := models.BlogRecord{
		ID:            b.ID,
		Title:         b.Title,
		Slug:          b.Slug.Current,
		Excerpt:       b.Excerpt,
		Content:       b.Content,
		FeaturedImage: image,
		Category:      b.Category,
		Tags:          datatypes.JSONSlice[string](b.Tags),
		LikeCount:     b.LikeCount,
		Author:        b.Author,
		IsPublished:   b.IsPublished,
		IsFeatured:    b.IsFeatured,
		CreatedAt:     parseTime(b.CreatedAt),
		UpdatedAt:     parseTime(b.UpdatedAt),
	}
	if t := parseTime(b.PublishedAt); !t.IsZero() {
		r.PublishedAt = &t
	}
	return r, nil
}

func aboutRecord(a models.About) (models.AboutRecord, error) {
	image, err := jsonColumn(a.ProfileImage)
	if err != nil {
		return models.AboutRecord{}, err
	}
	description, err := jsonColumn(a.Description)
	if err != nil {
		return models.AboutRecord{}, err
	}
	links, err := jsonColumn(a.SocialLinks)
	if err != nil {
		return models.AboutRecord{}, err
	}
	return models.AboutRecord{
		ID:           a.ID,
		Title:        a.Title,
		CurrentRole:  a.CurrentRole,
		Description:  description,
		ProfileImage: image,
		Skills:       datatypes.JSONSlice[string](a.Skills),
		Experience:   a.Experience,
		Location:     a.Location,
		Email:        a.Email,
		SocialLinks:  links,
		IsActive:     a.IsActive,
		UpdatedAt:    parseTime(a.UpdatedAt),
	}, nil
}

func imageRef(raw datatypes.JSON) *models.ImageRef {
	if len(raw) == 0 {
		return nil
	}
	var ref *models.ImageRef
	if err := json.Unmarshal(raw, &ref); err != nil {
		return nil
	}
	return ref
}

func jsonColumn[T any](v T) (datatypes.JSON, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if string(raw) == "null" {
		return nil, nil
	}
	return datatypes.JSON(raw), nil
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) time.Time {
	t, _ := content.ParseTimestamp(value)
	return t
}
