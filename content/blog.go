package content

import (
	"context"
	"slices"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const (
	blogImageWidth  = 800
	blogImageHeight = 400
)

func (s *Service) blogDisplay(ctx context.Context, b models.Blog) (models.BlogDisplay, bool) {
	if err := s.validate.Struct(b); err != nil {
		s.logger.Warn().Err(err).Str("documentID", b.ID).Msg("dropping invalid blog")
		return models.BlogDisplay{}, false
	}

	var imageURL string
	if !b.FeaturedImage.IsZero() {
		resolved, err := s.images.ImageURL(ctx, b.FeaturedImage, blogImageWidth, blogImageHeight)
		if err != nil {
			s.logger.Warn().Err(err).Str("documentID", b.ID).Msg("could not resolve blog image")
		} else {
			imageURL = resolved
		}
	}

	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}

	likeCount := 0
	if b.LikeCount != nil && *b.LikeCount > 0 {
		likeCount = *b.LikeCount
	}

	var createdAt time.Time
	if t, ok := ParseTimestamp(b.CreatedAt); ok {
		createdAt = t
	}

	return models.BlogDisplay{
		ID:          b.ID,
		Title:       b.Title,
		Slug:        b.Slug.Current,
		Excerpt:     b.Excerpt,
		Content:     b.Content,
		ImageURL:    imageURL,
		Category:    b.Category,
		Tags:        tags,
		LikeCount:   likeCount,
		Author:      b.Author,
		IsPublished: b.IsPublished,
		IsFeatured:  b.IsFeatured,
		PublishedAt: optionalTimestamp(b.PublishedAt),
		CreatedAt:   createdAt,
		UpdatedAt:   optionalTimestamp(b.UpdatedAt),
	}, true
}

// publishedBlogDisplays drops unpublished and invalid documents.
func (s *Service) publishedBlogDisplays(ctx context.Context, blogs []models.Blog) []models.BlogDisplay {
	out := make([]models.BlogDisplay, 0, len(blogs))
	for _, b := range blogs {
		if !b.IsPublished {
			continue
		}
		if d, ok := s.blogDisplay(ctx, b); ok {
			out = append(out, d)
		}
	}
	return out
}

// sortBlogs orders newest publication first, falling back to creation time
// for blogs without a publication date. With featuredFirst, featured blogs lead.
func sortBlogs(blogs []models.Blog, featuredFirst bool) {
	slices.SortStableFunc(blogs, func(a, b models.Blog) int {
		if featuredFirst && a.IsFeatured != b.IsFeatured {
			if a.IsFeatured {
				return -1
			}
			return 1
		}
		return compareNewest(blogDate(a), blogDate(b))
	})
}

func blogDate(b models.Blog) string {
	if b.PublishedAt != "" {
		return b.PublishedAt
	}
	return b.CreatedAt
}
