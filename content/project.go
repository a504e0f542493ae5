package content

import (
	"cmp"
	"context"
	"math"
	"slices"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
)

const (
	projectImageWidth  = 800
	projectImageHeight = 400
	featuredLimit      = 6
)

func (s *Service) projectDisplay(ctx context.Context, p models.Project) (models.ProjectDisplay, bool) {
	if err := s.validate.Struct(p); err != nil {
		s.logger.Warn().Err(err).Str("documentID", p.ID).Msg("dropping invalid project")
		return models.ProjectDisplay{}, false
	}

	imageURL := ProjectPlaceholderImage
	if !p.Image.IsZero() {
		resolved, err := s.images.ImageURL(ctx, p.Image, projectImageWidth, projectImageHeight)
		if err != nil {
			s.logger.Warn().Err(err).Str("documentID", p.ID).Msg("could not resolve project image")
		} else {
			imageURL = resolved
		}
	}

	techs := p.UsedTechs
	if techs == nil {
		techs = []string{}
	}

	var createdAt time.Time
	if t, ok := ParseTimestamp(p.CreatedAt); ok {
		createdAt = t
	}

	var order int
	if p.Order != nil {
		order = int(math.Round(*p.Order))
	}

	return models.ProjectDisplay{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug.Current,
		Description: p.Description,
		ImageURL:    imageURL,
		Techs:       techs,
		DemoURL:     p.DemoURL,
		LiveURL:     p.LiveURL,
		GithubURL:   p.GithubURL,
		Category:    CategoryLabel(p.Category),
		IsFeatured:  p.IsFeatured,
		Order:       order,
		CreatedAt:   createdAt,
	}, true
}

func (s *Service) projectDisplays(ctx context.Context, projects []models.Project) []models.ProjectDisplay {
	out := make([]models.ProjectDisplay, 0, len(projects))
	for _, p := range projects {
		if d, ok := s.projectDisplay(ctx, p); ok {
			out = append(out, d)
		}
	}
	return out
}

// sortProjects orders by order ascending, missing orders last, then newest
// first. With featuredFirst, featured projects lead.
func sortProjects(projects []models.Project, featuredFirst bool) {
	slices.SortStableFunc(projects, func(a, b models.Project) int {
		if featuredFirst && a.IsFeatured != b.IsFeatured {
			if a.IsFeatured {
				return -1
			}
			return 1
		}
		if c := compareOrder(a.Order, b.Order); c != 0 {
			return c
		}
		return compareNewest(a.CreatedAt, b.CreatedAt)
	})
}

func compareOrder(a, b *float64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return cmp.Compare(*a, *b)
}

// compareNewest sorts later timestamps first and unparseable ones last.
func compareNewest(a, b string) int {
	ta, okA := ParseTimestamp(a)
	tb, okB := ParseTimestamp(b)
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return 1
	case !okB:
		return -1
	}
	return tb.Compare(ta)
}
