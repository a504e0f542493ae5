package content

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/cache"
	"github.com/rpupo63/portfolio-site-backend/models"
)

const defaultCacheTTL = 60 * time.Second

const (
	keyAllProjects       = "projects:all"
	keyFeaturedProjects  = "projects:featured"
	keyProjectBySlug     = "projects:slug"
	keyProjectCategories = "projects:categories"
	keyAllBlogs          = "blogs:all"
	keyFeaturedBlogs     = "blogs:featured"
	keyBlogBySlug        = "blogs:slug"
	keyBlogCategories    = "blogs:categories"
	keyBlogsByCategory   = "blogs:category"
	keyAbout             = "about:active"
)

// Service answers the read queries of the site. No method returns an
// error: store failures are logged and collapse to an empty value.
type Service struct {
	store    Store
	images   ImageResolver
	cache    cache.Cache
	ttl      time.Duration
	logger   zerolog.Logger
	validate *documentValidator
}

type Option func(*Service)

// WithCacheTTL sets how long results stay cached. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.ttl = ttl
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func NewService(store Store, images ImageResolver, c cache.Cache, opts ...Option) *Service {
	if c == nil {
		c = cache.NewNoop()
	}
	s := &Service{
		store:    store,
		images:   images,
		cache:    c,
		ttl:      defaultCacheTTL,
		logger:   log.With().Str("component", "content").Logger(),
		validate: newDocumentValidator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AllProjects lists every project, featured first, then by order, then newest.
func (s *Service) AllProjects(ctx context.Context) []models.ProjectDisplay {
	return cached(ctx, s, keyAllProjects, []models.ProjectDisplay{}, func(ctx context.Context) ([]models.ProjectDisplay, bool) {
		projects, err := s.store.Projects(ctx, ProjectQuery{})
		if err != nil {
			s.logger.Error().Err(err).Msg("Error fetching projects")
			return nil, false
		}
		sortProjects(projects, true)
		return s.projectDisplays(ctx, projects), true
	})
}

// FeaturedProjects lists at most six featured projects by order, then newest.
// The cap applies after invalid documents are dropped.
func (s *Service) FeaturedProjects(ctx context.Context) []models.ProjectDisplay {
	return cached(ctx, s, keyFeaturedProjects, []models.ProjectDisplay{}, func(ctx context.Context) ([]models.ProjectDisplay, bool) {
		projects, err := s.store.Projects(ctx, ProjectQuery{FeaturedOnly: true})
		if err != nil {
			s.logger.Error().Err(err).Msg("Error fetching featured projects")
			return nil, false
		}
		featured := projects[:0:0]
		for _, p := range projects {
			if p.IsFeatured {
				featured = append(featured, p)
			}
		}
		sortProjects(featured, false)
		out := s.projectDisplays(ctx, featured)
		if len(out) > featuredLimit {
			out = out[:featuredLimit]
		}
		return out, true
	})
}

// ProjectBySlug returns nil when the slug is unknown or the store fails.
func (s *Service) ProjectBySlug(ctx context.Context, slug string) *models.ProjectDisplay {
	if slug == "" {
		return nil
	}
	return cached(ctx, s, cache.Key(keyProjectBySlug, slug), (*models.ProjectDisplay)(nil), func(ctx context.Context) (*models.ProjectDisplay, bool) {
		projects, err := s.store.Projects(ctx, ProjectQuery{Slug: slug, Limit: 1})
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				s.logger.Error().Err(err).Str("slug", slug).Msg("Error fetching project by slug")
			}
			return nil, false
		}
		for _, p := range projects {
			if p.Slug.Current != slug {
				continue
			}
			if d, ok := s.projectDisplay(ctx, p); ok {
				return &d, true
			}
		}
		return nil, false
	})
}

// ProjectCategories returns "All" then the sorted distinct category labels.
func (s *Service) ProjectCategories(ctx context.Context) []string {
	return cached(ctx, s, keyProjectCategories, []string{AllCategories}, func(ctx context.Context) ([]string, bool) {
		raw, err := s.store.ProjectCategories(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("Error fetching categories")
			return nil, false
		}
		labels := make([]string, 0, len(raw))
		for _, c := range raw {
			labels = append(labels, CategoryLabel(c))
		}
		return categoryList(labels), true
	})
}

// AllBlogs lists published blogs, featured first, then newest.
func (s *Service) AllBlogs(ctx context.Context) []models.BlogDisplay {
	return cached(ctx, s, keyAllBlogs, []models.BlogDisplay{}, func(ctx context.Context) ([]models.BlogDisplay, bool) {
		blogs, err := s.store.Blogs(ctx, BlogQuery{})
		if err != nil {
			s.logger.Error().Err(err).Msg("Error fetching blogs")
			return nil, false
		}
		sortBlogs(blogs, true)
		return s.publishedBlogDisplays(ctx, blogs), true
	})
}

// FeaturedBlogs lists at most six published, featured blogs, newest first.
// The cap applies after unpublished and invalid documents are dropped.
func (s *Service) FeaturedBlogs(ctx context.Context) []models.BlogDisplay {
	return cached(ctx, s, keyFeaturedBlogs, []models.BlogDisplay{}, func(ctx context.Context) ([]models.BlogDisplay, bool) {
		blogs, err := s.store.Blogs(ctx, BlogQuery{FeaturedOnly: true})
		if err != nil {
			s.logger.Error().Err(err).Msg("Error fetching featured blogs")
			return nil, false
		}
		featured := blogs[:0:0]
		for _, b := range blogs {
			if b.IsFeatured {
				featured = append(featured, b)
			}
		}
		sortBlogs(featured, false)
		out := s.publishedBlogDisplays(ctx, featured)
		if len(out) > featuredLimit {
			out = out[:featuredLimit]
		}
		return out, true
	})
}

// BlogBySlug returns the published blog with slug, or nil.
func (s *Service) BlogBySlug(ctx context.Context, slug string) *models.BlogDisplay {
	if slug == "" {
		return nil
	}
	return cached(ctx, s, cache.Key(keyBlogBySlug, slug), (*models.BlogDisplay)(nil), func(ctx context.Context) (*models.BlogDisplay, bool) {
		blogs, err := s.store.Blogs(ctx, BlogQuery{Slug: slug, Limit: 1})
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				s.logger.Error().Err(err).Str("slug", slug).Msg("Error fetching blog by slug")
			}
			return nil, false
		}
		for _, b := range blogs {
			if b.Slug.Current != slug || !b.IsPublished {
				continue
			}
			if d, ok := s.blogDisplay(ctx, b); ok {
				return &d, true
			}
		}
		return nil, false
	})
}

// BlogCategories returns "All" then the sorted distinct raw categories of
// published blogs.
func (s *Service) BlogCategories(ctx context.Context) []string {
	return cached(ctx, s, keyBlogCategories, []string{AllCategories}, func(ctx context.Context) ([]string, bool) {
		raw, err := s.store.BlogCategories(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("Error fetching blog categories")
			return nil, false
		}
		return categoryList(raw), true
	})
}

// BlogsByCategory lists published blogs whose category equals category, in
// AllBlogs order. "All" returns every published blog. Empty results are not
// cached, so arbitrary category names cannot fill the cache.
func (s *Service) BlogsByCategory(ctx context.Context, category string) []models.BlogDisplay {
	if category == AllCategories {
		return s.AllBlogs(ctx)
	}
	return cached(ctx, s, cache.Key(keyBlogsByCategory, category), []models.BlogDisplay{}, func(ctx context.Context) ([]models.BlogDisplay, bool) {
		blogs, err := s.store.Blogs(ctx, BlogQuery{Category: category})
		if err != nil {
			s.logger.Error().Err(err).Str("category", category).Msg("Error fetching blogs by category")
			return nil, false
		}
		matching := blogs[:0:0]
		for _, b := range blogs {
			if b.Category == category {
				matching = append(matching, b)
			}
		}
		sortBlogs(matching, true)
		out := s.publishedBlogDisplays(ctx, matching)
		return out, len(out) > 0
	})
}

// AboutData returns the active about document, or nil when none is active.
func (s *Service) AboutData(ctx context.Context) *models.AboutDisplay {
	return cached(ctx, s, keyAbout, (*models.AboutDisplay)(nil), func(ctx context.Context) (*models.AboutDisplay, bool) {
		about, err := s.store.ActiveAbout(ctx)
		if err != nil {
			if !errors.Is(err, ErrNotFound) {
				s.logger.Error().Err(err).Msg("Error fetching about data")
			}
			return nil, false
		}
		if about == nil || !about.IsActive {
			return nil, false
		}
		d, ok := s.aboutDisplay(ctx, *about)
		if !ok {
			return nil, false
		}
		return &d, true
	})
}

// cached serves key from the cache or calls load. Results load marks as
// not ok are replaced by fallback and never stored.
func cached[T any](ctx context.Context, s *Service, key string, fallback T, load func(context.Context) (T, bool)) T {
	if s.ttl > 0 {
		raw, hit, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache read failed")
		} else if hit {
			var v T
			if err := json.Unmarshal(raw, &v); err == nil {
				return v
			}
			s.logger.Warn().Str("key", key).Msg("discarding undecodable cache entry")
		}
	}

	v, ok := load(ctx)
	if !ok {
		return fallback
	}

	if s.ttl > 0 {
		if raw, err := json.Marshal(v); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache encode failed")
		} else if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("cache write failed")
		}
	}
	return v
}
