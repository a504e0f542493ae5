// Package contenttest provides an in-memory content store for tests.
package contenttest

import (
	"context"
	"sync"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// Store keeps documents in memory and implements content.Store and
// content.LikeStore. Set Err to make every call fail.
type Store struct {
	mu       sync.Mutex
	projects []models.Project
	blogs    []models.Blog
	about    []models.About

	Err   error
	Calls int
}

func New() *Store {
	return &Store{}
}

func (s *Store) AddProjects(projects ...models.Project) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, projects...)
	return s
}

func (s *Store) AddBlogs(blogs ...models.Blog) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = append(s.blogs, blogs...)
	return s
}

func (s *Store) AddAbout(about ...models.About) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.about = append(s.about, about...)
	return s
}

func limit[T any](docs []T, n int) []T {
	if n > 0 && len(docs) > n {
		return docs[:n]
	}
	return docs
}

func (s *Store) begin() error {
	s.Calls++
	return s.Err
}

// Projects applies filters and q.Limit in insertion order but leaves sorting
// to the caller, so tests can check that the service sorts on its own.
func (s *Store) Projects(_ context.Context, q content.ProjectQuery) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	out := []models.Project{}
	for _, p := range s.projects {
		if q.Slug != "" && p.Slug.Current != q.Slug {
			continue
		}
		if q.FeaturedOnly && !p.IsFeatured {
			continue
		}
		out = append(out, p)
	}
	return limit(out, q.Limit), nil
}

func (s *Store) ProjectCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Category)
	}
	return out, nil
}

// Blogs returns matching blogs, published or not, up to q.Limit.
func (s *Store) Blogs(_ context.Context, q content.BlogQuery) ([]models.Blog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	out := []models.Blog{}
	for _, b := range s.blogs {
		if q.Slug != "" && b.Slug.Current != q.Slug {
			continue
		}
		if q.Category != "" && b.Category != q.Category {
			continue
		}
		if q.FeaturedOnly && !b.IsFeatured {
			continue
		}
		out = append(out, b)
	}
	return limit(out, q.Limit), nil
}

func (s *Store) BlogCategories(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	out := []string{}
	for _, b := range s.blogs {
		if b.IsPublished {
			out = append(out, b.Category)
		}
	}
	return out, nil
}

func (s *Store) ActiveAbout(_ context.Context) (*models.About, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return nil, err
	}
	for _, a := range s.about {
		if a.IsActive {
			a := a
			return &a, nil
		}
	}
	return nil, content.ErrNotFound
}

func (s *Store) IncrementLikeCount(_ context.Context, blogID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return 0, err
	}
	for i := range s.blogs {
		if s.blogs[i].ID != blogID {
			continue
		}
		next := 1
		if c := s.blogs[i].LikeCount; c != nil {
			next = *c + 1
		}
		s.blogs[i].LikeCount = &next
		return next, nil
	}
	return 0, content.ErrNotFound
}

func (s *Store) LikeCount(_ context.Context, blogID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.begin(); err != nil {
		return 0, err
	}
	for _, b := range s.blogs {
		if b.ID != blogID {
			continue
		}
		if b.LikeCount == nil {
			return 0, nil
		}
		return *b.LikeCount, nil
	}
	return 0, content.ErrNotFound
}

// CallCount reports how many store calls were made.
func (s *Store) CallCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Calls
}

// SetErr changes the injected failure under the store's lock.
func (s *Store) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}
