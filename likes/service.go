// Package likes owns the blog like counter: the server-side increment and
// read operations and the optimistic client protocol that drives them.
package likes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rpupo63/portfolio-site-backend/content"
)

var (
	ErrMissingID = errors.New("blog id is required")
	ErrNotFound  = errors.New("blog post not found")
)

type Service struct {
	store content.LikeStore
}

func NewService(store content.LikeStore) *Service {
	return &Service{store: store}
}

// Increment adds one like to the blog and returns the new count. Each call
// adds exactly one like.
func (s *Service) Increment(ctx context.Context, blogID string) (int, error) {
	id := strings.TrimSpace(blogID)
	if id == "" {
		return 0, ErrMissingID
	}

	count, err := s.store.IncrementLikeCount(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("increment like count of %s: %w", id, err)
	}
	return count, nil
}

// Count returns the blog's like count, 0 when it was never liked.
func (s *Service) Count(ctx context.Context, blogID string) (int, error) {
	id := strings.TrimSpace(blogID)
	if id == "" {
		return 0, ErrMissingID
	}

	count, err := s.store.LikeCount(ctx, id)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("read like count of %s: %w", id, err)
	}
	if count < 0 {
		count = 0
	}
	return count, nil
}
