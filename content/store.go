// Package content is the query layer: it reads documents from a Store,
// validates them, and hands out display projections.
package content

import (
	"context"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// ErrNotFound is returned by stores when a document does not exist.
var ErrNotFound = errs.ErrNotFound

// ProjectQuery narrows a project listing. The zero value selects every
// project ordered featured first, then order ascending, then newest first.
// FeaturedOnly listings drop the featured-first key.
type ProjectQuery struct {
	Slug         string
	FeaturedOnly bool
	Limit        int
}

// BlogQuery narrows a listing of published blogs. The zero value selects
// every published blog ordered featured first, then newest publication first.
type BlogQuery struct {
	Slug         string
	Category     string
	FeaturedOnly bool
	Limit        int
}

// Store is the read side of a content backend.
type Store interface {
	Projects(ctx context.Context, q ProjectQuery) ([]models.Project, error)
	// ProjectCategories returns the raw category of every project, duplicates included.
	ProjectCategories(ctx context.Context) ([]string, error)
	Blogs(ctx context.Context, q BlogQuery) ([]models.Blog, error)
	// BlogCategories returns the raw category of every published blog.
	BlogCategories(ctx context.Context) ([]string, error)
	// ActiveAbout returns ErrNotFound when no about document is active.
	ActiveAbout(ctx context.Context) (*models.About, error)
}

// LikeStore owns the one field this system writes.
type LikeStore interface {
	// IncrementLikeCount sets likeCount to 0 when missing and adds one, as a
	// single atomic step, returning the new value.
	IncrementLikeCount(ctx context.Context, blogID string) (int, error)
	LikeCount(ctx context.Context, blogID string) (int, error)
}
