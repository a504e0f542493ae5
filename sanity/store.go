package sanity

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/models"
)

var (
	_ content.Store     = (*Client)(nil)
	_ content.LikeStore = (*Client)(nil)
)

func (c *Client) Projects(ctx context.Context, q content.ProjectQuery) ([]models.Project, error) {
	groq, params := projectsQuery(q)
	projects := []models.Project{}
	if _, err := c.Query(ctx, groq, params, &projects); err != nil {
		return nil, fmt.Errorf("fetch projects: %w", err)
	}
	return projects, nil
}

func (c *Client) ProjectCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if _, err := c.Query(ctx, projectCategoriesQuery, nil, &categories); err != nil {
		return nil, fmt.Errorf("fetch project categories: %w", err)
	}
	return categories, nil
}

func (c *Client) Blogs(ctx context.Context, q content.BlogQuery) ([]models.Blog, error) {
	groq, params := blogsQuery(q)
	blogs := []models.Blog{}
	if _, err := c.Query(ctx, groq, params, &blogs); err != nil {
		return nil, fmt.Errorf("fetch blogs: %w", err)
	}
	return blogs, nil
}

func (c *Client) BlogCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	if _, err := c.Query(ctx, blogCategoriesQuery, nil, &categories); err != nil {
		return nil, fmt.Errorf("fetch blog categories: %w", err)
	}
	return categories, nil
}

func (c *Client) ActiveAbout(ctx context.Context) (*models.About, error) {
	var about models.About
	found, err := c.Query(ctx, activeAboutQuery, nil, &about)
	if err != nil {
		return nil, fmt.Errorf("fetch about: %w", err)
	}
	if !found {
		return nil, content.ErrNotFound
	}
	return &about, nil
}

// IncrementLikeCount commits setIfMissing and inc in one patch, which the
// store applies atomically. The patch is scoped to blog documents so an ID
// belonging to another type matches nothing and reports not found.
func (c *Client) IncrementLikeCount(ctx context.Context, blogID string) (int, error) {
	results, err := c.Mutate(ctx, Mutation{Patch: &Patch{
		Query:        blogByIDQuery,
		Params:       map[string]any{"id": blogID},
		SetIfMissing: map[string]any{"likeCount": 0},
		Inc:          map[string]int{"likeCount": 1},
	}})
	if err != nil {
		return 0, err
	}

	var doc struct {
		LikeCount int `json:"likeCount"`
	}
	if err := decodeDocument(results[0], &doc); err != nil {
		return 0, err
	}
	return doc.LikeCount, nil
}

func (c *Client) LikeCount(ctx context.Context, blogID string) (int, error) {
	var doc struct {
		LikeCount *int `json:"likeCount"`
	}
	found, err := c.Query(ctx, likeCountQuery, map[string]any{"id": blogID}, &doc)
	if err != nil {
		return 0, fmt.Errorf("fetch like count: %w", err)
	}
	if !found {
		return 0, content.ErrNotFound
	}
	if doc.LikeCount == nil {
		return 0, nil
	}
	return *doc.LikeCount, nil
}
