package api

import (
	"context"
	"time"

	"github.com/rpupo63/portfolio-site-backend/models"
)

// contentService is the read side the handlers need from content.Service.
type contentService interface {
	AllProjects(ctx context.Context) []models.ProjectDisplay
	FeaturedProjects(ctx context.Context) []models.ProjectDisplay
	ProjectBySlug(ctx context.Context, slug string) *models.ProjectDisplay
	ProjectCategories(ctx context.Context) []string
	AllBlogs(ctx context.Context) []models.BlogDisplay
	FeaturedBlogs(ctx context.Context) []models.BlogDisplay
	BlogBySlug(ctx context.Context, slug string) *models.BlogDisplay
	BlogCategories(ctx context.Context) []string
	BlogsByCategory(ctx context.Context, category string) []models.BlogDisplay
	AboutData(ctx context.Context) *models.AboutDisplay
}

type likeService interface {
	Increment(ctx context.Context, blogID string) (int, error)
	Count(ctx context.Context, blogID string) (int, error)
}

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler projectHandler
	blogHandler    blogHandler
	likeHandler    likeHandler
	pageHandler    pageHandler
	healthHandler  healthHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(content contentService, likes likeService, timeout time.Duration, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		projectHandler: newProjectHandler(content, timeout),
		blogHandler:    newBlogHandler(content, timeout),
		likeHandler:    newLikeHandler(likes, timeout),
		pageHandler:    newPageHandler(content, timeout),
		healthHandler:  newHealthHandler(startupTime),
	}
}
