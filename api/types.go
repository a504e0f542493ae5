package api

import "github.com/rpupo63/portfolio-site-backend/models"

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Field   string `json:"field,omitempty"`
	Details string `json:"details,omitempty"`
}

type LikeResponse struct {
	Success   bool   `json:"success"`
	LikeCount int    `json:"likeCount"`
	Message   string `json:"message,omitempty"`
}

type ProjectListResponse struct {
	Projects   []models.ProjectDisplay `json:"projects"`
	Categories []string                `json:"categories"`
	Total      int                     `json:"total"`
}

type ProjectsResponse struct {
	Projects []models.ProjectDisplay `json:"projects"`
}

type BlogListResponse struct {
	Blogs      []models.BlogDisplay `json:"blogs"`
	Categories []string             `json:"categories"`
	Total      int                  `json:"total"`
}

type BlogsResponse struct {
	Blogs []models.BlogDisplay `json:"blogs"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// BlogResponse carries a blog with its content already rendered.
type BlogResponse struct {
	Blog        models.BlogDisplay `json:"blog"`
	HTML        string             `json:"html"`
	Headings    []models.Heading   `json:"headings"`
	ReadingTime int                `json:"readingTime"`
}

type AboutResponse struct {
	About     models.AboutDisplay `json:"about"`
	HTML      string              `json:"html"`
	PlainText string              `json:"plainText"`
}

type HomeResponse struct {
	FeaturedProjects []models.ProjectDisplay `json:"featuredProjects"`
	FeaturedBlogs    []models.BlogDisplay    `json:"featuredBlogs"`
	About            *models.AboutDisplay    `json:"about"`
}

type HealthResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}
