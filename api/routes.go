package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes registers the public content API. Nothing here needs authentication.
func setupRoutes(r chi.Router, handlers *routeHandlers) {
	r.Get("/healthz", handlers.healthHandler.health())

	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", handlers.projectHandler.listProjects())
		r.Get("/projects/featured", handlers.projectHandler.featuredProjects())
		r.Get("/projects/categories", handlers.projectHandler.projectCategories())
		r.Get("/projects/{slug}", handlers.projectHandler.getProject())

		r.Get("/blogs", handlers.blogHandler.listBlogs())
		r.Get("/blogs/featured", handlers.blogHandler.featuredBlogs())
		r.Get("/blogs/categories", handlers.blogHandler.blogCategories())
		r.Get("/blogs/{slug}", handlers.blogHandler.getBlog())

		r.Patch("/blog/{id}/like", handlers.likeHandler.incrementLike())
		r.Get("/blog/{id}/like", handlers.likeHandler.getLikeCount())

		r.Get("/about", handlers.pageHandler.getAbout())
		r.Get("/home", handlers.pageHandler.getHome())
	})
}
