package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   contentService
	timeout   time.Duration
}

func newProjectHandler(content contentService, timeout time.Duration) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		timeout:   timeout,
	}
}

// listProjects returns every project matching the q and category query
// parameters, along with the full category list for the filter UI.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		var (
			projects   []models.ProjectDisplay
			categories []string
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			projects = h.content.AllProjects(gctx)
			return nil
		})
		g.Go(func() error {
			categories = h.content.ProjectCategories(gctx)
			return nil
		})
		g.Wait()

		query := r.URL.Query()
		filtered := content.FilterProjects(projects, query.Get("q"), query.Get("category"))
		h.responder.WriteJSON(w, ProjectListResponse{
			Projects:   filtered,
			Categories: categories,
			Total:      len(filtered),
		})
	}
}

func (h projectHandler) featuredProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		h.responder.WriteJSON(w, ProjectsResponse{Projects: h.content.FeaturedProjects(ctx)})
	}
}

func (h projectHandler) projectCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		h.responder.WriteJSON(w, CategoriesResponse{Categories: h.content.ProjectCategories(ctx)})
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		project := h.content.ProjectBySlug(ctx, chi.URLParam(r, "slug"))
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}
		h.responder.WriteJSON(w, project)
	}
}
