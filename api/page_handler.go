package api

import (
	"net/http"
	"time"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// pageHandler serves the about and home pages.
type pageHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   contentService
	timeout   time.Duration
}

func newPageHandler(content contentService, timeout time.Duration) pageHandler {
	logger := log.With().Str("handlerName", "pageHandler").Logger()

	return pageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		timeout:   timeout,
	}
}

func (h pageHandler) getAbout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		about := h.content.AboutData(ctx)
		if about == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("About data not found"))
			return
		}

		h.responder.WriteJSON(w, AboutResponse{
			About:     *about,
			HTML:      string(render.Blocks(about.Description)),
			PlainText: render.PlainText(about.Description),
		})
	}
}

// getHome fetches featured projects, featured blogs and the about data
// concurrently. A missing about document is reported as null.
func (h pageHandler) getHome() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		var (
			projects []models.ProjectDisplay
			blogs    []models.BlogDisplay
			about    *models.AboutDisplay
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			projects = h.content.FeaturedProjects(gctx)
			return nil
		})
		g.Go(func() error {
			blogs = h.content.FeaturedBlogs(gctx)
			return nil
		})
		g.Go(func() error {
			about = h.content.AboutData(gctx)
			return nil
		})
		g.Wait()

		h.responder.WriteJSON(w, HomeResponse{
			FeaturedProjects: projects,
			FeaturedBlogs:    blogs,
			About:            about,
		})
	}
}
