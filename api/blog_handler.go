package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/content"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rpupo63/portfolio-site-backend/render"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	content   contentService
	timeout   time.Duration
}

func newBlogHandler(content contentService, timeout time.Duration) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()

	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		content:   content,
		timeout:   timeout,
	}
}

// listBlogs returns published blogs, narrowed by the category query
// parameter at the store and by q in memory.
func (h blogHandler) listBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		query := r.URL.Query()
		category := strings.TrimSpace(query.Get("category"))

		var (
			blogs      []models.BlogDisplay
			categories []string
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if category == "" || category == content.AllCategories {
				blogs = h.content.AllBlogs(gctx)
			} else {
				blogs = h.content.BlogsByCategory(gctx, category)
			}
			return nil
		})
		g.Go(func() error {
			categories = h.content.BlogCategories(gctx)
			return nil
		})
		g.Wait()

		filtered := content.FilterBlogs(blogs, query.Get("q"), "")
		h.responder.WriteJSON(w, BlogListResponse{
			Blogs:      filtered,
			Categories: categories,
			Total:      len(filtered),
		})
	}
}

func (h blogHandler) featuredBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		h.responder.WriteJSON(w, BlogsResponse{Blogs: h.content.FeaturedBlogs(ctx)})
	}
}

func (h blogHandler) blogCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		h.responder.WriteJSON(w, CategoriesResponse{Categories: h.content.BlogCategories(ctx)})
	}
}

// getBlog returns a published blog with its markdown rendered, its heading
// outline and an estimated reading time.
func (h blogHandler) getBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		blog := h.content.BlogBySlug(ctx, chi.URLParam(r, "slug"))
		if blog == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		html, err := render.Markdown(blog.Content)
		if err != nil {
			logger := requestLogger(r, h.logger)
			logger.Error().Err(err).Str("blogID", blog.ID).Msg("error rendering blog content")
			h.responder.WriteError(w, errs.NewInternalError("Failed to render blog post"))
			return
		}

		h.responder.WriteJSON(w, BlogResponse{
			Blog:        *blog,
			HTML:        string(html),
			Headings:    render.ExtractHeadings(blog.Content),
			ReadingTime: render.ReadingTime(blog.Content),
		})
	}
}
