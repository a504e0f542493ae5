package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/likes"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type likeHandler struct {
	responder Responder
	logger    zerolog.Logger
	likes     likeService
	timeout   time.Duration
}

func newLikeHandler(likes likeService, timeout time.Duration) likeHandler {
	logger := log.With().Str("handlerName", "likeHandler").Logger()

	return likeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		likes:     likes,
		timeout:   timeout,
	}
}

func (h likeHandler) incrementLike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		count, err := h.likes.Increment(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.writeLikeError(w, r, err, "Failed to update like count")
			return
		}

		h.responder.WriteJSON(w, LikeResponse{
			Success:   true,
			LikeCount: count,
			Message:   "Like count updated successfully",
		})
	}
}

func (h likeHandler) getLikeCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := requestContext(r, h.timeout)
		defer cancel()

		count, err := h.likes.Count(ctx, chi.URLParam(r, "id"))
		if err != nil {
			h.writeLikeError(w, r, err, "Failed to fetch like count")
			return
		}

		h.responder.WriteJSON(w, LikeResponse{Success: true, LikeCount: count})
	}
}

// writeLikeError keeps store failures out of the response; the cause is only logged.
func (h likeHandler) writeLikeError(w http.ResponseWriter, r *http.Request, err error, failure string) {
	switch {
	case errors.Is(err, likes.ErrMissingID):
		h.responder.WriteError(w, errs.NewBadRequestError("Blog ID is required"))
	case errors.Is(err, likes.ErrNotFound):
		h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
	default:
		logger := requestLogger(r, h.logger)
		logger.Error().Err(err).Str("blogID", chi.URLParam(r, "id")).Msg(failure)
		h.responder.WriteJSONStatus(w, http.StatusInternalServerError, ErrorResponse{Error: failure})
	}
}
