package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rpupo63/portfolio-site-backend/config"
	"github.com/rs/zerolog/log"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

// NewServer wires the content and like services into the HTTP API.
func NewServer(settings config.Settings, content contentService, likes likeService) Server {
	address := fmt.Sprintf("0.0.0.0:%s", settings.Port)
	startupTime := time.Now()

	router := newRouter(content, likes,
		withAcceptedOrigins(settings.AcceptedOrigins),
		withRequestTimeout(settings.RequestTimeout),
		withStartupTime(startupTime),
	)

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  settings.ReadTimeout,
		WriteTimeout: settings.WriteTimeout,
		IdleTimeout:  settings.IdleTimeout,
	}

	return Server{server, startupTime}
}

type router struct {
	acceptedOrigins []string
	requestTimeout  time.Duration
	startupTime     time.Time
}

func withAcceptedOrigins(origins []string) func(*router) {
	return func(r *router) {
		r.acceptedOrigins = origins
	}
}

func withRequestTimeout(timeout time.Duration) func(*router) {
	return func(r *router) {
		r.requestTimeout = timeout
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(content contentService, likes likeService, opts ...func(*router)) *chi.Mux {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(middleware.RequestID)
	chiRouter.Use(middleware.RealIP)
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(HTTPLoggingMiddleware(log.With().Str("component", "http").Logger()))

	chiRouter.Use(CORSCheckMiddleware(router.acceptedOrigins))
	chiRouter.Use(corsMiddleware(router.acceptedOrigins))

	handlers := initializeHandlers(content, likes, router.requestTimeout, router.startupTime)
	setupRoutes(chiRouter, handlers)

	return chiRouter
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
