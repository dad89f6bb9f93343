package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/config"
	"github.com/pageza/recipebook/backend/internal/api"
	"github.com/pageza/recipebook/backend/internal/router"
	"github.com/pageza/recipebook/backend/internal/service"
)

// Dependencies are the backing stores and clients the services run on.
// Storage may be nil when profile picture uploads are not configured.
type Dependencies struct {
	Executor service.QueryExecutor
	Provider service.RecipeProvider
	Tokens   service.TokenStore
	Storage  service.ObjectStorage
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger *slog.Logger
}

// New wires the services and handlers and builds the HTTP server
func New(cfg *config.Config, deps Dependencies, logger *slog.Logger) *Server {
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	authService := service.NewAuthService(deps.Executor, deps.Tokens, service.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
	})

	handlers := router.Handlers{
		Auth:    api.NewAuthHandler(authService, service.NewProfilePictureService(deps.Storage)),
		Recipes: api.NewRecipeHandler(service.NewRecipeService(deps.Provider, deps.Executor)),
		User: api.NewUserHandler(
			service.NewUserRecipeService(deps.Executor),
			service.NewFavoritesService(deps.Executor),
		),
	}

	engine := router.SetupRouter(handlers, authService, cfg.CORSOrigins, logger)

	return &Server{
		router: engine,
		logger: logger,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("server listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
