package router

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pageza/recipebook/backend/internal/api"
	"github.com/pageza/recipebook/backend/internal/middleware"
)

// Handlers groups the route handlers mounted by SetupRouter
type Handlers struct {
	Auth    *api.AuthHandler
	Recipes *api.RecipeHandler
	User    *api.UserHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator, corsOrigins []string, logger *slog.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.RequestLogger(logger),
		middleware.Metrics(),
		middleware.Recovery(),
		middleware.CORS(corsOrigins),
		middleware.ErrorHandler(),
	)

	router.GET("/alive", api.Alive)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Bearer tokens are optional everywhere; a bad one is rejected
	routes := router.Group("")
	routes.Use(middleware.AuthMiddleware(validator, api.LogoutPaths...))

	h.Auth.RegisterRoutes(routes)
	h.Recipes.RegisterRoutes(routes)
	h.User.RegisterRoutes(routes)

	return router
}
