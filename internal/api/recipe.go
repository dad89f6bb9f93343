package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

// RecipeHandler serves provider recipes
type RecipeHandler struct {
	recipeService service.IRecipeService
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/", h.Root)
		recipes.GET("/search", h.Search)
		recipes.GET("/random", h.Random)
		recipes.GET("/full/:recipeId", h.FullDetails)
		recipes.GET("/:recipeId", h.Details)
	}
}

func (h *RecipeHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "im here")
}

func (h *RecipeHandler) Search(c *gin.Context) {
	params := types.SearchParams{
		Query:        c.Query("query"),
		Cuisine:      c.Query("cuisine"),
		Diet:         c.Query("diet"),
		Intolerances: c.Query("intolerance"),
	}
	if raw := c.Query("number"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(c, apperrors.New(apperrors.ErrCodeValidation, "number must be a positive integer"))
			return
		}
		params.Number = n
	}

	recipes, err := h.recipeService.Search(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Random(c *gin.Context) {
	recipes, err := h.recipeService.GetRandom(c.Request.Context(), service.DefaultRandomCount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *RecipeHandler) Details(c *gin.Context) {
	recipe, err := h.recipeService.GetDetails(c.Request.Context(), c.Param("recipeId"), c.Query("source"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) FullDetails(c *gin.Context) {
	detail, err := h.recipeService.GetFullDetails(c.Request.Context(), c.Param("recipeId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": detail})
}
