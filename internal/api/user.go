package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

// UserHandler serves user recipes and favorites
type UserHandler struct {
	recipeService    service.IUserRecipeService
	favoritesService service.IFavoritesService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(recipeService service.IUserRecipeService, favoritesService service.IFavoritesService) *UserHandler {
	return &UserHandler{
		recipeService:    recipeService,
		favoritesService: favoritesService,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	{
		user.POST("/favorites", h.AddFavorite)
		user.GET("/favorites", h.ListFavorites)
		user.POST("/addRecipe", h.AddRecipe)
		user.GET("/myRecipes", h.ListRecipes)
		user.GET("/recipes/:recipeId", h.GetRecipe)
	}
}

func (h *UserHandler) AddFavorite(c *gin.Context) {
	var req types.AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	if err := h.favoritesService.AddFavorite(c.Request.Context(), req.UserID, req.Recipe); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Recipe added to favorites",
		"success": true,
	})
}

func (h *UserHandler) ListFavorites(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	favorites, err := h.favoritesService.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, favorites)
}

func (h *UserHandler) AddRecipe(c *gin.Context) {
	var req types.AddRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	recipeID, err := h.recipeService.AddRecipe(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Recipe added successfully",
		"success":   true,
		"recipe_id": recipeID,
	})
}

func (h *UserHandler) ListRecipes(c *gin.Context) {
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

func (h *UserHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("recipeId"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, apperrors.New(apperrors.ErrCodeValidation, "Invalid recipe ID"))
		return
	}

	recipe, err := h.recipeService.GetRecipeDetail(c.Request.Context(), uint(id))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipe": recipe})
}
