package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/mocks"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

func setupRecipeRouter() (*gin.Engine, *mocks.MockRecipeService) {
	recipeService := new(mocks.MockRecipeService)
	router := gin.New()
	NewRecipeHandler(recipeService).RegisterRoutes(&router.RouterGroup)
	return router, recipeService
}

func TestRecipesRoot(t *testing.T) {
	router, _ := setupRecipeRouter()

	w := doJSON(router, http.MethodGet, "/recipes/", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "im here", w.Body.String())
}

func TestSearchRecipes(t *testing.T) {
	router, recipeService := setupRecipeRouter()

	expected := types.SearchParams{Query: "pasta", Cuisine: "italian", Diet: "vegetarian", Intolerances: "gluten", Number: 2}
	recipeService.On("Search", mock.Anything, expected).Return([]types.RecipeInfo{
		{ID: 716429, Title: "Pasta with Garlic"},
		{ID: 715538, Title: "Bruschetta Pasta"},
	}, nil).Once()

	w := doJSON(router, http.MethodGet, "/recipes/search?query=pasta&cuisine=italian&diet=vegetarian&intolerance=gluten&number=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	var recipes []types.RecipeInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	require.Len(t, recipes, 2)
	assert.Equal(t, int64(716429), recipes[0].ID)
	assert.Equal(t, "Bruschetta Pasta", recipes[1].Title)
	recipeService.AssertExpectations(t)
}

func TestSearchRecipesErrors(t *testing.T) {
	router, recipeService := setupRecipeRouter()

	recipeService.On("Search", mock.Anything, types.SearchParams{}).
		Return(nil, apperrors.New(apperrors.ErrCodeValidation, "Search query (recipe name) is required")).Once()
	recipeService.On("Search", mock.Anything, types.SearchParams{Query: "pasta"}).
		Return(nil, apperrors.New(apperrors.ErrCodeProvider, "recipe search failed")).Once()

	w := doJSON(router, http.MethodGet, "/recipes/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Search query (recipe name) is required", decodeBody(t, w)["message"])

	w = doJSON(router, http.MethodGet, "/recipes/search?query=pasta", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	w = doJSON(router, http.MethodGet, "/recipes/search?query=pasta&number=lots", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRandomRecipes(t *testing.T) {
	router, recipeService := setupRecipeRouter()

	recipeService.On("GetRandom", mock.Anything, 3).Return([]types.RecipeSummary{
		{ID: 1, Title: "One"}, {ID: 2, Title: "Two"}, {ID: 3, Title: "Three"},
	}, nil).Once()

	w := doJSON(router, http.MethodGet, "/recipes/random", "")

	require.Equal(t, http.StatusOK, w.Code)
	var recipes []types.RecipeSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipes))
	assert.Len(t, recipes, 3)
}

func TestRecipeDetails(t *testing.T) {
	router, recipeService := setupRecipeRouter()

	recipeService.On("GetDetails", mock.Anything, "716429", "api").
		Return(&types.RecipeInfo{ID: 716429, Title: "Pasta with Garlic"}, nil).Once()
	recipeService.On("GetDetails", mock.Anything, "7", "db").
		Return(nil, apperrors.New(apperrors.ErrCodeNotFound, "Recipe not found in DB.")).Once()
	recipeService.On("GetDetails", mock.Anything, "abc", "api").
		Return(nil, apperrors.New(apperrors.ErrCodeValidation, "Invalid recipe ID")).Once()

	w := doJSON(router, http.MethodGet, "/recipes/716429?source=api", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Pasta with Garlic", decodeBody(t, w)["title"])

	w = doJSON(router, http.MethodGet, "/recipes/7?source=db", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Recipe not found in DB.", decodeBody(t, w)["message"])

	w = doJSON(router, http.MethodGet, "/recipes/abc?source=api", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecipeDetailsRequiresSource(t *testing.T) {
	provider := new(mocks.MockRecipeProvider)
	router := gin.New()
	NewRecipeHandler(service.NewRecipeService(provider, nil)).RegisterRoutes(&router.RouterGroup)

	tests := []struct {
		name string
		path string
	}{
		{name: "missing", path: "/recipes/123"},
		{name: "empty", path: "/recipes/123?source="},
		{name: "unknown", path: "/recipes/123?source=xyz"},
		{name: "wrong case", path: "/recipes/123?source=API"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, tt.path, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, "Invalid parameters for fetching recipe details", body["message"])
			assert.Equal(t, false, body["success"])
		})
	}

	provider.AssertNotCalled(t, "FetchInformation", mock.Anything, mock.Anything)
}

func TestRecipeFullDetails(t *testing.T) {
	router, recipeService := setupRecipeRouter()

	detail := &types.RecipeDetail{}
	detail.ID = 716429
	detail.Title = "Pasta with Garlic"
	recipeService.On("GetFullDetails", mock.Anything, "716429").Return(detail, nil).Once()
	recipeService.On("GetFullDetails", mock.Anything, "0").
		Return(nil, apperrors.New(apperrors.ErrCodeNotFound, "No data found for recipe ID: 0")).Once()

	w := doJSON(router, http.MethodGet, "/recipes/full/716429", "")
	require.Equal(t, http.StatusOK, w.Code)
	data, ok := decodeBody(t, w)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Pasta with Garlic", data["title"])

	w = doJSON(router, http.MethodGet, "/recipes/full/0", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
