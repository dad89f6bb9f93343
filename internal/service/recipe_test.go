package service_test

import (
	"context"
	"testing"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/mocks"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecipeServiceSearch(t *testing.T) {
	provider := new(mocks.MockRecipeProvider)
	_, exec := setupExecutor(t)
	recipeSvc := service.NewRecipeService(provider, exec)
	ctx := context.Background()

	expected := []types.RecipeInfo{{ID: 1, Title: "Pasta al Limone"}, {ID: 2, Title: "Pasta e Fagioli"}}
	provider.On("Search", mock.Anything, types.SearchParams{Query: "pasta", Cuisine: "Italian", Number: 5}).
		Return(expected, nil).Once()

	recipes, err := recipeSvc.Search(ctx, types.SearchParams{Query: "pasta", Cuisine: "Italian"})
	require.NoError(t, err)
	assert.Equal(t, expected, recipes)

	_, err = recipeSvc.Search(ctx, types.SearchParams{Cuisine: "Italian"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	assert.Equal(t, "Search query (recipe name) is required", apperrors.PublicMessage(err))

	provider.AssertExpectations(t)
}

func TestRecipeServiceGetRandom(t *testing.T) {
	provider := new(mocks.MockRecipeProvider)
	recipeSvc := service.NewRecipeService(provider, nil)

	summaries := []types.RecipeSummary{{ID: 1}, {ID: 2}, {ID: 3}}
	provider.On("FetchRandom", mock.Anything, 3).Return(summaries, nil).Once()

	got, err := recipeSvc.GetRandom(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)

	provider.AssertExpectations(t)
}

func TestRecipeServiceGetDetails(t *testing.T) {
	provider := new(mocks.MockRecipeProvider)
	db, exec := setupExecutor(t)
	recipeSvc := service.NewRecipeService(provider, exec)
	ctx := context.Background()

	t.Run("invalid source", func(t *testing.T) {
		_, err := recipeSvc.GetDetails(ctx, "1", "cache")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := recipeSvc.GetDetails(ctx, "abc", "api")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	})

	t.Run("from provider", func(t *testing.T) {
		provider.On("FetchInformation", mock.Anything, int64(716429)).
			Return(&types.RecipeInfo{ID: 716429, Title: "Pasta with Garlic"}, nil).Once()

		info, err := recipeSvc.GetDetails(ctx, "716429", "api")
		require.NoError(t, err)
		assert.Equal(t, "Pasta with Garlic", info.Title)
	})

	t.Run("provider not found", func(t *testing.T) {
		provider.On("FetchInformation", mock.Anything, int64(1)).
			Return(nil, apperrors.New(apperrors.ErrCodeNotFound, "Recipe not found")).Once()

		_, err := recipeSvc.GetDetails(ctx, "1", "api")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	t.Run("from database", func(t *testing.T) {
		user := createUser(t, db, "dbuser")
		source := "Grandma"
		recipe := models.UserRecipe{
			UserID: user.ID,
			RecipeFields: models.RecipeFields{
				Title:               "Shakshuka",
				Image:               "https://img.example.com/shakshuka.jpg",
				ReadyInMinutes:      25,
				Vegetarian:          true,
				ExtendedIngredients: models.Ingredients{{ID: 1, Name: "egg", Amount: 4}},
				SourceName:          &source,
			},
		}
		require.NoError(t, db.Create(&recipe).Error)

		info, err := recipeSvc.GetDetails(ctx, itoa(recipe.ID), "db")
		require.NoError(t, err)
		assert.Equal(t, int64(recipe.ID), info.ID)
		assert.Equal(t, "Shakshuka", info.Title)
		assert.Equal(t, "Grandma", info.SourceName)
		require.Len(t, info.ExtendedIngredients, 1)
		assert.Equal(t, "egg", info.ExtendedIngredients[0].Name)
		assert.NotNil(t, info.AnalyzedInstructions)
	})

	t.Run("database miss", func(t *testing.T) {
		_, err := recipeSvc.GetDetails(ctx, "424242", "db")
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
	})

	provider.AssertExpectations(t)
}

func TestRecipeServiceGetFullDetails(t *testing.T) {
	provider := new(mocks.MockRecipeProvider)
	recipeSvc := service.NewRecipeService(provider, nil)
	ctx := context.Background()

	_, err := recipeSvc.GetFullDetails(ctx, "twelve")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
	assert.Equal(t, "Invalid recipe ID", apperrors.PublicMessage(err))

	provider.On("FetchFullDetails", mock.Anything, int64(99999999)).
		Return(nil, apperrors.New(apperrors.ErrCodeNotFound, "No data found for recipe ID: 99999999")).Once()

	detail, err := recipeSvc.GetFullDetails(ctx, "99999999")
	assert.Nil(t, detail)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	provider.AssertExpectations(t)
}
