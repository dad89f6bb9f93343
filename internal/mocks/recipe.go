package mocks

import (
	"context"
	"time"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// Search mocks the Search method
func (m *MockRecipeService) Search(ctx context.Context, params types.SearchParams) ([]types.RecipeInfo, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeInfo), args.Error(1)
}

// GetRandom mocks the GetRandom method
func (m *MockRecipeService) GetRandom(ctx context.Context, n int) ([]types.RecipeSummary, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeSummary), args.Error(1)
}

// GetDetails mocks the GetDetails method
func (m *MockRecipeService) GetDetails(ctx context.Context, recipeID, source string) (*types.RecipeInfo, error) {
	args := m.Called(ctx, recipeID, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeInfo), args.Error(1)
}

// GetFullDetails mocks the GetFullDetails method
func (m *MockRecipeService) GetFullDetails(ctx context.Context, recipeID string) (*types.RecipeDetail, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetail), args.Error(1)
}

// MockUserRecipeService is a mock implementation of the user recipe service
type MockUserRecipeService struct {
	mock.Mock
}

// AddRecipe mocks the AddRecipe method
func (m *MockUserRecipeService) AddRecipe(ctx context.Context, req *types.AddRecipeRequest) (uint, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uint), args.Error(1)
}

// ListRecipes mocks the ListRecipes method
func (m *MockUserRecipeService) ListRecipes(ctx context.Context, userID uint) ([]models.UserRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserRecipe), args.Error(1)
}

// GetRecipeDetail mocks the GetRecipeDetail method
func (m *MockUserRecipeService) GetRecipeDetail(ctx context.Context, recipeID uint) (*models.UserRecipe, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserRecipe), args.Error(1)
}

// MockFavoritesService is a mock implementation of the favorites service
type MockFavoritesService struct {
	mock.Mock
}

// AddFavorite mocks the AddFavorite method
func (m *MockFavoritesService) AddFavorite(ctx context.Context, userID uint, recipe *types.FavoriteRecipeInput) error {
	args := m.Called(ctx, userID, recipe)
	return args.Error(0)
}

// ListFavorites mocks the ListFavorites method
func (m *MockFavoritesService) ListFavorites(ctx context.Context, userID uint) ([]models.FavoriteRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FavoriteRecipe), args.Error(1)
}

// MockRecipeProvider is a mock implementation of the recipe provider client
type MockRecipeProvider struct {
	mock.Mock
}

// FetchInformation mocks the FetchInformation method
func (m *MockRecipeProvider) FetchInformation(ctx context.Context, id int64) (*types.RecipeInfo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeInfo), args.Error(1)
}

// Search mocks the Search method
func (m *MockRecipeProvider) Search(ctx context.Context, params types.SearchParams) ([]types.RecipeInfo, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeInfo), args.Error(1)
}

// FetchRandom mocks the FetchRandom method
func (m *MockRecipeProvider) FetchRandom(ctx context.Context, n int) ([]types.RecipeSummary, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.RecipeSummary), args.Error(1)
}

// FetchFullDetails mocks the FetchFullDetails method
func (m *MockRecipeProvider) FetchFullDetails(ctx context.Context, id int64) (*types.RecipeDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetail), args.Error(1)
}

// MockObjectStorage is a mock implementation of the profile picture bucket
type MockObjectStorage struct {
	mock.Mock
}

// GeneratePresignedUploadURL mocks the GeneratePresignedUploadURL method
func (m *MockObjectStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expiration)
	return args.String(0), args.Error(1)
}

// ObjectURL mocks the ObjectURL method
func (m *MockObjectStorage) ObjectURL(objectKey string) string {
	args := m.Called(objectKey)
	return args.String(0)
}
