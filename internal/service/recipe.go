package service

import (
	"context"
	"strconv"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
	"gorm.io/gorm"
)

const (
	DefaultSearchNumber = 5
	DefaultRandomCount  = 3

	SourceAPI = "api"
	SourceDB  = "db"
)

// RecipeService serves provider recipes and the db-backed detail lookup
type RecipeService struct {
	provider RecipeProvider
	exec     QueryExecutor
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(provider RecipeProvider, exec QueryExecutor) *RecipeService {
	return &RecipeService{
		provider: provider,
		exec:     exec,
	}
}

// Search queries the provider by recipe name with optional filters
func (s *RecipeService) Search(ctx context.Context, params types.SearchParams) ([]types.RecipeInfo, error) {
	if params.Query == "" {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Search query (recipe name) is required")
	}
	if params.Number == 0 {
		params.Number = DefaultSearchNumber
	}
	return s.provider.Search(ctx, params)
}

// GetRandom returns n random recipe summaries, DefaultRandomCount when n is 0
func (s *RecipeService) GetRandom(ctx context.Context, n int) ([]types.RecipeSummary, error) {
	if n == 0 {
		n = DefaultRandomCount
	}
	return s.provider.FetchRandom(ctx, n)
}

// GetDetails returns one recipe from the provider (source "api") or from the
// user recipes table (source "db").
func (s *RecipeService) GetDetails(ctx context.Context, recipeID, source string) (*types.RecipeInfo, error) {
	if source != SourceAPI && source != SourceDB {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Invalid parameters for fetching recipe details")
	}

	id, err := strconv.ParseInt(recipeID, 10, 64)
	if err != nil || id <= 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Invalid recipe ID")
	}

	if source == SourceAPI {
		return s.provider.FetchInformation(ctx, id)
	}

	var recipe models.UserRecipe
	err = s.exec.Run(ctx, "user_recipes.by_id", func(conn *gorm.DB) error {
		return conn.First(&recipe, id).Error
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "Recipe not found in DB.")
		}
		return nil, err
	}

	return types.RecipeInfoFromUserRecipe(&recipe), nil
}

// GetFullDetails returns the fixed detail projection of a provider recipe
func (s *RecipeService) GetFullDetails(ctx context.Context, recipeID string) (*types.RecipeDetail, error) {
	id, err := strconv.ParseInt(recipeID, 10, 64)
	if err != nil {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Invalid recipe ID")
	}
	return s.provider.FetchFullDetails(ctx, id)
}
