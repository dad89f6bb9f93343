package service

import (
	"context"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
	"gorm.io/gorm"
)

// UserRecipeService handles recipes authored by users
type UserRecipeService struct {
	exec QueryExecutor
}

// NewUserRecipeService creates a new UserRecipeService instance
func NewUserRecipeService(exec QueryExecutor) *UserRecipeService {
	return &UserRecipeService{exec: exec}
}

// AddRecipe stores a new user recipe and returns its id
func (s *UserRecipeService) AddRecipe(ctx context.Context, req *types.AddRecipeRequest) (uint, error) {
	if req == nil || req.UserID == 0 || req.Title == "" || req.Image == "" || req.ReadyInMinutes == nil || *req.ReadyInMinutes <= 0 {
		return 0, apperrors.New(apperrors.ErrCodeValidation, "Missing required data: userId, title, image, or readyInMinutes")
	}

	likes := 0
	if req.AggregateLikes != nil {
		likes = *req.AggregateLikes
	}

	recipe := models.UserRecipe{
		UserID: req.UserID,
		RecipeFields: models.RecipeFields{
			Title:                req.Title,
			Image:                req.Image,
			ReadyInMinutes:       *req.ReadyInMinutes,
			Vegetarian:           req.Vegetarian,
			Vegan:                req.Vegan,
			GlutenFree:           req.GlutenFree,
			ExtendedIngredients:  req.ExtendedIngredients,
			AnalyzedInstructions: req.AnalyzedInstructions,
			AggregateLikes:       likes,
			SourceName:           req.SourceName,
			SourceURL:            req.SourceURL,
		},
	}

	err := s.exec.Run(ctx, "user_recipes.insert", func(conn *gorm.DB) error {
		return conn.Create(&recipe).Error
	})
	if err != nil {
		return 0, err
	}
	return recipe.ID, nil
}

// ListRecipes returns every recipe authored by userID, oldest first
func (s *UserRecipeService) ListRecipes(ctx context.Context, userID uint) ([]models.UserRecipe, error) {
	if userID == 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Missing userId")
	}

	recipes := []models.UserRecipe{}
	err := s.exec.Run(ctx, "user_recipes.by_user", func(conn *gorm.DB) error {
		return conn.Where("user_id = ?", userID).Order("id").Find(&recipes).Error
	})
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipeDetail returns one user recipe with its ingredients and instructions decoded
func (s *UserRecipeService) GetRecipeDetail(ctx context.Context, recipeID uint) (*models.UserRecipe, error) {
	if recipeID == 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Invalid recipe ID")
	}

	var recipe models.UserRecipe
	err := s.exec.Run(ctx, "user_recipes.by_id", func(conn *gorm.DB) error {
		return conn.First(&recipe, recipeID).Error
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeNotFound, "Recipe not found")
		}
		return nil, err
	}
	return &recipe, nil
}
