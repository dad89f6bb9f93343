package service

import (
	"context"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
	"gorm.io/gorm"
)

// FavoritesService handles per-user favorite recipe snapshots
type FavoritesService struct {
	exec QueryExecutor
}

// NewFavoritesService creates a new FavoritesService instance
func NewFavoritesService(exec QueryExecutor) *FavoritesService {
	return &FavoritesService{exec: exec}
}

// AddFavorite stores a snapshot of recipe in userID's favorites
func (s *FavoritesService) AddFavorite(ctx context.Context, userID uint, recipe *types.FavoriteRecipeInput) error {
	if userID == 0 || recipe == nil || recipe.ID == 0 {
		return apperrors.New(apperrors.ErrCodeValidation, "Missing userId or recipe data")
	}

	favorite := models.FavoriteRecipe{
		UserID:   userID,
		RecipeID: recipe.ID,
		RecipeFields: models.RecipeFields{
			Title:                recipe.Title,
			Image:                recipe.Image,
			ReadyInMinutes:       recipe.ReadyInMinutes,
			Vegetarian:           recipe.Vegetarian,
			Vegan:                recipe.Vegan,
			GlutenFree:           recipe.GlutenFree,
			ExtendedIngredients:  recipe.ExtendedIngredients,
			AnalyzedInstructions: recipe.AnalyzedInstructions,
			AggregateLikes:       recipe.AggregateLikes,
			SourceName:           recipe.SourceName,
			SourceURL:            recipe.SourceURL,
		},
	}

	err := s.exec.Run(ctx, "favorites.insert", func(conn *gorm.DB) error {
		return conn.Create(&favorite).Error
	})
	if apperrors.Is(err, apperrors.ErrCodeConflict) {
		return apperrors.Wrap(apperrors.ErrCodeConflict, "Recipe already in favorites", err)
	}
	return err
}

// ListFavorites returns userID's favorites in the order they were added
func (s *FavoritesService) ListFavorites(ctx context.Context, userID uint) ([]models.FavoriteRecipe, error) {
	if userID == 0 {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Missing userId")
	}

	favorites := []models.FavoriteRecipe{}
	err := s.exec.Run(ctx, "favorites.by_user", func(conn *gorm.DB) error {
		return conn.Where("user_id = ?", userID).Order("id").Find(&favorites).Error
	})
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
