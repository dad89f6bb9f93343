package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pageza/recipebook/backend/internal/models"
)

// Migrate creates or updates the users, UserRecipes and FavoriteRecipes tables
func Migrate(ctx context.Context, db *DB, log *slog.Logger) error {
	log.Info("running schema migration", "dialect", db.Dialector.Name())

	if err := db.WithContext(ctx).AutoMigrate(
		&models.User{},
		&models.UserRecipe{},
		&models.FavoriteRecipe{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info("schema migration complete")
	return nil
}
