package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/pageza/recipebook/backend/internal/database"
	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

const seedPassword = "seed1!pw"

type seedUser struct {
	username  string
	firstName string
	lastName  string
	country   string
	recipe    string
	minutes   int
}

var seedUsers = []seedUser{
	{"johndoe", "John", "Doe", "USA", "Weeknight Chili", 45},
	{"janesmit", "Jane", "Smith", "UK", "Lemon Drizzle Cake", 60},
	{"bobwil", "Bob", "Wilson", "Canada", "Maple Oatmeal", 10},
	{"alicec", "Alice", "Cooper", "Israel", "Shakshuka", 25},
}

func seed(ctx context.Context, _ *cli.Command) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	db, err := database.Connect(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, logger); err != nil {
		return err
	}

	exec := database.NewExecutor(db, logger)
	auth := service.NewAuthService(exec, service.NewMemoryTokenStore(), service.AuthConfig{
		JWTSecret:  cfg.JWTSecret,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
	})
	return seedDemoData(ctx, auth, service.NewUserRecipeService(exec), logger)
}

// seedDemoData registers the demo users and gives each one recipe. Users
// that already exist are left untouched, so it is safe to run repeatedly.
func seedDemoData(ctx context.Context, auth service.IAuthService, recipes service.IUserRecipeService, logger *slog.Logger) error {
	for _, u := range seedUsers {
		userID, err := auth.Register(ctx, &types.RegisterRequest{
			Username:          u.username,
			FirstName:         u.firstName,
			LastName:          u.lastName,
			Country:           u.country,
			Password:          seedPassword,
			ConfirmedPassword: seedPassword,
			Email:             u.username + "@example.com",
		})
		if apperrors.Is(err, apperrors.ErrCodeConflict) {
			logger.Info("seed user already exists, skipping", "username", u.username)
			continue
		}
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}

		minutes := u.minutes
		_, err = recipes.AddRecipe(ctx, &types.AddRecipeRequest{
			UserID:         userID,
			Title:          u.recipe,
			Image:          "https://img.example.com/seed/" + u.username + ".jpg",
			ReadyInMinutes: &minutes,
			Vegetarian:     true,
			ExtendedIngredients: models.Ingredients{
				{Name: "salt", Original: "a pinch of salt", Amount: 1, Unit: "pinch", Meta: []string{}},
			},
			AnalyzedInstructions: models.Instructions{
				{Steps: []models.Step{{Number: 1, Step: "Cook " + u.recipe + ".", Ingredients: []models.StepItem{}, Equipment: []models.StepItem{}}}},
			},
		})
		if err != nil {
			return fmt.Errorf("seed recipe for %s: %w", u.username, err)
		}
		logger.Info("seeded user", "username", u.username, "user_id", userID)
	}
	return nil
}
