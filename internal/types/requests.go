package types

import (
	"time"

	"github.com/pageza/recipebook/backend/internal/models"
)

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username          string  `json:"username"`
	FirstName         string  `json:"firstname"`
	LastName          string  `json:"lastname"`
	Country           string  `json:"country"`
	Password          string  `json:"password"`
	ConfirmedPassword string  `json:"confirmedPassword"`
	Email             string  `json:"email"`
	ProfilePic        *string `json:"profilePic"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is returned by a successful login
type LoginResult struct {
	UserID    uint      `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AddRecipeRequest represents the request body for adding a user recipe
type AddRecipeRequest struct {
	UserID               uint                `json:"userId"`
	Title                string              `json:"title"`
	Image                string              `json:"image"`
	ReadyInMinutes       *int                `json:"readyInMinutes"`
	Vegetarian           bool                `json:"vegetarian"`
	Vegan                bool                `json:"vegan"`
	GlutenFree           bool                `json:"glutenFree"`
	ExtendedIngredients  models.Ingredients  `json:"extendedIngredients"`
	AnalyzedInstructions models.Instructions `json:"analyzedInstructions"`
	AggregateLikes       *int                `json:"aggregateLikes"`
	SourceName           *string             `json:"sourceName"`
	SourceURL            *string             `json:"sourceUrl"`
}

// FavoriteRecipeInput is the recipe snapshot sent when favoriting a provider recipe
type FavoriteRecipeInput struct {
	ID                   int64               `json:"id"`
	Title                string              `json:"title"`
	Image                string              `json:"image"`
	ReadyInMinutes       int                 `json:"readyInMinutes"`
	Vegetarian           bool                `json:"vegetarian"`
	Vegan                bool                `json:"vegan"`
	GlutenFree           bool                `json:"glutenFree"`
	ExtendedIngredients  models.Ingredients  `json:"extendedIngredients"`
	AnalyzedInstructions models.Instructions `json:"analyzedInstructions"`
	AggregateLikes       int                 `json:"aggregateLikes"`
	SourceName           *string             `json:"sourceName"`
	SourceURL            *string             `json:"sourceUrl"`
}

// AddFavoriteRequest represents the request body for adding a favorite
type AddFavoriteRequest struct {
	UserID uint                 `json:"userId"`
	Recipe *FavoriteRecipeInput `json:"recipe"`
}

// ProfilePicRequest represents the request body for a profile picture upload URL
type ProfilePicRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}

// UploadURL describes a presigned profile picture upload
type UploadURL struct {
	UploadURL string    `json:"upload_url"`
	ObjectURL string    `json:"url"`
	Key       string    `json:"key"`
	ExpiresAt time.Time `json:"expires_at"`
}
