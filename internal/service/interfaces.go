package service

import (
	"context"
	"time"

	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
	"gorm.io/gorm"
)

// QueryExecutor runs one statement on a pooled connection
type QueryExecutor interface {
	Run(ctx context.Context, op string, fn func(conn *gorm.DB) error) error
}

// RecipeProvider is the external recipe API
type RecipeProvider interface {
	FetchInformation(ctx context.Context, id int64) (*types.RecipeInfo, error)
	Search(ctx context.Context, params types.SearchParams) ([]types.RecipeInfo, error)
	FetchRandom(ctx context.Context, n int) ([]types.RecipeSummary, error)
	FetchFullDetails(ctx context.Context, id int64) (*types.RecipeDetail, error)
}

// TokenStore records revoked token ids until they expire
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// ObjectStorage presigns profile picture uploads
type ObjectStorage interface {
	GeneratePresignedUploadURL(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error)
	ObjectURL(objectKey string) string
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (uint, error)
	Login(ctx context.Context, username, password string) (*types.LoginResult, error)
	Logout(ctx context.Context, token string) error
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for provider recipe operations
type IRecipeService interface {
	Search(ctx context.Context, params types.SearchParams) ([]types.RecipeInfo, error)
	GetRandom(ctx context.Context, n int) ([]types.RecipeSummary, error)
	GetDetails(ctx context.Context, recipeID, source string) (*types.RecipeInfo, error)
	GetFullDetails(ctx context.Context, recipeID string) (*types.RecipeDetail, error)
}

// IUserRecipeService defines the interface for user-authored recipe operations
type IUserRecipeService interface {
	AddRecipe(ctx context.Context, req *types.AddRecipeRequest) (uint, error)
	ListRecipes(ctx context.Context, userID uint) ([]models.UserRecipe, error)
	GetRecipeDetail(ctx context.Context, recipeID uint) (*models.UserRecipe, error)
}

// IFavoritesService defines the interface for favorite operations
type IFavoritesService interface {
	AddFavorite(ctx context.Context, userID uint, recipe *types.FavoriteRecipeInput) error
	ListFavorites(ctx context.Context, userID uint) ([]models.FavoriteRecipe, error)
}

// IProfilePictureService defines the interface for profile picture uploads
type IProfilePictureService interface {
	PresignUpload(ctx context.Context, filename, contentType string) (*types.UploadURL, error)
}

var (
	_ IAuthService           = (*AuthService)(nil)
	_ IRecipeService         = (*RecipeService)(nil)
	_ IUserRecipeService     = (*UserRecipeService)(nil)
	_ IFavoritesService      = (*FavoritesService)(nil)
	_ IProfilePictureService = (*ProfilePictureService)(nil)
	_ TokenStore             = (*RedisTokenStore)(nil)
	_ TokenStore             = (*MemoryTokenStore)(nil)
)
