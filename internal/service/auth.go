package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/models"
	"github.com/pageza/recipebook/backend/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenIssuer = "recipebook"

// AuthConfig holds the auth service settings
type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// AuthService registers users and issues, validates and revokes their tokens
type AuthService struct {
	exec       QueryExecutor
	tokens     TokenStore
	jwtSecret  []byte
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time
}

// NewAuthService creates an auth service, defaulting unset TTL and bcrypt cost
func NewAuthService(exec QueryExecutor, tokens TokenStore, cfg AuthConfig) *AuthService {
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		exec:       exec,
		tokens:     tokens,
		jwtSecret:  []byte(cfg.JWTSecret),
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
		now:        time.Now,
	}
}

// Register validates req, stores the user with a bcrypt hash and returns the new id
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (uint, error) {
	if err := validateRegistration(req); err != nil {
		return 0, err
	}

	// Check if username is already taken
	var taken int64
	err := s.exec.Run(ctx, "users.count_by_username", func(conn *gorm.DB) error {
		return conn.Model(&models.User{}).Where("username = ?", req.Username).Count(&taken).Error
	})
	if err != nil {
		return 0, err
	}
	if taken > 0 {
		return 0, apperrors.New(apperrors.ErrCodeConflict, "Username already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to hash password", err)
	}

	user := models.User{
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Country:    req.Country,
		Password:   string(hashedPassword),
		Email:      req.Email,
		ProfilePic: req.ProfilePic,
	}
	err = s.exec.Run(ctx, "users.insert", func(conn *gorm.DB) error {
		return conn.Create(&user).Error
	})
	if err != nil {
		// Lost a race with a concurrent registration
		if apperrors.Is(err, apperrors.ErrCodeConflict) {
			return 0, apperrors.Wrap(apperrors.ErrCodeConflict, "Username already taken", err)
		}
		return 0, err
	}

	return user.ID, nil
}

// Login checks the credentials and issues a bearer token
func (s *AuthService) Login(ctx context.Context, username, password string) (*types.LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Username and password are required")
	}

	var user models.User
	err := s.exec.Run(ctx, "users.by_username", func(conn *gorm.DB) error {
		return conn.Where("username = ?", username).First(&user).Error
	})
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return nil, apperrors.New(apperrors.ErrCodeAuthentication, "Username or Password incorrect")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.New(apperrors.ErrCodeAuthentication, "Username or Password incorrect")
	}

	token, expiresAt, err := s.generateToken(&user)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to sign token", err)
	}

	return &types.LoginResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// Logout revokes token until it expires. An empty or unusable token is a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	ttl := claims.ExpiresAt.Time.Sub(s.now())
	if ttl <= 0 {
		return nil
	}

	if err := s.tokens.Revoke(ctx, claims.ID, ttl); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to revoke token", err)
	}
	return nil
}

// ValidateToken checks the signature, expiry and revocation state of token
func (s *AuthService) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeAuthentication, "Invalid or expired token", err)
	}

	revoked, err := s.tokens.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeUnavailable, "failed to check token revocation", err)
	}
	if revoked {
		return nil, apperrors.New(apperrors.ErrCodeAuthentication, "Token has been revoked")
	}

	return claims, nil
}

func (s *AuthService) generateToken(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)

	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   user.ID,
		Username: user.Username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *AuthService) parseToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.ID == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
