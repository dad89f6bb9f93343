package mocks

import (
	"context"

	"github.com/pageza/recipebook/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockAuthService is a mock implementation of the auth service
type MockAuthService struct {
	mock.Mock
}

// Register mocks the Register method
func (m *MockAuthService) Register(ctx context.Context, req *types.RegisterRequest) (uint, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uint), args.Error(1)
}

// Login mocks the Login method
func (m *MockAuthService) Login(ctx context.Context, username, password string) (*types.LoginResult, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.LoginResult), args.Error(1)
}

// Logout mocks the Logout method
func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

// ValidateToken mocks the ValidateToken method
func (m *MockAuthService) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.TokenClaims), args.Error(1)
}

// MockProfilePictureService is a mock implementation of the profile picture service
type MockProfilePictureService struct {
	mock.Mock
}

// PresignUpload mocks the PresignUpload method
func (m *MockProfilePictureService) PresignUpload(ctx context.Context, filename, contentType string) (*types.UploadURL, error) {
	args := m.Called(ctx, filename, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UploadURL), args.Error(1)
}
