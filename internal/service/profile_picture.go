package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/types"
)

const (
	profilePicturePrefix = "profile-pictures/"
	uploadURLExpiry      = 15 * time.Minute
)

var profilePictureTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// ProfilePictureService issues presigned uploads for registration profile pictures
type ProfilePictureService struct {
	storage ObjectStorage
	now     func() time.Time
}

// NewProfilePictureService creates the service; storage may be nil when no bucket is configured
func NewProfilePictureService(storage ObjectStorage) *ProfilePictureService {
	return &ProfilePictureService{
		storage: storage,
		now:     time.Now,
	}
}

// PresignUpload returns a presigned PUT URL for a new profile picture and the
// public URL the client should send as profilePic when registering.
func (s *ProfilePictureService) PresignUpload(ctx context.Context, filename, contentType string) (*types.UploadURL, error) {
	if s.storage == nil {
		return nil, apperrors.New(apperrors.ErrCodeUnavailable, "profile picture storage is not configured")
	}

	ext := strings.ToLower(filepath.Ext(filename))
	expected, ok := profilePictureTypes[ext]
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Unsupported image type")
	}
	if contentType == "" {
		contentType = expected
	}
	if contentType != expected {
		return nil, apperrors.New(apperrors.ErrCodeValidation, "Content type does not match file extension")
	}

	key := profilePicturePrefix + uuid.NewString() + ext
	uploadURL, err := s.storage.GeneratePresignedUploadURL(ctx, key, contentType, uploadURLExpiry)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeProvider, "failed to presign upload", err)
	}

	return &types.UploadURL{
		UploadURL: uploadURL,
		ObjectURL: s.storage.ObjectURL(key),
		Key:       key,
		ExpiresAt: s.now().Add(uploadURLExpiry),
	}, nil
}
