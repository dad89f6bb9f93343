package service

import (
	"regexp"
	"strings"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/types"
)

const passwordSpecials = "!@#$%^&*"

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9]{3,8}$`)
	passwordCharset = regexp.MustCompile(`^[A-Za-z0-9!@#$%^&*]{5,10}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// validPassword accepts 5 to 10 characters from the allowed set with at
// least one digit and one special character.
func validPassword(password string) bool {
	return passwordCharset.MatchString(password) &&
		strings.ContainsAny(password, "0123456789") &&
		strings.ContainsAny(password, passwordSpecials)
}

// validateRegistration checks a registration request in the order the
// client expects to see the messages.
func validateRegistration(req *types.RegisterRequest) error {
	if req == nil ||
		req.Username == "" ||
		req.FirstName == "" ||
		req.LastName == "" ||
		req.Country == "" ||
		req.Password == "" ||
		req.Email == "" {
		return apperrors.New(apperrors.ErrCodeValidation, "All fields are required")
	}

	if req.Password != req.ConfirmedPassword {
		return apperrors.New(apperrors.ErrCodeValidation, "Passwords do not match")
	}

	if !usernamePattern.MatchString(req.Username) ||
		!validPassword(req.Password) ||
		!emailPattern.MatchString(req.Email) {
		return apperrors.New(apperrors.ErrCodeValidation, "Invalid input data")
	}

	return nil
}
