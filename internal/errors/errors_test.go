package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "Recipe not found")
	require.NotNil(t, err)
	assert.Equal(t, ErrCodeNotFound, err.Code)
	assert.Equal(t, "Recipe not found", err.Message)
	assert.Nil(t, err.Cause)
}

func TestWrapWithContext(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := WrapWithContext(ErrCodeQuery, "query failed", cause, map[string]any{"op": "users.insert"})

	assert.True(t, stderrors.Is(err, cause))
	assert.Equal(t, "users.insert", err.Context["op"])
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeValidation, "Invalid input data"),
			expected: "[VALIDATION] Invalid input data",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeProvider, "provider request failed", stderrors.New("timeout")),
			expected: "[PROVIDER] provider request failed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("register: %w", New(ErrCodeConflict, "Username already taken"))

	assert.Equal(t, ErrCodeConflict, CodeOf(wrapped))
	assert.True(t, Is(wrapped, ErrCodeConflict))
	assert.False(t, Is(wrapped, ErrCodeValidation))
	assert.Equal(t, ErrCodeInternal, CodeOf(stderrors.New("boom")))
	assert.False(t, Is(nil, ErrCodeInternal))
	assert.Equal(t, "Username already taken", PublicMessage(wrapped))
	assert.Equal(t, "boom", PublicMessage(stderrors.New("boom")))
}

func TestHTTPStatus(t *testing.T) {
	tests := map[ErrorCode]int{
		ErrCodeValidation:      http.StatusBadRequest,
		ErrCodeInvalidArgument: http.StatusBadRequest,
		ErrCodeAuthentication:  http.StatusUnauthorized,
		ErrCodeNotFound:        http.StatusNotFound,
		ErrCodeConflict:        http.StatusConflict,
		ErrCodeQuery:           http.StatusInternalServerError,
		ErrCodeProvider:        http.StatusBadGateway,
		ErrCodeUnavailable:     http.StatusServiceUnavailable,
		ErrCodeInternal:        http.StatusInternalServerError,
	}

	for code, status := range tests {
		assert.Equal(t, status, HTTPStatus(code), code)
	}
}
