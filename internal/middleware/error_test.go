package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.New(apperrors.ErrCodeValidation, "All fields are required"), http.StatusBadRequest, "All fields are required"},
		{"conflict", apperrors.New(apperrors.ErrCodeConflict, "Username already taken"), http.StatusConflict, "Username already taken"},
		{"not found", apperrors.New(apperrors.ErrCodeNotFound, "Recipe not found"), http.StatusNotFound, "Recipe not found"},
		{"provider", apperrors.Wrap(apperrors.ErrCodeProvider, "recipe search failed", errors.New("boom")), http.StatusBadGateway, "recipe search failed"},
		{"query", apperrors.WrapWithContext(apperrors.ErrCodeQuery, "database query failed", errors.New("syntax"), map[string]any{"op": "users.insert"}), http.StatusInternalServerError, "database query failed"},
		{"plain error", errors.New("Test error"), http.StatusInternalServerError, "Test error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(ErrorHandler())
			router.GET("/", func(c *gin.Context) {
				_ = c.Error(tt.err)
			})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.status, rr.Code)
			body := decodeError(t, rr)
			assert.Equal(t, tt.message, body.Message)
			assert.False(t, body.Success)
		})
	}
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
		_ = c.Error(errors.New("late"))
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic(errors.New("something broke"))
	})
	router.GET("/panic-string", func(c *gin.Context) {
		panic("nope")
	})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "something broke", decodeError(t, rr).Message)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/panic-string", nil))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Internal Server Error", decodeError(t, rr).Message)
}
