package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/recipebook/backend/internal/errors"
	"github.com/pageza/recipebook/backend/internal/middleware"
)

// Alive is the liveness probe
func Alive(c *gin.Context) {
	c.String(http.StatusOK, "I'm alive")
}

// respondError renders err with the status of its error code
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	middleware.WriteError(c, err)
}

func invalidBody(c *gin.Context) {
	respondError(c, apperrors.New(apperrors.ErrCodeValidation, "Invalid request body"))
}

// queryUserID reads the userId query parameter. A missing value yields 0 so
// the service reports it; a malformed value is rejected here.
func queryUserID(c *gin.Context) (uint, bool) {
	raw := c.Query("userId")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, apperrors.New(apperrors.ErrCodeValidation, "Invalid userId"))
		return 0, false
	}
	return uint(id), true
}
