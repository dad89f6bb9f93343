package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipebook/backend/internal/middleware"
	"github.com/pageza/recipebook/backend/internal/service"
	"github.com/pageza/recipebook/backend/internal/types"
)

// AuthHandler serves registration, login and logout
type AuthHandler struct {
	authService    service.IAuthService
	pictureService service.IProfilePictureService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.IAuthService, pictureService service.IProfilePictureService) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		pictureService: pictureService,
	}
}

// LogoutPaths are exempt from token validation so a stale token can still log out
var LogoutPaths = []string{"/auth/Logout", "/auth/logout"}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/Logout", h.Logout)
		auth.POST("/logout", h.Logout)
		auth.POST("/profile-pic", h.ProfilePicUploadURL)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	userID, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User successfully registered",
		"success": true,
		"user_id": userID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "login succeeded",
		"user_id":    result.UserID,
		"token":      result.Token,
		"expires_at": result.ExpiresAt,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := middleware.BearerToken(c)
	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "logout succeeded",
	})
}

func (h *AuthHandler) ProfilePicUploadURL(c *gin.Context) {
	var req types.ProfilePicRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Filename == "" {
		invalidBody(c)
		return
	}

	upload, err := h.pictureService.PresignUpload(c.Request.Context(), req.Filename, req.ContentType)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, upload)
}
