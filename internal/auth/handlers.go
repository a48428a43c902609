package auth

import (
	"net/http"

	"xgrowth-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// UserByEmail finds users for token issuance
type UserByEmail interface {
	GetByEmail(email string) (*models.User, error)
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
	users   UserByEmail
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, users UserByEmail) *AuthHandler {
	return &AuthHandler{service: service, users: users}
}

// TokenRequest asks for a token for an existing user
type TokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// IssueToken handles POST /api/auth/token
// @Summary Issue a development token
// @Description Issue a bearer token for an existing user. Only routed outside production.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body TokenRequest true "User email"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Router /api/auth/token [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	user, err := h.users.GetByEmail(req.Email)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	token, err := h.service.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, token)
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate a token
// @Description Validate the bearer token in the Authorization header and return its claims
// @Tags authentication
// @Produce json
// @Success 200 {object} AuthValidateResponse
// @Failure 401 {object} map[string]interface{} "Invalid token"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(header[len(prefix):])
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
