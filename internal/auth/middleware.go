package auth

import (
	"net/http"
	"strings"

	"xgrowth-backend/internal/database/models"
	"xgrowth-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserLookup loads the user behind a token
type UserLookup interface {
	GetByID(id uuid.UUID) (*models.User, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
	users   UserLookup
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, users UserLookup) *AuthMiddleware {
	return &AuthMiddleware{service: service, users: users}
}

// RequireAuth validates JWT tokens, loads the user and sets the principal.
// Organization and company are read from the stored user on every request so
// membership changes apply without reissuing tokens.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": "malformed user id"})
			c.Abort()
			return
		}

		user, err := m.users.GetByID(userID)
		if err != nil || user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		principal := PrincipalFromUser(user)
		SetPrincipal(c, principal)
		c.Request = c.Request.WithContext(logger.ContextWithUser(c.Request.Context(), principal.Email))

		c.Next()
	}
}
