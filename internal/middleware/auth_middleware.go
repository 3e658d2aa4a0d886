package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/wildtrack/wildlife-tracker/internal/app/models"
	"github.com/wildtrack/wildlife-tracker/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// TokenValidator decodes a bearer credential into a subject
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Subject, error)
}

// AuthMiddleware for authentication
type AuthMiddleware struct {
	tokens TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(tokens TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// JWTAuth middleware for JWT token validation. A missing header, a malformed header and a
// token that fails validation all produce the same 401 response.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			m.reject(c)
			return
		}

		subject, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			m.reject(c)
			return
		}

		c.Set(ContextUserID, subject.UserID)
		c.Set(ContextUserRole, subject.Role)

		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	HandleAPIError(c, auth.ErrInvalidToken)
}

// CurrentUserID returns the subject stored by JWTAuth
func CurrentUserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// CurrentUserRole returns the role claim stored by JWTAuth
func CurrentUserRole(c *gin.Context) models.UserRole {
	role, _ := c.Get(ContextUserRole)
	r, _ := role.(models.UserRole)
	return r
}
