package middleware

import (
	"strings"

	"cms-backend/internal/repository"
	"cms-backend/pkg/apperror"
	"cms-backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenRepo repository.TokenRepository
	userRepo  repository.UserRepository
}

func NewAuthMiddleware(tokenRepo repository.TokenRepository, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
	}
}

// RequireAuth resolves the opaque bearer token to its user and puts the
// user on the context for handlers.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && (parts[0] == "Bearer" || parts[0] == "Token") {
				key = parts[1]
			}
		}

		if key == "" {
			response.AbortError(c, apperror.New(apperror.ErrUnauthenticated, "authorization required"))
			return
		}

		token, err := m.tokenRepo.FindByKey(c.Request.Context(), key)
		if err != nil {
			response.AbortError(c, apperror.New(apperror.ErrUnauthenticated, "invalid token"))
			return
		}

		user, err := m.userRepo.FindByID(c.Request.Context(), token.UserID)
		if err != nil {
			response.AbortError(c, apperror.New(apperror.ErrUnauthenticated, "invalid token"))
			return
		}

		c.Set("user", user)
		c.Next()
	}
}
