package response

import (
	"net/http"

	"cms-backend/internal/entity"
	"cms-backend/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// CurrentUser retrieves the authenticated user placed on the context by
// the auth middleware.
func CurrentUser(c *gin.Context) (*entity.User, error) {
	value, exists := c.Get("user")
	if !exists {
		return nil, apperror.ErrUnauthenticated
	}

	user, ok := value.(*entity.User)
	if !ok {
		return nil, apperror.ErrUnauthenticated
	}

	return user, nil
}

// Error writes the standardized error envelope. Every error body shares
// the same shape regardless of status code.
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled error")
	}

	c.JSON(code, gin.H{
		"success":       false,
		"error_message": apperror.Message(err),
	})
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
