package middleware

import (
	"errors"
	"net/http"

	"food-delivery-api/auth"
	"food-delivery-api/models"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey  = "currentUser"
	tokenContextKey = "currentToken"
)

// AuthRequired validates the opaque token in the Authorization header and
// injects the resolved user and token into the request context. The header
// carries the exact token bytes, no scheme prefix. Missing and unknown
// tokens share one message so the response does not reveal whether a token
// ever existed; expired tokens answer with the same status but their own
// message.
func AuthRequired(store *auth.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("Authorization")
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		user, token, err := store.Validate(tokenStr)
		switch {
		case err == nil:
			c.Set(userContextKey, user)
			c.Set(tokenContextKey, token)
			c.Next()
		case errors.Is(err, auth.ErrTokenExpired):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
		case errors.Is(err, auth.ErrTokenNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
	}
}

// CurrentUser extracts the authenticated user from context. Only valid
// behind AuthRequired.
func CurrentUser(c *gin.Context) *models.User {
	val, _ := c.Get(userContextKey)
	user, _ := val.(*models.User)
	return user
}

// CurrentToken extracts the bearer token that authenticated this request.
func CurrentToken(c *gin.Context) *models.AuthToken {
	val, _ := c.Get(tokenContextKey)
	token, _ := val.(*models.AuthToken)
	return token
}
