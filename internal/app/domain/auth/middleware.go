package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/geoglobe/internal/app/models"
)

const (
	CookieName = "auth_token"

	authStateKey = "auth_state"
)

// OptionalAuth resolves the auth cookie into an AuthState. Requests without
// a valid token continue signed out.
func OptionalAuth(tokens *TokenService, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		state := models.SignedOut()

		if token, err := c.Cookie(CookieName); err == nil && token != "" {
			claims, err := tokens.ValidateToken(token)
			switch {
			case err == nil:
				state = models.SignedIn(claims.User())
			case errors.Is(err, ErrExpiredToken):
				logger.Debug("Auth token expired", zap.String("path", c.Request.URL.Path))
				clearCookie(c)
			default:
				logger.Warn("Rejected auth token", zap.Error(err))
				clearCookie(c)
			}
		}

		c.Set(authStateKey, state)
		c.Next()
	}
}

// StateFromContext returns the AuthState stored by OptionalAuth.
func StateFromContext(c *gin.Context) models.AuthState {
	v, ok := c.Get(authStateKey)
	if !ok {
		return models.SignedOut()
	}
	state, ok := v.(models.AuthState)
	if !ok {
		return models.SignedOut()
	}
	return state.Normalize()
}

// FromContext builds the request's auth provider.
func FromContext(c *gin.Context) Provider {
	return NewStatic(StateFromContext(c))
}

func clearCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
