package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/commercekit/storefront/auth"
	"github.com/commercekit/storefront/auth/authctx"
	"github.com/commercekit/storefront/logger"
)

// Authentication rejection messages. Deliberately generic: the response
// never distinguishes an expired token from a tampered one, or an unknown
// account from a wrong password.
const (
	msgNoToken      = "Access denied. No token provided."
	msgInvalidToken = "Invalid or expired token."
)

// AuthConfig configures the bearer-token authentication middleware.
type AuthConfig struct {
	// Validator validates a token string and returns the claims.
	Validator auth.TokenValidator
	// SkipPaths are URL path prefixes that bypass authentication.
	SkipPaths []string
}

// Auth returns a Gin middleware that gates requests on a valid bearer token.
//
// The gate extracts the token from an "Authorization: Bearer <token>" header.
// A missing or malformed header is rejected without consulting the validator.
// A token the validator rejects, for any reason, is rejected with the same
// generic message. On success the claims are attached to the request context
// and the handler chain continues.
//
// The gate is idempotent: it holds no per-request state beyond the context
// attachment, so repeated requests with the same token yield the same outcome.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range cfg.SkipPaths {
			if strings.HasPrefix(path, skip) {
				c.Next()
				return
			}
		}

		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msgNoToken,
			})
			return
		}

		claims, err := cfg.Validator.ValidateToken(token)
		if err != nil {
			// The precise failure kind matters for operators, not clients.
			logger.Debug("Token rejected", map[string]interface{}{
				"path":   path,
				"reason": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": msgInvalidToken,
			})
			return
		}

		c.Request = c.Request.WithContext(authctx.Set(c.Request.Context(), claims))
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value.
// Returns false for an absent header, a non-Bearer scheme, or an empty token.
func bearerToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
