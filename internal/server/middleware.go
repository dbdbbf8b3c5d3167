package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/UnknownOlympus/hera/internal/auth"
	"github.com/UnknownOlympus/hera/internal/metrics"
	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Authenticate is the authorization gate. It extracts the bearer token,
// verifies it, and attaches the decoded identity to the request
// context. Missing header, wrong scheme and invalid token all
// short-circuit with the same unauthorized response; no downstream
// work happens for an unverified request.
func Authenticate(tokener *auth.Tokener) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Expecting: Bearer <token>
		authStr := c.GetHeader("Authorization")

		parts := strings.Split(authStr, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		identity, err := tokener.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole gates an operation to the given roles. It assumes
// Authenticate already ran.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := identityFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "attempted action is not allowed"})
	}
}

// identityFrom retrieves the identity attached by Authenticate.
func identityFrom(c *gin.Context) (models.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return models.Identity{}, false
	}
	identity, ok := value.(models.Identity)
	return identity, ok
}

// Observe records request counts and durations per route.
func Observe(mts *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		duration := time.Since(startTime).Seconds()
		mts.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
		mts.HTTPRequests.WithLabelValues(c.Request.Method, path, http.StatusText(c.Writer.Status())).Inc()
	}
}
