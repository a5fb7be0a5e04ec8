package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/auth"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
)

const identityKey = "identity"

// RequireAuth validates the claims token from the Authorization header or
// the auth cookie and stores the caller identity in the context for
// handlers further down the chain.
func RequireAuth(c *gin.Context) {
	token := auth.TokenFromRequest(c)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		c.Abort()
		return
	}

	identity, err := auth.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	c.Set(identityKey, identity)
	c.Next()
}

// RequireAdmin rejects callers whose token lacks the admin flag. It must
// run after RequireAuth, and it fires before any snapshot is taken.
func RequireAdmin(c *gin.Context) {
	identity, ok := Identity(c)
	if !ok || !identity.IsAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin required"})
		c.Abort()
		return
	}
	c.Next()
}

// Identity returns the caller identity stored by RequireAuth.
func Identity(c *gin.Context) (models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return models.Identity{}, false
	}
	identity, ok := v.(models.Identity)
	return identity, ok
}
