package router

import (
	"net/http"

	"github.com/cavalaria/backend/internal/auth"
	v1 "github.com/cavalaria/backend/internal/controllers/v1"
	"github.com/cavalaria/backend/internal/httputil"
	"github.com/cavalaria/backend/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	contextUsername = "cavalaria-username"
	contextRole     = "cavalaria-role"
)

// URLMiddleware sets the URL the request was made against on the context,
// so that handlers can construct absolute links.
func URLMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(string(models.DBContextURL), httputil.RequestHost(c))
	}
}

// Authenticate verifies the bearer token of the request and stores the
// claims on the context.
//
// OPTIONS requests pass without a token, they carry no data and CORS
// preflights cannot send the Authorization header.
func Authenticate(issuer *auth.Issuer, blacklist *auth.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := v1.BearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrTokenInvalid.Error()})
			return
		}

		claims, err := issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		if blacklist != nil {
			revoked, err := blacklist.Contains(c.Request.Context(), token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}

			if revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.ErrTokenRevoked.Error()})
				return
			}
		}

		c.Set(contextUsername, claims.Username)
		c.Set(contextRole, string(claims.Role))
		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the admin role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		if c.GetString(contextRole) != string(models.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "this action requires the admin role"})
			return
		}

		c.Next()
	}
}
