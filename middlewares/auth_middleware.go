package middlewares

import (
	"context"

	"HostelHub/models"
	"HostelHub/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "decoded"
	EmailKey  = "email"
)

// UserFinder loads the stored user for an authenticated email.
type UserFinder interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// VerifyToken requires a valid bearer token and stores its claims and email
// claim on the context.
func VerifyToken(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			AbortWithError(c, models.KindUnauthenticated, "unauthorized access", nil)
			return
		}

		tokenString, err := utils.BearerToken(header)
		if err != nil {
			AbortWithError(c, models.KindUnauthenticated, "unauthorized access", err)
			return
		}

		claims, err := utils.ParseJWT(tokenString, secret)
		if err != nil {
			AbortWithError(c, models.KindUnauthenticated, "unauthorized access", err)
			return
		}

		c.Set(ClaimsKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Set(EmailKey, email)
		}
		c.Next()
	}
}

// VerifyAdmin must run after VerifyToken. The role is read from the store on
// every call so a demotion takes effect immediately.
func VerifyAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthenticatedEmail(c)
		if email == "" {
			AbortWithError(c, models.KindForbidden, "forbidden access", nil)
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			AbortWithError(c, models.KindStoreFailure, "Failed to verify admin", err)
			return
		}
		if !user.IsAdmin() {
			AbortWithError(c, models.KindForbidden, "forbidden access", nil)
			return
		}
		c.Next()
	}
}

// SelfOnly rejects requests whose path parameter differs from the
// authenticated email. There is no admin override.
func SelfOnly(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := AuthenticatedEmail(c)
		if email == "" || c.Param(param) != email {
			AbortWithError(c, models.KindForbidden, "forbidden access", nil)
			return
		}
		c.Next()
	}
}

// AuthenticatedEmail is the email claim set by VerifyToken, or "".
func AuthenticatedEmail(c *gin.Context) string {
	return c.GetString(EmailKey)
}

// Claims returns the decoded token set by VerifyToken.
func Claims(c *gin.Context) jwt.MapClaims {
	if v, ok := c.Get(ClaimsKey); ok {
		if claims, ok := v.(jwt.MapClaims); ok {
			return claims
		}
	}
	return nil
}
