package middleware

import (
	"net/http"
	"strings"

	"gallery-storefront/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const claimsKey = "claims"

// Claims is the payload of an admin session token.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Session tokens are HS256 only and must expire.
var tokenParser = jwt.NewParser(
	jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	jwt.WithExpirationRequired(),
)

// AuthMiddleware requires a valid bearer token signed with secret and stores
// its claims on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	keyFunc := func(*jwt.Token) (any, error) { return key, nil }

	return func(c *gin.Context) {
		if len(key) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			return
		}
		raw, status, msg := bearerToken(c.GetHeader("Authorization"))
		if status != 0 {
			c.AbortWithStatusJSON(status, gin.H{"error": msg})
			return
		}

		var claims Claims
		if _, err := tokenParser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
			logger.FromContext(c.Request.Context()).Debug().Err(err).Msg("rejected bearer token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, &claims)
		c.Set("email", claims.Email)
		c.Next()
	}
}

func bearerToken(header string) (token string, status int, msg string) {
	if header == "" {
		return "", http.StatusUnauthorized, "Authorization header missing"
	}
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", http.StatusUnauthorized, "Bearer token malformed"
	}
	return strings.TrimSpace(token), 0, ""
}

// ClaimsFrom returns the claims AuthMiddleware stored, or nil.
func ClaimsFrom(c *gin.Context) *Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*Claims)
	return claims
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil || claims.Role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
			return
		}
		if claims.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
