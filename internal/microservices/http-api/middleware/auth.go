package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"awardshub/internal/microservices/http-api/service"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware and OptionalAuth.
const (
	ClaimsKey = "claims"
	UserIDKey = "userID"
	RoleKey   = "role"
)

// TokenValidator is the part of the auth service the middleware needs.
type TokenValidator interface {
	ValidateToken(tokenString string) (*service.Claims, error)
}

// RoleLookup reads a user's stored role. UserRepository satisfies it.
type RoleLookup interface {
	GetRole(ctx context.Context, userID string) (string, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	// format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func setClaims(c *gin.Context, claims *service.Claims) {
	c.Set(ClaimsKey, claims)
	c.Set(UserIDKey, claims.UserID)
	c.Set(RoleKey, claims.Role)
}

// AuthMiddleware is a Gin middleware for JWT authentication of API requests
// It checks for the presence and validity of a JWT token in the Authorization header
func AuthMiddleware(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		tokenString, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := validator.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and never rejects the request.
// A token without a role gets it from lookup, as RoleGate does.
func OptionalAuth(validator TokenValidator, lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := bearerToken(c); ok {
			if claims, err := validator.ValidateToken(tokenString); err == nil {
				setClaims(c, claims)
				resolveRole(c, lookup)
			}
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id, or "" when there is none.
func CurrentUserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}

// RoleGate admits only sessions holding requiredRole. It is the single gate in
// front of every admin route. With no session it answers 401. The role comes from
// the token, falling back to the users table; a failed lookup counts as no access.
func RoleGate(lookup RoleLookup, requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)
		if userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if resolveRole(c, lookup) != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// resolveRole returns the session's role, reading the users table when the token
// carries none. A failed lookup leaves the role empty.
func resolveRole(c *gin.Context, lookup RoleLookup) string {
	role := c.GetString(RoleKey)
	if role != "" || lookup == nil {
		return role
	}
	userID := CurrentUserID(c)
	if userID == "" {
		return ""
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()
	stored, err := lookup.GetRole(ctx, userID)
	if err != nil {
		return ""
	}
	c.Set(RoleKey, stored)
	return stored
}
