package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"herbverse/internal/models/db_models"
	"herbverse/pkg/utils"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// JWTAuthMiddleware rejects the request with 401 unless it carries a valid
// bearer token, then exposes the token's user id and role on the context.
func JWTAuthMiddleware(tokens *utils.TokenService) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		claims, ok := parseClaims(tokens, authHeader)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// AccountChecker reports whether the account behind a token is still stored.
type AccountChecker interface {
	AccountExists(ctx context.Context, userID string) (bool, error)
}

// RequireAccount rejects a valid token whose account has been deleted since it
// was issued. Composed after JWTAuthMiddleware.
func RequireAccount(accounts AccountChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		exists, err := accounts.AccountExists(c.Request.Context(), CurrentUserID(c))
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Next()
	}
}

func RequireRole(requiredRole db_models.Role) gin.HandlerFunc {

	return func(c *gin.Context) {
		if CurrentRole(c) != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func CurrentRole(c *gin.Context) db_models.Role {
	return db_models.Role(c.GetString(ContextRole))
}

func parseClaims(tokens *utils.TokenService, authHeader string) (*utils.Claims, bool) {
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenString == "" {
		return nil, false
	}
	claims, err := tokens.ValidateToken(tokenString)
	if err != nil {
		return nil, false
	}
	if !db_models.Role(claims.Role).Valid() {
		return nil, false
	}
	return claims, true
}
