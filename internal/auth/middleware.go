package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmolina/shop-service/internal/httpx"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	// gin context keys set by RequireAuth
	CtxMemberID = "member_id"
	CtxRole     = "member_role"
)

// RequireAuth validates the Bearer token and stores the member identity
// in the gin context. Missing or bad credentials end the request with 401.
func RequireAuth(issuer *TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httpx.Abort(c, http.StatusUnauthorized, "missing authorization header")
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			httpx.Abort(c, http.StatusUnauthorized, "invalid authorization header")
			return
		}
		claims, err := issuer.Validate(parts[1])
		if err != nil {
			httpx.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		c.Set(CtxMemberID, claims.MemberID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole gates a route group on the role stored by RequireAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != role {
			httpx.Abort(c, http.StatusForbidden, "forbidden")
			return
		}
		c.Next()
	}
}

// MemberID returns the authenticated member id, empty when unauthenticated.
func MemberID(c *gin.Context) string {
	return c.GetString(CtxMemberID)
}
