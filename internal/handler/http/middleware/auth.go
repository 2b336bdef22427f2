package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Commune/internal/domain/entity"
	"github.com/mikiasgoitom/Commune/internal/handler/http/dto"
	"github.com/mikiasgoitom/Commune/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Commune/internal/usecase/contract"
)

// Context keys set by AuthMiddleWare and read by the handlers.
const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextPrincipal = "principal"
)

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(c *gin.Context) (string, bool) {
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// withToken stores the bearer token, if any, in the request context.
func withToken(c *gin.Context) bool {
	token, ok := bearerToken(c)
	if ok {
		c.Request = c.Request.WithContext(usecase.WithAccessToken(c.Request.Context(), token))
	}
	return ok
}

// AuthMiddleWare rejects requests without a valid session and exposes the
// caller under ContextUserID, ContextUserRole and ContextPrincipal.
func AuthMiddleWare(resolver usecasecontract.IIdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !withToken(c) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authorization header is required"})
			return
		}

		principal, err := resolver.ResolvePrincipal(c.Request.Context())
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid or expired token"})
				return
			}
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: "Unable to verify session"})
			return
		}

		c.Set(ContextUserID, principal.UserID)
		c.Set(ContextUserRole, principal.Role)
		c.Set(ContextPrincipal, principal)
		c.Next()
	}
}

// OptionalAuth forwards the bearer token to the use cases without verifying
// it, so anonymous callers are served as well.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		withToken(c)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleWare.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextUserRole)
		if r, ok := role.(entity.UserRole); !ok || r != entity.UserRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Admin access required"})
			return
		}
		c.Next()
	}
}
