package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fleetledger/internal/core/apperror"
	"fleetledger/internal/core/company"
	appctx "fleetledger/internal/core/context"
	"fleetledger/internal/core/id"
)

// JWTValidator interface for token validation.
type JWTValidator interface {
	ValidateToken(tokenString string) (*appctx.UserContext, error)
}

// Auth middleware validates JWT tokens and populates user context.
func Auth(validator JWTValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		user, err := validator.ValidateToken(parts[1])
		if err != nil {
			_ = c.Error(apperror.NewUnauthorized("invalid token"))
			c.Abort()
			return
		}

		// Enforce company match: the company resolved by CompanyScope
		// must be the one the token was issued for.
		resolvedID := company.IDFromContext(c.Request.Context())
		if !id.IsNil(resolvedID) && user.CompanyID != "" && resolvedID.String() != user.CompanyID {
			_ = c.Error(
				apperror.NewForbidden("company mismatch").
					WithDetail("header_company_id", resolvedID.String()).
					WithDetail("token_company_id", user.CompanyID),
			)
			c.Abort()
			return
		}

		ctx := appctx.WithUser(c.Request.Context(), user)
		c.Request = c.Request.WithContext(ctx)

		c.Set("user_id", user.UserID)

		c.Next()
	}
}

// RequireAdmin middleware rejects non-admin users.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}
		if !user.IsAdmin {
			_ = c.Error(apperror.NewForbidden("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperror.NewUnauthorized(message))
	c.Abort()
}
