package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/photolog-dev/photolog-backend/internal/adapter/repository"
	"github.com/photolog-dev/photolog-backend/internal/infrastructure/auth"
	"github.com/photolog-dev/photolog-backend/internal/pkg/httputil"
)

const (
	AdminIDKey   = "admin_id"
	BearerPrefix = "Bearer "
)

type AuthMiddleware struct {
	jwtSvc *auth.JWTService
	admins repository.AdminRepository
}

func NewAuthMiddleware(jwtSvc *auth.JWTService, admins repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{jwtSvc: jwtSvc, admins: admins}
}

// RequireAdmin accepts only callers whose token subject is still present in
// the admins allow-list. The policy lives here, server-side; clients never
// decide their own privilege.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.Error(c, http.StatusUnauthorized, "authorization header required")
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			httputil.Error(c, http.StatusUnauthorized, "invalid authorization format")
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, BearerPrefix)
		adminID, err := m.jwtSvc.ValidateAccessToken(token)
		if err != nil {
			httputil.Error(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if _, err := m.admins.GetByID(c.Request.Context(), adminID); err != nil {
			httputil.Error(c, http.StatusForbidden, "not an admin")
			c.Abort()
			return
		}

		c.Set(AdminIDKey, adminID)
		c.Next()
	}
}
