package middleware

import (
	"net/http"

	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/gin-gonic/gin"
)

// RequireAdmin lets admins and superadmins through. Must run after LoadCurrentUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok || !user.Role.IsAdmin() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin access denied")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Admin access required"))
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin lets only superadmins through. Must run after LoadCurrentUser.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok || !user.Role.IsSuperAdmin() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Super admin access denied")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Super admin access required"))
			return
		}
		c.Next()
	}
}
