package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/officeflow/internal/utils"
	"github.com/gin-gonic/gin"
)

// PosthogMiddleware creates a Gin middleware handler that tracks successful
// authenticated API calls with PostHog, keyed by the caller's user ID.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !posthogClient.IsInitialized() {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		// "/api/leave-requests/:id/approve" -> "api_leave-requests_:id_approve"
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if user, ok := GetCurrentUser(c); ok {
			props["company_id"] = user.CompanyID
			props["role"] = string(user.Role)
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		posthogClient.Enqueue(userID, eventName, props)
	}
}
