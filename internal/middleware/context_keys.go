package middleware

import (
	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// principalKey holds the *domain.Principal set by Authenticate.
	principalKey = contextKey("principal")
	// currentUserKey holds the *domain.User set by LoadCurrentUser.
	currentUserKey = contextKey("currentUser")
)

// GetPrincipalFromContext retrieves the verified principal of the request.
func GetPrincipalFromContext(c *gin.Context) (*domain.Principal, bool) {
	val, exists := c.Get(string(principalKey))
	if !exists {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	return principal, ok && principal != nil
}

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	principal, ok := GetPrincipalFromContext(c)
	if !ok || principal.UserID == "" {
		return "", false
	}
	return principal.UserID, true
}

// GetCurrentUser retrieves the directory record of the caller, loaded by LoadCurrentUser.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(string(currentUserKey))
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok && user != nil
}
