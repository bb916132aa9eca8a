package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/gin-gonic/gin"
)

// Authenticate creates a Gin middleware handler that verifies the bearer token
// and stores the resulting principal in the context.
func Authenticate(verifier services.CredentialVerifierSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("No token provided"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authorization header format must be Bearer {token}"))
			return
		}

		principal, err := verifier.VerifyToken(c.Request.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			logger.Warn("Invalid token", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid token"))
			return
		}

		enrichedLogger := logger.With(slog.String("user_id", principal.UserID))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enrichedLogger))
		c.Set(string(principalKey), principal)

		c.Next()
	}
}

// LoadCurrentUser resolves the principal to its directory record. Routes behind
// it can rely on GetCurrentUser.
func LoadCurrentUser(users services.UserReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Not authenticated"))
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Authenticated principal has no user record")
				c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse("User not found"))
				return
			}
			logger.Error("Failed to load current user", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to load user"))
			return
		}

		enrichedLogger := logger.With(slog.String("company_id", user.CompanyID), slog.String("role", string(user.Role)))
		c.Request = c.Request.WithContext(WithLogger(c.Request.Context(), enrichedLogger))
		c.Set(string(currentUserKey), user)

		c.Next()
	}
}
