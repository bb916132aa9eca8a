package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// RequireAdmin checks the admin gate for service callers that bypass the HTTP middleware.
func (s *BaseService) RequireAdmin(ctx context.Context, actor *domain.User) error {
	if actor == nil || !actor.Role.IsAdmin() {
		s.LogWarn(ctx, "Admin role required")
		return apperrors.NewForbiddenError("Admin access required")
	}
	return nil
}

// RequireSuperAdmin checks the superadmin gate.
func (s *BaseService) RequireSuperAdmin(ctx context.Context, actor *domain.User) error {
	if actor == nil || !actor.Role.IsSuperAdmin() {
		s.LogWarn(ctx, "Super admin role required")
		return apperrors.NewForbiddenError("Super admin access required")
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}
