package services

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
)

// ApprovalSvc moves requests out of Pending.
type ApprovalSvc interface {
	// Approve approves a pending request of the actor's company, deducting
	// leave balance when the request asks for it.
	Approve(ctx context.Context, requestID string, actor *domain.User) (*domain.Request, error)

	// Reject rejects a pending request of the actor's company.
	Reject(ctx context.Context, requestID string, actor *domain.User) (*domain.Request, error)
}
