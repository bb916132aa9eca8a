package services

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/dto"
)

// AdminAccountSvc defines creation and role changes of admins. Superadmin only.
type AdminAccountSvc interface {
	// CreateAdmin creates an identity and an admin user in the actor's company.
	CreateAdmin(ctx context.Context, actor *domain.User, req dto.CreateAdminRequest) (*domain.User, error)

	// PromoteToAdmin turns an existing member into a department admin.
	PromoteToAdmin(ctx context.Context, actor *domain.User, req dto.PromoteToAdminRequest) (*domain.User, error)

	// UpdateUserRole sets role, and optionally job title and department, of a user.
	UpdateUserRole(ctx context.Context, actor *domain.User, userID string, req dto.UpdateUserRoleRequest) (*domain.User, error)

	// DeleteUser removes the identity and directory record of a non-superadmin user.
	DeleteUser(ctx context.Context, actor *domain.User, userID string) error
}

// AdminRequestSvc defines the self-nomination flow.
type AdminRequestSvc interface {
	// RequestAdmin records the actor's request to become an admin.
	RequestAdmin(ctx context.Context, actor *domain.User) (*domain.AdminRequest, error)

	// ListPendingAdminRequests lists pending admin requests of the actor's company, newest first.
	ListPendingAdminRequests(ctx context.Context, actor *domain.User) ([]domain.AdminRequest, error)

	// ApproveAdminRequest promotes the requester and marks the request approved.
	// An empty department falls back to the company's primary department.
	ApproveAdminRequest(ctx context.Context, actor *domain.User, adminRequestID, department string) (*domain.AdminRequest, *domain.User, error)

	// RejectAdminRequest marks the request rejected.
	RejectAdminRequest(ctx context.Context, actor *domain.User, adminRequestID string) (*domain.AdminRequest, error)
}

// ProvisioningSvcFacade combines all admin provisioning interfaces
type ProvisioningSvcFacade interface {
	AdminAccountSvc
	AdminRequestSvc
}
