package services

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// provisioningService implements admin creation, promotion, role changes,
// user removal and the admin self-nomination flow.
type provisioningService struct {
	BaseService
	identity         portssvc.IdentityAccountSvc
	companyRepo      portsrepo.CompanyReader
	userRepo         portsrepo.UserRepositoryFacade
	adminRequestRepo portsrepo.AdminRequestRepositoryWithTx
}

// NewProvisioningService creates a new provisioning service with the provided dependencies
func NewProvisioningService(
	identity portssvc.IdentityAccountSvc,
	companyRepo portsrepo.CompanyReader,
	userRepo portsrepo.UserRepositoryFacade,
	adminRequestRepo portsrepo.AdminRequestRepositoryWithTx,
) portssvc.ProvisioningSvcFacade {
	return &provisioningService{
		identity:         identity,
		companyRepo:      companyRepo,
		userRepo:         userRepo,
		adminRequestRepo: adminRequestRepo,
	}
}

var _ portssvc.ProvisioningSvcFacade = (*provisioningService)(nil)

func (s *provisioningService) company(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load company", slog.String("company_id", companyID))
		return nil, err
	}
	return company, nil
}

func checkDepartment(company *domain.Company, department string) error {
	if department == "" {
		return apperrors.NewValidationFailedError("Department is required")
	}
	if !company.Settings.HasDepartment(department) {
		return apperrors.NewValidationFailedError("Unknown department: " + department)
	}
	return nil
}

// target loads a user of the actor's company. Users of other companies are reported as missing.
func (s *provisioningService) target(ctx context.Context, actor *domain.User, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found")
		}
		s.LogError(ctx, err, "Failed to load target user", slog.String("target_user_id", userID))
		return nil, err
	}
	if user.CompanyID != actor.CompanyID {
		s.LogWarn(ctx, "Cross-company provisioning attempt", slog.String("target_user_id", userID))
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return user, nil
}

func (s *provisioningService) CreateAdmin(ctx context.Context, actor *domain.User, req dto.CreateAdminRequest) (*domain.User, error) {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return nil, err
	}
	company, err := s.company(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	department := strings.TrimSpace(req.Department)
	if err := checkDepartment(company, department); err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, apperrors.NewValidationFailedError("Full name is required")
	}

	identity, err := s.identity.CreateAccount(ctx, req.Email, req.Password, fullName)
	if err != nil {
		return nil, err
	}

	ts := now()
	admin := domain.User{
		UserID:       identity.UID,
		Email:        identity.Email,
		FullName:     fullName,
		Role:         domain.RoleAdmin,
		Department:   department,
		JobTitle:     domain.HeadOfTitle(department),
		CompanyID:    company.CompanyID,
		LeaveBalance: company.Settings.DefaultBalance(),
		AuditFields:  domain.AuditFields{CreatedAt: ts, LastUpdatedAt: ts},
	}
	if err := s.userRepo.SaveUser(ctx, admin); err != nil {
		s.LogError(ctx, err, "Failed to save admin user, removing identity", slog.String("uid", identity.UID))
		if delErr := s.identity.DeleteAccount(ctx, identity.UID); delErr != nil {
			s.LogError(ctx, delErr, "Failed to remove orphaned identity", slog.String("uid", identity.UID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Admin created", slog.String("target_user_id", admin.UserID), slog.String("department", department))
	return &admin, nil
}

func (s *provisioningService) PromoteToAdmin(ctx context.Context, actor *domain.User, req dto.PromoteToAdminRequest) (*domain.User, error) {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return nil, err
	}
	user, err := s.target(ctx, actor, req.UserID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleMember {
		return nil, apperrors.NewInvalidStateError("User is already an admin or super admin")
	}
	company, err := s.company(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}
	department := strings.TrimSpace(req.Department)
	if err := checkDepartment(company, department); err != nil {
		return nil, err
	}

	user.Role = domain.RoleAdmin
	user.Department = department
	user.JobTitle = domain.HeadOfTitle(department)
	user.LastUpdatedAt = now()
	if err := s.userRepo.UpdateUserProfile(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to promote user", slog.String("target_user_id", user.UserID))
		return nil, err
	}

	s.LogInfo(ctx, "User promoted to admin", slog.String("target_user_id", user.UserID), slog.String("department", department))
	return user, nil
}

func (s *provisioningService) UpdateUserRole(ctx context.Context, actor *domain.User, userID string, req dto.UpdateUserRoleRequest) (*domain.User, error) {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return nil, err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil || role == domain.RoleSuperAdmin {
		return nil, apperrors.NewInvalidStateError("Invalid role")
	}
	user, err := s.target(ctx, actor, userID)
	if err != nil {
		return nil, err
	}
	if user.Role.IsSuperAdmin() {
		return nil, apperrors.NewForbiddenError("Cannot change super admin role")
	}

	user.Role = role
	if req.Department != nil {
		department := strings.TrimSpace(*req.Department)
		if department != "" {
			company, err := s.company(ctx, actor.CompanyID)
			if err != nil {
				return nil, err
			}
			if err := checkDepartment(company, department); err != nil {
				return nil, err
			}
		}
		user.Department = department
	}
	if req.JobTitle != nil {
		user.JobTitle = strings.TrimSpace(*req.JobTitle)
	}
	user.LastUpdatedAt = now()

	if err := s.userRepo.UpdateUserProfile(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user role", slog.String("target_user_id", userID))
		return nil, err
	}
	s.LogInfo(ctx, "User role updated", slog.String("target_user_id", userID), slog.String("role", string(role)))
	return user, nil
}

func (s *provisioningService) DeleteUser(ctx context.Context, actor *domain.User, userID string) error {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return err
	}
	user, err := s.target(ctx, actor, userID)
	if err != nil {
		return err
	}
	if user.Role.IsSuperAdmin() {
		s.LogWarn(ctx, "Refusing to delete super admin", slog.String("target_user_id", userID))
		return apperrors.NewForbiddenError("Cannot delete super admin")
	}

	if err := s.identity.DeleteAccount(ctx, userID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogWarn(ctx, "User had no identity", slog.String("target_user_id", userID))
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.LogError(ctx, err, "Failed to delete user record", slog.String("target_user_id", userID))
		return err
	}

	s.LogInfo(ctx, "User deleted", slog.String("target_user_id", userID))
	return nil
}

func (s *provisioningService) RequestAdmin(ctx context.Context, actor *domain.User) (*domain.AdminRequest, error) {
	if actor.Role != domain.RoleMember {
		return nil, apperrors.NewInvalidStateError("User is already an admin or super admin")
	}

	_, err := s.adminRequestRepo.FindPendingAdminRequestByUser(ctx, actor.UserID)
	if err == nil {
		return nil, apperrors.NewConflictError("You already have a pending admin request")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check pending admin request")
		return nil, err
	}

	request := domain.AdminRequest{
		AdminRequestID: uuid.NewString(),
		UserID:         actor.UserID,
		UserName:       actor.FullName,
		UserEmail:      actor.Email,
		CompanyID:      actor.CompanyID,
		Status:         domain.AdminRequestPending,
		CreatedAt:      now(),
	}
	if err := s.adminRequestRepo.SaveAdminRequest(ctx, request); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to save admin request")
		}
		return nil, err
	}

	s.LogInfo(ctx, "Admin request submitted", slog.String("admin_request_id", request.AdminRequestID))
	return &request, nil
}

func (s *provisioningService) ListPendingAdminRequests(ctx context.Context, actor *domain.User) ([]domain.AdminRequest, error) {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return nil, err
	}
	requests, err := s.adminRequestRepo.FindAdminRequests(ctx, actor.CompanyID, domain.AdminRequestPending)
	if err != nil {
		s.LogError(ctx, err, "Failed to list admin requests")
		return nil, err
	}
	slices.SortStableFunc(requests, func(a, b domain.AdminRequest) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return requests, nil
}

func (s *provisioningService) pendingAdminRequest(ctx context.Context, actor *domain.User, adminRequestID string) (*domain.AdminRequest, error) {
	request, err := s.adminRequestRepo.FindAdminRequestByID(ctx, adminRequestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Admin request not found")
		}
		s.LogError(ctx, err, "Failed to load admin request", slog.String("admin_request_id", adminRequestID))
		return nil, err
	}
	if request.CompanyID != actor.CompanyID {
		return nil, apperrors.NewNotFoundError("Admin request not found")
	}
	if request.Status != domain.AdminRequestPending {
		return nil, apperrors.NewInvalidStateError("Admin request has already been processed")
	}
	return request, nil
}

func (s *provisioningService) ApproveAdminRequest(ctx context.Context, actor *domain.User, adminRequestID, department string) (*domain.AdminRequest, *domain.User, error) {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return nil, nil, err
	}
	request, err := s.pendingAdminRequest(ctx, actor, adminRequestID)
	if err != nil {
		return nil, nil, err
	}
	company, err := s.company(ctx, actor.CompanyID)
	if err != nil {
		return nil, nil, err
	}
	department = strings.TrimSpace(department)
	if department == "" {
		department = company.PrimaryDepartment()
	}
	if err := checkDepartment(company, department); err != nil {
		return nil, nil, err
	}

	user, err := s.target(ctx, actor, request.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NewNotFoundError("Requesting user not found")
		}
		return nil, nil, err
	}
	if user.Role.IsSuperAdmin() {
		return nil, nil, apperrors.NewInvalidStateError("User is already a super admin")
	}

	ts := now()
	if err := request.Decide(domain.AdminRequestApproved, ts); err != nil {
		return nil, nil, apperrors.NewInvalidStateError("Admin request has already been processed")
	}
	user.Role = domain.RoleAdmin
	user.Department = department
	user.JobTitle = domain.HeadOfTitle(department)
	user.LastUpdatedAt = ts

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		if err := s.adminRequestRepo.DecideAdminRequestInTx(ctx, tx, *request); err != nil {
			return err
		}
		return s.userRepo.UpdateUserProfileInTx(ctx, tx, *user)
	})
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Admin request approved",
		slog.String("admin_request_id", request.AdminRequestID),
		slog.String("target_user_id", user.UserID))
	return request, user, nil
}

func (s *provisioningService) RejectAdminRequest(ctx context.Context, actor *domain.User, adminRequestID string) (*domain.AdminRequest, error) {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return nil, err
	}
	request, err := s.pendingAdminRequest(ctx, actor, adminRequestID)
	if err != nil {
		return nil, err
	}
	if err := request.Decide(domain.AdminRequestRejected, now()); err != nil {
		return nil, apperrors.NewInvalidStateError("Admin request has already been processed")
	}

	err = s.inTx(ctx, func(tx pgx.Tx) error {
		return s.adminRequestRepo.DecideAdminRequestInTx(ctx, tx, *request)
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Admin request rejected", slog.String("admin_request_id", request.AdminRequestID))
	return request, nil
}

// inTx runs fn in a transaction of the admin request store, committing when fn succeeds.
func (s *provisioningService) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := s.adminRequestRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return apperrors.NewInternalServerError("failed to begin transaction", err)
	}
	defer func() {
		if rbErr := s.adminRequestRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back transaction")
		}
	}()

	if err := fn(tx); err != nil {
		if !errors.Is(err, apperrors.ErrInvalidState) {
			s.LogError(ctx, err, "Transaction step failed")
		}
		return err
	}
	if err := s.adminRequestRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction")
		return apperrors.NewInternalServerError("failed to commit transaction", err)
	}
	return nil
}
