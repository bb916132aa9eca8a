package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/officeflow/internal/core/ports/services"
	"github.com/SscSPs/officeflow/internal/dto"
	"github.com/SscSPs/officeflow/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	companyCodeAttempts = 5
	employeeJobTitle    = "Employee"
)

// companyService implements the CompanySvcFacade interface
type companyService struct {
	BaseService
	companyRepo portsrepo.CompanyRepositoryFacade
	userRepo    portsrepo.UserRepositoryFacade
}

// NewCompanyService creates a new company service with the provided dependencies
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade, userRepo portsrepo.UserRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
	}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

func (s *companyService) GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	company, err := s.companyRepo.FindCompanyByID(ctx, companyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find company by ID", slog.String("company_id", companyID))
		}
		return nil, err
	}
	return company, nil
}

func normalizeCompanyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *companyService) VerifyCompanyCode(ctx context.Context, companyCode string) (*domain.Company, error) {
	code := normalizeCompanyCode(companyCode)
	if code == "" {
		return nil, apperrors.NewValidationFailedError("Company code is required")
	}
	company, err := s.companyRepo.FindCompanyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Invalid company code")
		}
		s.LogError(ctx, err, "Failed to find company by code")
		return nil, err
	}
	return company, nil
}

func nonNegative(name string, v *decimal.Decimal) error {
	if v != nil && v.IsNegative() {
		return apperrors.NewValidationFailedError(name + " must not be negative")
	}
	return nil
}

func (s *companyService) UpdateSettings(ctx context.Context, actor *domain.User, req dto.UpdateCompanySettingsRequest) (*domain.Company, error) {
	if err := s.RequireSuperAdmin(ctx, actor); err != nil {
		return nil, err
	}
	for name, v := range map[string]*decimal.Decimal{
		"annualLeave":    req.AnnualLeave,
		"sickLeave":      req.SickLeave,
		"personalLeave":  req.PersonalLeave,
		"emergencyLeave": req.EmergencyLeave,
	} {
		if err := nonNegative(name, v); err != nil {
			return nil, err
		}
	}

	company, err := s.GetCompanyByID(ctx, actor.CompanyID)
	if err != nil {
		return nil, err
	}

	settings := company.Settings
	if req.AnnualLeave != nil {
		settings.AnnualLeave = *req.AnnualLeave
	}
	if req.SickLeave != nil {
		settings.SickLeave = *req.SickLeave
	}
	if req.PersonalLeave != nil {
		settings.PersonalLeave = *req.PersonalLeave
	}
	if req.EmergencyLeave != nil {
		settings.EmergencyLeave = *req.EmergencyLeave
	}
	if req.Departments != nil {
		settings.Departments = uniqueTrimmed(req.Departments)
	}
	if req.JobTitles != nil {
		settings.JobTitles = req.JobTitles
	}

	updatedAt := now()
	if err := s.companyRepo.UpdateCompanySettings(ctx, company.CompanyID, settings, updatedAt); err != nil {
		s.LogError(ctx, err, "Failed to update company settings", slog.String("company_id", company.CompanyID))
		return nil, err
	}
	company.Settings = settings
	company.LastUpdatedAt = updatedAt

	s.LogInfo(ctx, "Company settings updated", slog.String("company_id", company.CompanyID))
	return company, nil
}

func uniqueTrimmed(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (s *companyService) Register(ctx context.Context, principal domain.Principal, req dto.RegisterRequest) (*domain.User, *domain.Company, error) {
	if req.UID != "" && req.UID != principal.UserID {
		s.LogWarn(ctx, "Registration uid does not match token subject")
		return nil, nil, apperrors.NewForbiddenError("Token does not match user")
	}

	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, nil, apperrors.NewValidationFailedError("Full name is required")
	}
	email := normalizeEmail(principal.Email)
	if email == "" {
		email = normalizeEmail(req.Email)
	}
	if email == "" {
		return nil, nil, apperrors.NewValidationFailedError("Email is required")
	}

	if _, err := s.userRepo.FindUserByID(ctx, principal.UserID); err == nil {
		return nil, nil, apperrors.NewConflictError("User already registered")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check existing registration")
		return nil, nil, err
	}

	ts := now()
	user := domain.User{
		UserID:      principal.UserID,
		Email:       email,
		FullName:    fullName,
		AuditFields: domain.AuditFields{CreatedAt: ts, LastUpdatedAt: ts},
	}

	var company *domain.Company
	if req.IsCreatingCompany {
		created, err := s.newCompany(ctx, req.CompanyName, principal.UserID)
		if err != nil {
			return nil, nil, err
		}
		company = created
		user.Role = domain.RoleSuperAdmin
		user.Department = domain.FallbackDepartment
		user.JobTitle = domain.HeadOfTitle(domain.FallbackDepartment)
	} else {
		found, err := s.companyRepo.FindCompanyByCode(ctx, normalizeCompanyCode(req.CompanyCode))
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, apperrors.NewValidationFailedError("Invalid company code")
			}
			s.LogError(ctx, err, "Failed to find company by code")
			return nil, nil, err
		}
		company = found
		user.Role = domain.RoleMember
		user.JobTitle = employeeJobTitle
	}
	user.CompanyID = company.CompanyID
	user.LeaveBalance = company.Settings.DefaultBalance()

	if req.IsCreatingCompany {
		if err := s.saveCompanyWithOwner(ctx, *company, user); err != nil {
			return nil, nil, err
		}
	} else if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save registered user", slog.String("company_id", company.CompanyID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "User registered",
		slog.String("company_id", company.CompanyID),
		slog.String("role", string(user.Role)))
	return &user, company, nil
}

// saveCompanyWithOwner inserts a new company and its super admin in one
// transaction.
func (s *companyService) saveCompanyWithOwner(ctx context.Context, company domain.Company, owner domain.User) error {
	logger := s.GetLogger(ctx).With(slog.String("company_id", company.CompanyID))

	tx, err := s.companyRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin registration transaction", slog.String("error", err.Error()))
		return apperrors.NewInternalServerError("failed to begin transaction", err)
	}
	defer func() {
		if rbErr := s.companyRepo.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to roll back registration transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := s.companyRepo.SaveCompanyInTx(ctx, tx, company); err != nil {
		logger.Error("Failed to save company", slog.String("error", err.Error()))
		return err
	}
	if err := s.userRepo.SaveUserInTx(ctx, tx, owner); err != nil {
		logger.Error("Failed to save registered user", slog.String("error", err.Error()))
		return err
	}
	if err := s.companyRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit registration transaction", slog.String("error", err.Error()))
		return apperrors.NewInternalServerError("failed to commit transaction", err)
	}

	logger.Info("Company created", slog.String("company_code", company.CompanyCode))
	return nil
}

// newCompany builds a company with default settings and a free join code.
func (s *companyService) newCompany(ctx context.Context, name, creatorID string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationFailedError("Company name is required")
	}

	code, err := s.freeCompanyCode(ctx, name)
	if err != nil {
		return nil, err
	}

	ts := now()
	company := domain.Company{
		CompanyID:   uuid.NewString(),
		Name:        name,
		CompanyCode: code,
		Settings:    domain.DefaultCompanySettings(),
		CreatedBy:   creatorID,
		AuditFields: domain.AuditFields{CreatedAt: ts, LastUpdatedAt: ts},
	}
	return &company, nil
}

func (s *companyService) freeCompanyCode(ctx context.Context, name string) (string, error) {
	for range companyCodeAttempts {
		code, err := utils.GenerateCompanyCode(name)
		if err != nil {
			return "", apperrors.NewInternalServerError("failed to generate company code", err)
		}
		_, err = s.companyRepo.FindCompanyByCode(ctx, code)
		if errors.Is(err, apperrors.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			s.LogError(ctx, err, "Failed to check company code")
			return "", err
		}
		s.LogDebug(ctx, "Company code taken, retrying", slog.String("company_code", code))
	}
	return "", apperrors.NewInternalServerError("failed to generate company code",
		fmt.Errorf("no free code after %d attempts", companyCodeAttempts))
}
