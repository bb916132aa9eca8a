package services

import (
	"context"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/dto"
)

// CompanyReaderSvc defines read operations for companies
type CompanyReaderSvc interface {
	// GetCompanyByID retrieves a company by ID.
	GetCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// VerifyCompanyCode resolves a join code. Unknown codes fail with apperrors.ErrNotFound.
	VerifyCompanyCode(ctx context.Context, companyCode string) (*domain.Company, error)
}

// CompanyWriterSvc defines write operations for companies
type CompanyWriterSvc interface {
	// UpdateSettings applies a partial settings update. Superadmin only.
	UpdateSettings(ctx context.Context, actor *domain.User, req dto.UpdateCompanySettingsRequest) (*domain.Company, error)
}

// RegistrationSvc creates the directory record of a freshly signed-in principal.
type RegistrationSvc interface {
	// Register either creates a company with the principal as superadmin or
	// joins an existing company by code as a member.
	Register(ctx context.Context, principal domain.Principal, req dto.RegisterRequest) (*domain.User, *domain.Company, error)
}

// CompanySvcFacade combines all company-related service interfaces
type CompanySvcFacade interface {
	CompanyReaderSvc
	CompanyWriterSvc
	RegistrationSvc
}
