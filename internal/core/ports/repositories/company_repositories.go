package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CompanyReader defines read operations for company data
type CompanyReader interface {
	// FindCompanyByID retrieves a company by its ID.
	FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error)

	// FindCompanyByCode retrieves a company by its shareable join code.
	FindCompanyByCode(ctx context.Context, companyCode string) (*domain.Company, error)
}

// CompanyWriter defines write operations for company data
type CompanyWriter interface {
	// UpdateCompanySettings replaces the settings block of a company.
	UpdateCompanySettings(ctx context.Context, companyID string, settings domain.CompanySettings, updatedAt time.Time) error
}

// CompanyTxManager creates companies inside a transaction shared with the
// registration of their first user.
type CompanyTxManager interface {
	TransactionManager

	// SaveCompanyInTx persists a new company within tx.
	SaveCompanyInTx(ctx context.Context, tx pgx.Tx, company domain.Company) error
}

// CompanyRepositoryFacade combines all company-related repository interfaces
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
	CompanyTxManager
}
