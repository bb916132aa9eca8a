package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/officeflow/internal/apperrors"
	"github.com/SscSPs/officeflow/internal/core/domain"
	portsrepo "github.com/SscSPs/officeflow/internal/core/ports/repositories"
	"github.com/SscSPs/officeflow/internal/models"
	"github.com/SscSPs/officeflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCompanyRepository struct {
	BaseRepository
}

// newPgxCompanyRepository creates a new repository for company data.
func newPgxCompanyRepository(pool *pgxpool.Pool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

const companySelectQuery = `
SELECT
	c.company_id, c.name, c.company_code,
	c.annual_leave, c.sick_leave, c.personal_leave, c.emergency_leave,
	c.departments, c.job_titles, c.created_by, c.created_at, c.last_updated_at
FROM companies c
`

func (r *PgxCompanyRepository) findOne(ctx context.Context, where string, arg any) (*domain.Company, error) {
	rows, err := r.Pool.Query(ctx, companySelectQuery+where, arg)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query companies", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Company])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, apperrors.NewAppError(500, "failed to collect company row", err)
	}
	company := mapping.ToDomainCompany(m)
	return &company, nil
}

func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID string) (*domain.Company, error) {
	return r.findOne(ctx, `WHERE c.company_id = $1`, companyID)
}

func (r *PgxCompanyRepository) FindCompanyByCode(ctx context.Context, companyCode string) (*domain.Company, error) {
	return r.findOne(ctx, `WHERE c.company_code = $1`, companyCode)
}

func (r *PgxCompanyRepository) SaveCompanyInTx(ctx context.Context, tx pgx.Tx, company domain.Company) error {
	return r.saveCompany(ctx, tx, company)
}

func (r *PgxCompanyRepository) saveCompany(ctx context.Context, q querier, company domain.Company) error {
	m := mapping.ToModelCompany(company)
	query := `
		INSERT INTO companies (
			company_id, name, company_code,
			annual_leave, sick_leave, personal_leave, emergency_leave,
			departments, job_titles, created_by, created_at, last_updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := q.Exec(ctx, query,
		m.CompanyID, m.Name, m.CompanyCode,
		m.AnnualLeave, m.SickLeave, m.PersonalLeave, m.EmergencyLeave,
		m.Departments, m.JobTitles, m.CreatedBy, m.CreatedAt, m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "companies_company_code_key") {
			return apperrors.NewConflictError("company code " + m.CompanyCode + " already exists")
		}
		if isUniqueViolation(err, "") {
			return apperrors.NewConflictError("company " + m.CompanyID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save company "+m.CompanyID, err)
	}
	return nil
}

func (r *PgxCompanyRepository) UpdateCompanySettings(ctx context.Context, companyID string, settings domain.CompanySettings, updatedAt time.Time) error {
	query := `
		UPDATE companies
		SET annual_leave = $2, sick_leave = $3, personal_leave = $4, emergency_leave = $5,
		    departments = $6, job_titles = $7, last_updated_at = $8
		WHERE company_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, companyID,
		settings.AnnualLeave, settings.SickLeave, settings.PersonalLeave, settings.EmergencyLeave,
		settings.Departments, settings.JobTitles, updatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update settings of company "+companyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("company " + companyID + " not found for update")
	}
	return nil
}
