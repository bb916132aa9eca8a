package mapping

import (
	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/models"
)

// ToModelCompany converts a domain Company to a model Company
func ToModelCompany(d domain.Company) models.Company {
	return models.Company{
		CompanyID:      d.CompanyID,
		Name:           d.Name,
		CompanyCode:    d.CompanyCode,
		AnnualLeave:    d.Settings.AnnualLeave,
		SickLeave:      d.Settings.SickLeave,
		PersonalLeave:  d.Settings.PersonalLeave,
		EmergencyLeave: d.Settings.EmergencyLeave,
		Departments:    d.Settings.Departments,
		JobTitles:      d.Settings.JobTitles,
		CreatedBy:      d.CreatedBy,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCompany converts a model Company to a domain Company
func ToDomainCompany(m models.Company) domain.Company {
	return domain.Company{
		CompanyID:   m.CompanyID,
		Name:        m.Name,
		CompanyCode: m.CompanyCode,
		Settings: domain.CompanySettings{
			AnnualLeave:    m.AnnualLeave,
			SickLeave:      m.SickLeave,
			PersonalLeave:  m.PersonalLeave,
			EmergencyLeave: m.EmergencyLeave,
			Departments:    m.Departments,
			JobTitles:      m.JobTitles,
		},
		CreatedBy:   m.CreatedBy,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
