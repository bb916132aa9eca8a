package mapping

import (
	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:           d.UserID,
		Email:            d.Email,
		FullName:         d.FullName,
		Role:             string(d.Role),
		Department:       d.Department,
		JobTitle:         d.JobTitle,
		CompanyID:        d.CompanyID,
		AnnualBalance:    d.LeaveBalance.Annual,
		SickBalance:      d.LeaveBalance.Sick,
		PersonalBalance:  d.LeaveBalance.Personal,
		EmergencyBalance: d.LeaveBalance.Emergency,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:     m.UserID,
		Email:      m.Email,
		FullName:   m.FullName,
		Role:       domain.Role(m.Role),
		Department: m.Department,
		JobTitle:   m.JobTitle,
		CompanyID:  m.CompanyID,
		LeaveBalance: domain.LeaveBalance{
			Annual:    m.AnnualBalance,
			Sick:      m.SickBalance,
			Personal:  m.PersonalBalance,
			Emergency: m.EmergencyBalance,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
