package mapping

import (
	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/models"
)

// ToModelAdminRequest converts a domain AdminRequest to a model AdminRequest
func ToModelAdminRequest(d domain.AdminRequest) models.AdminRequest {
	return models.AdminRequest{
		AdminRequestID: d.AdminRequestID,
		UserID:         d.UserID,
		UserName:       d.UserName,
		UserEmail:      d.UserEmail,
		CompanyID:      d.CompanyID,
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
		ApprovedAt:     d.ApprovedAt,
		RejectedAt:     d.RejectedAt,
	}
}

// ToDomainAdminRequest converts a model AdminRequest to a domain AdminRequest
func ToDomainAdminRequest(m models.AdminRequest) domain.AdminRequest {
	return domain.AdminRequest{
		AdminRequestID: m.AdminRequestID,
		UserID:         m.UserID,
		UserName:       m.UserName,
		UserEmail:      m.UserEmail,
		CompanyID:      m.CompanyID,
		Status:         domain.AdminRequestStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		ApprovedAt:     m.ApprovedAt,
		RejectedAt:     m.RejectedAt,
	}
}

// ToDomainAdminRequestSlice converts a slice of model AdminRequests to a slice of domain AdminRequests
func ToDomainAdminRequestSlice(ms []models.AdminRequest) []domain.AdminRequest {
	ds := make([]domain.AdminRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAdminRequest(m)
	}
	return ds
}
