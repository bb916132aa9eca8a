package mapping

import (
	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/SscSPs/officeflow/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelRequest converts a domain Request to a model Request, spreading the
// leave descriptor over its nullable columns.
func ToModelRequest(d domain.Request) models.Request {
	m := models.Request{
		RequestID:     d.RequestID,
		UserID:        d.UserID,
		UserName:      d.UserName,
		UserEmail:     d.UserEmail,
		CompanyID:     d.CompanyID,
		Title:         d.Title,
		Description:   d.Description,
		Category:      d.Category,
		Type:          d.Type,
		Priority:      d.Priority,
		Status:        string(d.Status),
		AssignedTo:    d.AssignedTo,
		Deduct:        d.Deduct,
		DateSubmitted: d.DateSubmitted,
		LastUpdated:   d.LastUpdated,
		ApprovedAt:    d.ApprovedAt,
		RejectedAt:    d.RejectedAt,
		DecidedBy:     d.DecidedBy,
	}
	if d.Leave != nil {
		start, end, leaveType := d.Leave.StartDate, d.Leave.EndDate, string(d.Leave.LeaveType)
		m.LeaveStart = &start
		m.LeaveEnd = &end
		m.LeaveType = &leaveType
		m.LeaveDays = decimal.NewNullDecimal(d.Leave.Days)
	}
	return m
}

// ToDomainRequest converts a model Request to a domain Request. The leave
// descriptor is present only when a start date is stored.
func ToDomainRequest(m models.Request) domain.Request {
	d := domain.Request{
		RequestID:     m.RequestID,
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		CompanyID:     m.CompanyID,
		Title:         m.Title,
		Description:   m.Description,
		Category:      m.Category,
		Type:          m.Type,
		Priority:      m.Priority,
		Status:        domain.RequestStatus(m.Status),
		AssignedTo:    m.AssignedTo,
		Deduct:        m.Deduct,
		DateSubmitted: m.DateSubmitted,
		LastUpdated:   m.LastUpdated,
		ApprovedAt:    m.ApprovedAt,
		RejectedAt:    m.RejectedAt,
		DecidedBy:     m.DecidedBy,
	}
	if m.LeaveStart != nil {
		leave := &domain.LeaveDescriptor{StartDate: *m.LeaveStart}
		if m.LeaveEnd != nil {
			leave.EndDate = *m.LeaveEnd
		}
		if m.LeaveType != nil {
			leave.LeaveType = domain.LeaveType(*m.LeaveType)
		}
		if m.LeaveDays.Valid {
			leave.Days = m.LeaveDays.Decimal
		}
		d.Leave = leave
	}
	return d
}

// ToDomainRequestSlice converts a slice of model Requests to a slice of domain Requests
func ToDomainRequestSlice(ms []models.Request) []domain.Request {
	ds := make([]domain.Request, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRequest(m)
	}
	return ds
}
