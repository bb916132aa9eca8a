package dto

import (
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
)

// DecideAdminRequestRequest optionally picks the department of the new admin.
type DecideAdminRequestRequest struct {
	Department string `json:"department"`
}

// AdminRequestResponse defines the admin request data returned by the API.
type AdminRequestResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	UserName   string     `json:"userName"`
	UserEmail  string     `json:"userEmail"`
	CompanyID  string     `json:"companyId"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	RejectedAt *time.Time `json:"rejectedAt,omitempty"`
}

// AdminRequestEnvelope wraps a single admin request.
type AdminRequestEnvelope struct {
	Success bool                 `json:"success" example:"true"`
	Message string               `json:"message,omitempty"`
	Request AdminRequestResponse `json:"request"`
}

// AdminRequestsEnvelope wraps a list of admin requests.
type AdminRequestsEnvelope struct {
	Success  bool                   `json:"success" example:"true"`
	Requests []AdminRequestResponse `json:"requests"`
}

// ToAdminRequestResponse converts domain.AdminRequest to DTO.
func ToAdminRequestResponse(a *domain.AdminRequest) AdminRequestResponse {
	return AdminRequestResponse{
		ID:         a.AdminRequestID,
		UserID:     a.UserID,
		UserName:   a.UserName,
		UserEmail:  a.UserEmail,
		CompanyID:  a.CompanyID,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt,
		ApprovedAt: a.ApprovedAt,
		RejectedAt: a.RejectedAt,
	}
}

// ToAdminRequestsEnvelope converts a slice of domain.AdminRequest to the list envelope.
func ToAdminRequestsEnvelope(requests []domain.AdminRequest) AdminRequestsEnvelope {
	list := make([]AdminRequestResponse, len(requests))
	for i := range requests {
		list[i] = ToAdminRequestResponse(&requests[i])
	}
	return AdminRequestsEnvelope{Success: true, Requests: list}
}

// AdminRequestDecisionResponse is returned when a superadmin approves a
// request; it carries the promoted user as well.
type AdminRequestDecisionResponse struct {
	Success bool                 `json:"success" example:"true"`
	Message string               `json:"message,omitempty"`
	Request AdminRequestResponse `json:"request"`
	User    *UserResponse        `json:"user,omitempty"`
}
