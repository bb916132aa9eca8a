package dto

import (
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LeaveInput is the leave block of a submission. Days defaults to the
// inclusive count between start and end.
type LeaveInput struct {
	Start     string           `json:"start" binding:"required,datetime=2006-01-02"`
	End       string           `json:"end" binding:"required,datetime=2006-01-02"`
	Days      *decimal.Decimal `json:"days" swaggertype:"number"`
	LeaveType string           `json:"leaveType"`
}

// CreateRequestRequest submits a general or leave request.
type CreateRequestRequest struct {
	Title       string      `json:"title" binding:"max=200"`
	Description string      `json:"description" binding:"max=5000"`
	Category    string      `json:"category"`
	Type        string      `json:"type"`
	Priority    string      `json:"priority"`
	Leave       *LeaveInput `json:"leave"`
	Deduct      bool        `json:"deduct"`
}

// ListRequestsParams defines query parameters for listing requests.
type ListRequestsParams struct {
	Status   string `form:"status" binding:"omitempty,oneof=Pending Approved Rejected"`
	Assigned string `form:"assigned" binding:"omitempty,oneof=me"`
}

// LeaveResponse is the leave block of a request.
type LeaveResponse struct {
	Start     string          `json:"start"`
	End       string          `json:"end"`
	Days      decimal.Decimal `json:"days" swaggertype:"number"`
	LeaveType string          `json:"leaveType"`
}

// RequestResponse defines the request data returned by the API.
type RequestResponse struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	UserName      string         `json:"userName"`
	UserEmail     string         `json:"userEmail"`
	CompanyID     string         `json:"companyId"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Category      string         `json:"category"`
	Type          string         `json:"type"`
	Priority      string         `json:"priority"`
	Status        string         `json:"status"`
	AssignedTo    *string        `json:"assignedTo"`
	Deduct        bool           `json:"deduct"`
	Leave         *LeaveResponse `json:"leave,omitempty"`
	DateSubmitted time.Time      `json:"dateSubmitted"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	ApprovedAt    *time.Time     `json:"approvedAt,omitempty"`
	RejectedAt    *time.Time     `json:"rejectedAt,omitempty"`
	DecidedBy     *string        `json:"decidedBy,omitempty"`
}

// RequestEnvelope wraps a single request.
type RequestEnvelope struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty"`
	Request RequestResponse `json:"request"`
}

// RequestsEnvelope wraps a list of requests.
type RequestsEnvelope struct {
	Success  bool              `json:"success" example:"true"`
	Requests []RequestResponse `json:"requests"`
}

// ToRequestResponse converts domain.Request to DTO.
func ToRequestResponse(r *domain.Request) RequestResponse {
	resp := RequestResponse{
		ID:            r.RequestID,
		UserID:        r.UserID,
		UserName:      r.UserName,
		UserEmail:     r.UserEmail,
		CompanyID:     r.CompanyID,
		Title:         r.Title,
		Description:   r.Description,
		Category:      r.Category,
		Type:          r.Type,
		Priority:      r.Priority,
		Status:        string(r.Status),
		AssignedTo:    r.AssignedTo,
		Deduct:        r.Deduct,
		DateSubmitted: r.DateSubmitted,
		LastUpdated:   r.LastUpdated,
		ApprovedAt:    r.ApprovedAt,
		RejectedAt:    r.RejectedAt,
		DecidedBy:     r.DecidedBy,
	}
	if r.Leave != nil {
		resp.Leave = &LeaveResponse{
			Start:     r.Leave.StartDate,
			End:       r.Leave.EndDate,
			Days:      r.Leave.Days,
			LeaveType: string(r.Leave.LeaveType),
		}
	}
	return resp
}

// ToRequestsEnvelope converts a slice of domain.Request to the list envelope.
func ToRequestsEnvelope(requests []domain.Request) RequestsEnvelope {
	list := make([]RequestResponse, len(requests))
	for i := range requests {
		list[i] = ToRequestResponse(&requests[i])
	}
	return RequestsEnvelope{Success: true, Requests: list}
}
