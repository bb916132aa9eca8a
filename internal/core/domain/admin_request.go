package domain

import "time"

// AdminRequestStatus is the lifecycle state of a self-nomination.
type AdminRequestStatus string

const (
	AdminRequestPending  AdminRequestStatus = "pending"
	AdminRequestApproved AdminRequestStatus = "approved"
	AdminRequestRejected AdminRequestStatus = "rejected"
)

// AdminRequest records a member asking to become an admin.
type AdminRequest struct {
	AdminRequestID string             `json:"adminRequestID"`
	UserID         string             `json:"userID"`
	UserName       string             `json:"userName"`
	UserEmail      string             `json:"userEmail"`
	CompanyID      string             `json:"companyID"`
	Status         AdminRequestStatus `json:"status"`
	CreatedAt      time.Time          `json:"createdAt"`
	ApprovedAt     *time.Time         `json:"approvedAt,omitempty"`
	RejectedAt     *time.Time         `json:"rejectedAt,omitempty"`
}

// Decide moves a pending admin request to approved or rejected.
func (a *AdminRequest) Decide(to AdminRequestStatus, at time.Time) error {
	if a.Status != AdminRequestPending || to == AdminRequestPending {
		return ErrTransitionNotAllowed
	}
	a.Status = to
	if to == AdminRequestApproved {
		a.ApprovedAt = &at
	} else {
		a.RejectedAt = &at
	}
	return nil
}
