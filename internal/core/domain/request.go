package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RequestStatus is the lifecycle state of a request.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// IsTerminal reports whether no further transition is accepted.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusApproved || s == RequestStatusRejected
}

// Request types and categories with routing behaviour attached to them.
const (
	RequestTypeLeave   = "Leave"
	RequestTypeGeneral = "General"

	CategoryHR          = "HR"
	CategoryIT          = "IT"
	CategoryMaintenance = "Maintenance"
	CategoryLeave       = "Leave"

	DefaultPriority   = "Normal"
	DefaultLeaveTitle = "Leave Request"
)

// ErrTransitionNotAllowed is returned when a request has already left Pending.
var ErrTransitionNotAllowed = errors.New("request is not pending")

// LeaveType names the balance bucket a leave request draws from.
type LeaveType string

const (
	LeaveTypeAnnual    LeaveType = "annual"
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypePersonal  LeaveType = "personal"
	LeaveTypeEmergency LeaveType = "emergency"
)

// Bucket normalises the leave type; anything unrecognised draws from annual.
func (t LeaveType) Bucket() LeaveType {
	switch lt := LeaveType(strings.ToLower(strings.TrimSpace(string(t)))); lt {
	case LeaveTypeSick, LeaveTypePersonal, LeaveTypeEmergency:
		return lt
	default:
		return LeaveTypeAnnual
	}
}

// DateLayout is the wire and storage format of leave dates.
const DateLayout = "2006-01-02"

// LeaveDescriptor is the nested leave block of a Leave request.
type LeaveDescriptor struct {
	StartDate string          `json:"start"`
	EndDate   string          `json:"end"`
	Days      decimal.Decimal `json:"days"`
	LeaveType LeaveType       `json:"leaveType"`
}

// InclusiveDays counts calendar days from start to end, both included.
func InclusiveDays(start, end time.Time) int64 {
	return int64(end.Sub(start).Hours()/24) + 1
}

// Request is a general or leave request submitted by a user.
type Request struct {
	RequestID     string           `json:"requestID"`
	UserID        string           `json:"userID"`
	UserName      string           `json:"userName"`
	UserEmail     string           `json:"userEmail"`
	CompanyID     string           `json:"companyID"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Type          string           `json:"type"`
	Priority      string           `json:"priority"`
	Status        RequestStatus    `json:"status"`
	AssignedTo    *string          `json:"assignedTo"`
	Deduct        bool             `json:"deduct"`
	Leave         *LeaveDescriptor `json:"leave,omitempty"`
	DateSubmitted time.Time        `json:"dateSubmitted"`
	LastUpdated   time.Time        `json:"lastUpdated"`
	ApprovedAt    *time.Time       `json:"approvedAt,omitempty"`
	RejectedAt    *time.Time       `json:"rejectedAt,omitempty"`
	DecidedBy     *string          `json:"decidedBy,omitempty"`
}

// IsLeave reports whether the request is of the Leave subtype.
func (r *Request) IsLeave() bool {
	return r.Type == RequestTypeLeave
}

// DeductsBalance reports whether approving r consumes leave balance.
func (r *Request) DeductsBalance() bool {
	return r.IsLeave() && r.Deduct && r.Leave != nil && r.Leave.Days.IsPositive()
}

// RoutingCategory is the category handed to the routing resolver.
func (r *Request) RoutingCategory() string {
	if r.IsLeave() {
		return CategoryLeave
	}
	return r.Category
}

// Transition moves a pending request to a terminal status, stamping the
// decision time and the acting user.
func (r *Request) Transition(to RequestStatus, actorID string, at time.Time) error {
	if r.Status != RequestStatusPending || !to.IsTerminal() {
		return ErrTransitionNotAllowed
	}
	r.Status = to
	r.LastUpdated = at
	r.DecidedBy = &actorID
	switch to {
	case RequestStatusApproved:
		r.ApprovedAt = &at
	case RequestStatusRejected:
		r.RejectedAt = &at
	}
	return nil
}
