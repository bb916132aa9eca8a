package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request is the row layout of the requests table. The leave columns are
// null for non-leave requests.
type Request struct {
	RequestID     string              `db:"request_id"`
	UserID        string              `db:"user_id"`
	UserName      string              `db:"user_name"`
	UserEmail     string              `db:"user_email"`
	CompanyID     string              `db:"company_id"`
	Title         string              `db:"title"`
	Description   string              `db:"description"`
	Category      string              `db:"category"`
	Type          string              `db:"type"`
	Priority      string              `db:"priority"`
	Status        string              `db:"status"`
	AssignedTo    *string             `db:"assigned_to"`
	Deduct        bool                `db:"deduct"`
	LeaveStart    *string             `db:"leave_start"`
	LeaveEnd      *string             `db:"leave_end"`
	LeaveDays     decimal.NullDecimal `db:"leave_days"`
	LeaveType     *string             `db:"leave_type"`
	DateSubmitted time.Time           `db:"date_submitted"`
	LastUpdated   time.Time           `db:"last_updated"`
	ApprovedAt    *time.Time          `db:"approved_at"`
	RejectedAt    *time.Time          `db:"rejected_at"`
	DecidedBy     *string             `db:"decided_by"`
}
