package models

import "time"

// AdminRequest is the row layout of the admin_requests table.
type AdminRequest struct {
	AdminRequestID string     `db:"admin_request_id"`
	UserID         string     `db:"user_id"`
	UserName       string     `db:"user_name"`
	UserEmail      string     `db:"user_email"`
	CompanyID      string     `db:"company_id"`
	Status         string     `db:"status"`
	CreatedAt      time.Time  `db:"created_at"`
	ApprovedAt     *time.Time `db:"approved_at"`
	RejectedAt     *time.Time `db:"rejected_at"`
}
