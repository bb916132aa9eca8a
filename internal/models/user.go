package models

import "github.com/shopspring/decimal"

// User is the row layout of the users table.
type User struct {
	UserID           string          `db:"user_id"`
	Email            string          `db:"email"`
	FullName         string          `db:"full_name"`
	Role             string          `db:"role"`
	Department       string          `db:"department"`
	JobTitle         string          `db:"job_title"`
	CompanyID        string          `db:"company_id"`
	AnnualBalance    decimal.Decimal `db:"annual_balance"`
	SickBalance      decimal.Decimal `db:"sick_balance"`
	PersonalBalance  decimal.Decimal `db:"personal_balance"`
	EmergencyBalance decimal.Decimal `db:"emergency_balance"`
	AuditFields
}
