package models

import "github.com/shopspring/decimal"

// Company is the row layout of the companies table.
type Company struct {
	CompanyID      string              `db:"company_id"`
	Name           string              `db:"name"`
	CompanyCode    string              `db:"company_code"`
	AnnualLeave    decimal.Decimal     `db:"annual_leave"`
	SickLeave      decimal.Decimal     `db:"sick_leave"`
	PersonalLeave  decimal.Decimal     `db:"personal_leave"`
	EmergencyLeave decimal.Decimal     `db:"emergency_leave"`
	Departments    []string            `db:"departments"`
	JobTitles      map[string][]string `db:"job_titles"`
	CreatedBy      string              `db:"created_by"`
	AuditFields
}
