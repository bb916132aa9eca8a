package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// FallbackDepartment is used when a company has no departments configured.
const FallbackDepartment = "IT"

// CompanySettings is the company-wide policy edited by the superadmin.
type CompanySettings struct {
	AnnualLeave    decimal.Decimal     `json:"annualLeave"`
	SickLeave      decimal.Decimal     `json:"sickLeave"`
	PersonalLeave  decimal.Decimal     `json:"personalLeave"`
	EmergencyLeave decimal.Decimal     `json:"emergencyLeave"`
	Departments    []string            `json:"departments"`
	JobTitles      map[string][]string `json:"jobTitles"`
}

// DefaultCompanySettings returns the policy a new company starts with.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		AnnualLeave:    decimal.NewFromInt(20),
		SickLeave:      decimal.NewFromInt(10),
		PersonalLeave:  decimal.Zero,
		EmergencyLeave: decimal.Zero,
		Departments:    []string{"IT", "HR", "Maintenance", "Finance", "Operations"},
		JobTitles: map[string][]string{
			"IT":          {"Head of IT", "IT Manager", "Developer", "System Administrator", "IT Support"},
			"HR":          {"Head of HR", "HR Manager", "HR Coordinator", "Recruiter"},
			"Maintenance": {"Head of Maintenance", "Maintenance Manager", "Technician"},
			"Finance":     {"Head of Finance", "Finance Manager", "Accountant", "Financial Analyst"},
			"Operations":  {"Head of Operations", "Operations Manager", "Coordinator"},
		},
	}
}

// DefaultBalance is the leave balance given to a user joining the company.
func (s CompanySettings) DefaultBalance() LeaveBalance {
	return LeaveBalance{
		Annual:    s.AnnualLeave,
		Sick:      s.SickLeave,
		Personal:  s.PersonalLeave,
		Emergency: s.EmergencyLeave,
	}
}

// HasDepartment reports whether department is configured. A company with no
// departments accepts any value.
func (s CompanySettings) HasDepartment(department string) bool {
	if len(s.Departments) == 0 {
		return true
	}
	return slices.Contains(s.Departments, department)
}

// Company is a tenant. Every other record is scoped by CompanyID.
type Company struct {
	CompanyID   string          `json:"companyID"`
	Name        string          `json:"name"`
	CompanyCode string          `json:"companyCode"`
	Settings    CompanySettings `json:"settings"`
	CreatedBy   string          `json:"createdBy"`
	AuditFields
}

// PrimaryDepartment is the department assigned when none is given.
func (c *Company) PrimaryDepartment() string {
	if len(c.Settings.Departments) > 0 {
		return c.Settings.Departments[0]
	}
	return FallbackDepartment
}
