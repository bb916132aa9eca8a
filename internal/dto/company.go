package dto

import (
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VerifyCompanyCodeRequest looks up a company before joining it.
type VerifyCompanyCodeRequest struct {
	CompanyCode string `json:"companyCode" binding:"required"`
}

// VerifyCompanyCodeResponse tells the joining user what they are joining.
type VerifyCompanyCodeResponse struct {
	Success     bool     `json:"success" example:"true"`
	CompanyName string   `json:"companyName"`
	Departments []string `json:"departments"`
}

// RegisterRequest creates the directory record for a signed-in identity.
// UID is optional; when present it must match the token subject.
type RegisterRequest struct {
	FullName          string `json:"fullName" binding:"required"`
	Email             string `json:"email" binding:"omitempty,email"`
	UID               string `json:"uid"`
	CompanyCode       string `json:"companyCode" binding:"required_without=IsCreatingCompany"`
	CompanyName       string `json:"companyName" binding:"required_if=IsCreatingCompany true"`
	IsCreatingCompany bool   `json:"isCreatingCompany"`
}

// RegisterResponse returns the new user and their company.
type RegisterResponse struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty"`
	User    UserResponse    `json:"user"`
	Company CompanyResponse `json:"company"`
}

// UpdateCompanySettingsRequest is a partial settings update; nil fields are left unchanged.
type UpdateCompanySettingsRequest struct {
	AnnualLeave    *decimal.Decimal    `json:"annualLeave" swaggertype:"number"`
	SickLeave      *decimal.Decimal    `json:"sickLeave" swaggertype:"number"`
	PersonalLeave  *decimal.Decimal    `json:"personalLeave" swaggertype:"number"`
	EmergencyLeave *decimal.Decimal    `json:"emergencyLeave" swaggertype:"number"`
	Departments    []string            `json:"departments" binding:"omitempty,dive,required"`
	JobTitles      map[string][]string `json:"jobTitles"`
}

// CompanySettingsResponse defines the settings block returned to clients.
type CompanySettingsResponse struct {
	AnnualLeave    decimal.Decimal     `json:"annualLeave" swaggertype:"number"`
	SickLeave      decimal.Decimal     `json:"sickLeave" swaggertype:"number"`
	PersonalLeave  decimal.Decimal     `json:"personalLeave" swaggertype:"number"`
	EmergencyLeave decimal.Decimal     `json:"emergencyLeave" swaggertype:"number"`
	Departments    []string            `json:"departments"`
	JobTitles      map[string][]string `json:"jobTitles"`
}

// CompanyResponse defines data returned for a company.
type CompanyResponse struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	CompanyCode string                  `json:"companyCode"`
	Settings    CompanySettingsResponse `json:"settings"`
	CreatedAt   time.Time               `json:"createdAt"`
}

// CompanyEnvelope wraps a single company.
type CompanyEnvelope struct {
	Success bool            `json:"success" example:"true"`
	Message string          `json:"message,omitempty"`
	Company CompanyResponse `json:"company"`
}

// ToCompanyResponse converts domain.Company to DTO.
func ToCompanyResponse(c *domain.Company) CompanyResponse {
	departments := c.Settings.Departments
	if departments == nil {
		departments = []string{}
	}
	jobTitles := c.Settings.JobTitles
	if jobTitles == nil {
		jobTitles = map[string][]string{}
	}
	return CompanyResponse{
		ID:          c.CompanyID,
		Name:        c.Name,
		CompanyCode: c.CompanyCode,
		Settings: CompanySettingsResponse{
			AnnualLeave:    c.Settings.AnnualLeave,
			SickLeave:      c.Settings.SickLeave,
			PersonalLeave:  c.Settings.PersonalLeave,
			EmergencyLeave: c.Settings.EmergencyLeave,
			Departments:    departments,
			JobTitles:      jobTitles,
		},
		CreatedAt: c.CreatedAt,
	}
}
