package dto

import (
	"time"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LeaveBalanceResponse is the per-bucket balance of a user.
type LeaveBalanceResponse struct {
	Annual    decimal.Decimal `json:"annual" swaggertype:"number"`
	Sick      decimal.Decimal `json:"sick" swaggertype:"number"`
	Personal  decimal.Decimal `json:"personal" swaggertype:"number"`
	Emergency decimal.Decimal `json:"emergency" swaggertype:"number"`
}

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	ID           string               `json:"id"`
	Email        string               `json:"email"`
	FullName     string               `json:"fullName"`
	Role         string               `json:"role"`
	Department   string               `json:"department"`
	JobTitle     string               `json:"jobTitle"`
	CompanyID    string               `json:"companyId"`
	LeaveBalance LeaveBalanceResponse `json:"leaveBalance"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// UserEnvelope wraps a single user.
type UserEnvelope struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message,omitempty"`
	User    UserResponse `json:"user"`
}

// UsersEnvelope wraps a list of users.
type UsersEnvelope struct {
	Success bool           `json:"success" example:"true"`
	Users   []UserResponse `json:"users"`
}

// UpdateProfileRequest changes the organisational fields of a user.
type UpdateProfileRequest struct {
	Department *string `json:"department"`
	JobTitle   *string `json:"jobTitle"`
}

// UpdateUserRoleRequest sets a user's role directly.
type UpdateUserRoleRequest struct {
	Role       string  `json:"role" binding:"required"`
	JobTitle   *string `json:"jobTitle"`
	Department *string `json:"department"`
}

// CreateAdminRequest provisions a brand new admin account.
type CreateAdminRequest struct {
	FullName   string `json:"fullName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Department string `json:"department" binding:"required"`
}

// PromoteToAdminRequest turns an existing member into an admin.
type PromoteToAdminRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// ToUserResponse converts domain.User to DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:         u.UserID,
		Email:      u.Email,
		FullName:   u.FullName,
		Role:       string(u.Role),
		Department: u.Department,
		JobTitle:   u.JobTitle,
		CompanyID:  u.CompanyID,
		LeaveBalance: LeaveBalanceResponse{
			Annual:    u.LeaveBalance.Annual,
			Sick:      u.LeaveBalance.Sick,
			Personal:  u.LeaveBalance.Personal,
			Emergency: u.LeaveBalance.Emergency,
		},
		CreatedAt: u.CreatedAt,
	}
}

// ToUsersEnvelope converts a slice of domain.User to the list envelope.
func ToUsersEnvelope(users []domain.User) UsersEnvelope {
	list := make([]UserResponse, len(users))
	for i := range users {
		list[i] = ToUserResponse(&users[i])
	}
	return UsersEnvelope{Success: true, Users: list}
}
