package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Role is the tier a user holds inside their company.
type Role string

const (
	RoleMember     Role = "member"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// ParseRole converts raw input into a Role, rejecting anything outside the three tiers.
func ParseRole(raw string) (Role, error) {
	switch r := Role(strings.ToLower(strings.TrimSpace(raw))); r {
	case RoleMember, RoleAdmin, RoleSuperAdmin:
		return r, nil
	default:
		return "", fmt.Errorf("invalid role %q", raw)
	}
}

// IsAdmin reports whether the role passes the admin gate (admin or superadmin).
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// IsSuperAdmin reports whether the role passes the superadmin gate.
func (r Role) IsSuperAdmin() bool {
	return r == RoleSuperAdmin
}

// LeaveBalance holds the days remaining per leave bucket.
type LeaveBalance struct {
	Annual    decimal.Decimal `json:"annual"`
	Sick      decimal.Decimal `json:"sick"`
	Personal  decimal.Decimal `json:"personal"`
	Emergency decimal.Decimal `json:"emergency"`
}

// Get returns the remaining days of the bucket selected by t.
func (b LeaveBalance) Get(t LeaveType) decimal.Decimal {
	switch t.Bucket() {
	case LeaveTypeSick:
		return b.Sick
	case LeaveTypePersonal:
		return b.Personal
	case LeaveTypeEmergency:
		return b.Emergency
	default:
		return b.Annual
	}
}

// Deduct returns a copy of the balance with days removed from the bucket
// selected by t. The bucket never drops below zero; other buckets are untouched.
func (b LeaveBalance) Deduct(t LeaveType, days decimal.Decimal) LeaveBalance {
	remaining := decimal.Max(decimal.Zero, b.Get(t).Sub(days))
	switch t.Bucket() {
	case LeaveTypeSick:
		b.Sick = remaining
	case LeaveTypePersonal:
		b.Personal = remaining
	case LeaveTypeEmergency:
		b.Emergency = remaining
	default:
		b.Annual = remaining
	}
	return b
}

// User is a member of a company, also used as the authenticated principal
// once loaded from the directory.
type User struct {
	UserID       string       `json:"userID"` // equals the identity subject
	Email        string       `json:"email"`
	FullName     string       `json:"fullName"`
	Role         Role         `json:"role"`
	Department   string       `json:"department"`
	JobTitle     string       `json:"jobTitle"`
	CompanyID    string       `json:"companyID"`
	LeaveBalance LeaveBalance `json:"leaveBalance"`
	AuditFields
}

// CanManage reports whether u may act on target: same company and either
// the same user or a superadmin.
func (u *User) CanManage(target *User) bool {
	if u.CompanyID != target.CompanyID {
		return false
	}
	return u.UserID == target.UserID || u.Role.IsSuperAdmin()
}

// CanView reports whether u may read target's profile.
func (u *User) CanView(target *User) bool {
	if u.CompanyID != target.CompanyID {
		return false
	}
	return u.UserID == target.UserID || u.Role.IsAdmin()
}

// HeadOfTitle is the job title given to a department admin.
func HeadOfTitle(department string) string {
	return "Head of " + department
}
