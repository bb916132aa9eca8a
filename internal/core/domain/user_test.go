package domain_test

import (
	"testing"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func balance(annual, sick, personal, emergency int64) domain.LeaveBalance {
	return domain.LeaveBalance{
		Annual:    decimal.NewFromInt(annual),
		Sick:      decimal.NewFromInt(sick),
		Personal:  decimal.NewFromInt(personal),
		Emergency: decimal.NewFromInt(emergency),
	}
}

func TestLeaveBalance_Deduct(t *testing.T) {
	tests := []struct {
		name      string
		start     domain.LeaveBalance
		leaveType domain.LeaveType
		days      decimal.Decimal
		want      domain.LeaveBalance
	}{
		{
			name:      "annual bucket decreases by exact days",
			start:     balance(5, 10, 2, 1),
			leaveType: domain.LeaveTypeAnnual,
			days:      decimal.NewFromInt(3),
			want:      balance(2, 10, 2, 1),
		},
		{
			name:      "sick bucket case insensitive",
			start:     balance(5, 10, 2, 1),
			leaveType: domain.LeaveType("Sick"),
			days:      decimal.NewFromInt(4),
			want:      balance(5, 6, 2, 1),
		},
		{
			name:      "floored at zero",
			start:     balance(5, 10, 2, 1),
			leaveType: domain.LeaveTypePersonal,
			days:      decimal.NewFromInt(7),
			want:      balance(5, 10, 0, 1),
		},
		{
			name:      "unknown type draws from annual",
			start:     balance(5, 10, 2, 1),
			leaveType: domain.LeaveType("sabbatical"),
			days:      decimal.NewFromInt(1),
			want:      balance(4, 10, 2, 1),
		},
		{
			name:      "half day on emergency",
			start:     balance(5, 10, 2, 1),
			leaveType: domain.LeaveTypeEmergency,
			days:      decimal.NewFromFloat(0.5),
			want: domain.LeaveBalance{
				Annual:    decimal.NewFromInt(5),
				Sick:      decimal.NewFromInt(10),
				Personal:  decimal.NewFromInt(2),
				Emergency: decimal.NewFromFloat(0.5),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Deduct(tt.leaveType, tt.days)
			assert.True(t, tt.want.Annual.Equal(got.Annual), "annual: want %s got %s", tt.want.Annual, got.Annual)
			assert.True(t, tt.want.Sick.Equal(got.Sick), "sick: want %s got %s", tt.want.Sick, got.Sick)
			assert.True(t, tt.want.Personal.Equal(got.Personal), "personal: want %s got %s", tt.want.Personal, got.Personal)
			assert.True(t, tt.want.Emergency.Equal(got.Emergency), "emergency: want %s got %s", tt.want.Emergency, got.Emergency)
		})
	}
}

func TestParseRole(t *testing.T) {
	r, err := domain.ParseRole(" Admin ")
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, r)

	_, err = domain.ParseRole("owner")
	assert.Error(t, err)
}

func TestRole_Gates(t *testing.T) {
	assert.False(t, domain.RoleMember.IsAdmin())
	assert.True(t, domain.RoleAdmin.IsAdmin())
	assert.True(t, domain.RoleSuperAdmin.IsAdmin())
	assert.False(t, domain.RoleAdmin.IsSuperAdmin())
	assert.True(t, domain.RoleSuperAdmin.IsSuperAdmin())
}

func TestUser_CanViewAndManage(t *testing.T) {
	member := &domain.User{UserID: "m1", CompanyID: "c1", Role: domain.RoleMember}
	other := &domain.User{UserID: "m2", CompanyID: "c1", Role: domain.RoleMember}
	admin := &domain.User{UserID: "a1", CompanyID: "c1", Role: domain.RoleAdmin}
	super := &domain.User{UserID: "s1", CompanyID: "c1", Role: domain.RoleSuperAdmin}
	foreignSuper := &domain.User{UserID: "s2", CompanyID: "c2", Role: domain.RoleSuperAdmin}

	assert.True(t, member.CanView(member))
	assert.False(t, member.CanView(other))
	assert.True(t, admin.CanView(other))
	assert.False(t, foreignSuper.CanView(member))

	assert.True(t, member.CanManage(member))
	assert.False(t, admin.CanManage(other))
	assert.True(t, super.CanManage(other))
	assert.False(t, foreignSuper.CanManage(member))
}
