package domain_test

import (
	"testing"

	"github.com/SscSPs/officeflow/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCompany_PrimaryDepartment(t *testing.T) {
	c := domain.Company{Settings: domain.DefaultCompanySettings()}
	assert.Equal(t, "IT", c.PrimaryDepartment())

	c.Settings.Departments = []string{"Sales"}
	assert.Equal(t, "Sales", c.PrimaryDepartment())

	c.Settings.Departments = nil
	assert.Equal(t, domain.FallbackDepartment, c.PrimaryDepartment())
}

func TestCompanySettings_HasDepartment(t *testing.T) {
	s := domain.DefaultCompanySettings()
	assert.True(t, s.HasDepartment("Finance"))
	assert.False(t, s.HasDepartment("Legal"))

	s.Departments = nil
	assert.True(t, s.HasDepartment("Legal"))
}
