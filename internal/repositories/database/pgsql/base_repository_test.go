package pgsql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_BuildsPositionalWhere(t *testing.T) {
	var f filter
	f.eqIfSet("u.company_id", "c1")
	f.eqIfSet("u.role", "")
	f.eqIfSet("u.department", "HR")

	assert.Equal(t, " WHERE u.company_id = $1 AND u.department = $2", f.where())
	assert.Equal(t, []any{"c1", "HR"}, f.args)
	assert.Equal(t, " LIMIT 1", f.limit(1))
	assert.Equal(t, "", f.limit(0))
}

func TestFilter_Empty(t *testing.T) {
	var f filter
	assert.Equal(t, "", f.where())
	assert.Empty(t, f.args)
}
