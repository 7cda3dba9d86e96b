package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
)

func TestAdd(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	list := []Employee{{ID: "emp-1", Name: "Ana"}}

	out, emp, err := Add(list, "  Bea  ", now)
	require.NoError(t, err)

	assert.Equal(t, Employee{ID: "emp-1700000000000", Name: "Bea"}, emp)
	assert.Len(t, out, 2)
	assert.Len(t, list, 1)
}

func TestAdd_BlankName(t *testing.T) {
	_, _, err := Add(nil, "   ", time.Now())
	assert.True(t, httperr.IsBusiness(err, "invalid_employee_name"))
}

func TestRemove(t *testing.T) {
	list := []Employee{{ID: "emp-1", Name: "Ana"}, {ID: "emp-2", Name: "Bea"}}

	out, err := Remove(list, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, []Employee{{ID: "emp-2", Name: "Bea"}}, out)

	_, err = Remove(list, "emp-9")
	assert.True(t, httperr.IsBusiness(err, "employee_not_found"))
}

func TestAdd_SameMillisecondGetsDistinctIDs(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	list, first, err := Add(nil, "Ana", now)
	require.NoError(t, err)
	_, second, err := Add(list, "Bea", now)
	require.NoError(t, err)

	assert.Equal(t, "emp-1700000000000", first.ID)
	assert.Equal(t, "emp-1700000000001", second.ID)
}
