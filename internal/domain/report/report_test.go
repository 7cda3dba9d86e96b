package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/employee"
)

func ap(id string, ts time.Time, emp string, price int64, paid bool, status appointment.Status) appointment.Appointment {
	a := appointment.New(id, "", "Cliente "+id, emp, "Corte", ts)
	a.Price = decimal.NewFromInt(price)
	a.IsPaid = paid
	a.Status = status
	return a
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeDailyStats(t *testing.T) {
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	at := day.Add(10 * time.Hour)

	list := []appointment.Appointment{
		ap("1", at, "Ana", 50, true, appointment.StatusCompleted),
		ap("2", at, "Ana", 30, false, appointment.StatusScheduled),
		ap("3", at, "", 40, false, appointment.StatusNoShow),
		ap("4", at, "Bea", 20, true, appointment.StatusCompleted),
		ap("5", at, "Ana", 99, true, appointment.StatusCanceled),
		ap("6", at.AddDate(0, 0, 1), "Ana", 15, true, appointment.StatusCompleted),
	}

	stats := ComputeDailyStats(list, day)

	assert.Equal(t, 4, stats.TotalAppointments)
	assert.Equal(t, 2, stats.CompletedAppointments)
	assert.True(t, stats.TotalRevenue.Equal(dec(70)))
	assert.True(t, stats.PendingPayment.Equal(dec(30)))
	require.Len(t, stats.RevenueByEmployee, 2)
	assert.True(t, stats.RevenueByEmployee["Ana"].Equal(dec(50)))
	assert.True(t, stats.RevenueByEmployee["Bea"].Equal(dec(20)))
}

func TestComputeDailyStats_Empty(t *testing.T) {
	stats := ComputeDailyStats(nil, time.Now())

	assert.Zero(t, stats.TotalAppointments)
	assert.Zero(t, stats.CompletedAppointments)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.True(t, stats.PendingPayment.IsZero())
	assert.NotNil(t, stats.RevenueByEmployee)
	assert.Empty(t, stats.RevenueByEmployee)
}

func TestComputeDailyStats_UnassignedBucket(t *testing.T) {
	day := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	stats := ComputeDailyStats([]appointment.Appointment{
		ap("1", day, "", 25, true, appointment.StatusCompleted),
	}, day)

	assert.True(t, stats.RevenueByEmployee[UnassignedEmployee].Equal(dec(25)))
}

func TestTeamPerformance(t *testing.T) {
	stats := DailyStats{RevenueByEmployee: map[string]decimal.Decimal{
		"Ana":              dec(50),
		"Zeca":             dec(5),
		UnassignedEmployee: dec(10),
	}}
	team := []employee.Employee{{ID: "e1", Name: "Ana"}, {ID: "e2", Name: "Bea"}}

	rows := TeamPerformance(stats, team)

	require.Len(t, rows, 4)
	assert.Equal(t, "Ana", rows[0].EmployeeName)
	assert.True(t, rows[0].Revenue.Equal(dec(50)))
	assert.Equal(t, "Bea", rows[1].EmployeeName)
	assert.True(t, rows[1].Revenue.IsZero())
	assert.Equal(t, UnassignedEmployee, rows[2].EmployeeName)
	assert.Equal(t, "Zeca", rows[3].EmployeeName)
	assert.Empty(t, rows[3].EmployeeID)
}
