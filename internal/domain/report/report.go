package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/employee"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// UnassignedEmployee is the revenue bucket for appointments without an
// employee name, in both the daily and the monthly breakdowns.
const UnassignedEmployee = "Unassigned"

func employeeKey(name string) string {
	if name == "" {
		return UnassignedEmployee
	}
	return name
}

// ===============================
// Daily Stats
// ===============================

type DailyStats struct {
	TotalAppointments     int                        `json:"total_appointments"`
	CompletedAppointments int                        `json:"completed_appointments"`
	TotalRevenue          decimal.Decimal            `json:"total_revenue"`
	PendingPayment        decimal.Decimal            `json:"pending_payment"`
	RevenueByEmployee     map[string]decimal.Decimal `json:"revenue_by_employee"`
}

// ComputeDailyStats aggregates the appointments that fall on day's calendar
// date. Canceled appointments are ignored. Unpaid no-shows count towards the
// total but add nothing to revenue or pending payment.
func ComputeDailyStats(list []appointment.Appointment, day time.Time) DailyStats {
	stats := DailyStats{
		TotalRevenue:      decimal.Zero,
		PendingPayment:    decimal.Zero,
		RevenueByEmployee: map[string]decimal.Decimal{},
	}

	for _, ap := range list {
		if !timezone.SameDay(ap.Timestamp, day) {
			continue
		}
		if ap.Status == appointment.StatusCanceled {
			continue
		}

		stats.TotalAppointments++
		if ap.Status == appointment.StatusCompleted {
			stats.CompletedAppointments++
		}

		switch {
		case ap.IsPaid:
			stats.TotalRevenue = stats.TotalRevenue.Add(ap.Price)
			key := employeeKey(ap.EmployeeName)
			stats.RevenueByEmployee[key] = stats.RevenueByEmployee[key].Add(ap.Price)
		case ap.Status != appointment.StatusNoShow:
			stats.PendingPayment = stats.PendingPayment.Add(ap.Price)
		}
	}

	return stats
}

// ===============================
// Team Performance
// ===============================

type EmployeeRevenue struct {
	EmployeeID   string          `json:"employee_id,omitempty"`
	EmployeeName string          `json:"employee_name"`
	Revenue      decimal.Decimal `json:"revenue"`
}

// TeamPerformance lists one row per registered employee, in registration
// order, with the revenue found in stats. Revenue booked under names that
// are no longer registered is appended afterwards, sorted by name.
func TeamPerformance(stats DailyStats, employees []employee.Employee) []EmployeeRevenue {
	out := make([]EmployeeRevenue, 0, len(employees))
	seen := make(map[string]bool, len(employees))

	for _, e := range employees {
		rev, ok := stats.RevenueByEmployee[e.Name]
		if !ok {
			rev = decimal.Zero
		}
		out = append(out, EmployeeRevenue{
			EmployeeID:   e.ID,
			EmployeeName: e.Name,
			Revenue:      rev,
		})
		seen[e.Name] = true
	}

	extra := make([]EmployeeRevenue, 0)
	for name, rev := range stats.RevenueByEmployee {
		if seen[name] {
			continue
		}
		extra = append(extra, EmployeeRevenue{EmployeeName: name, Revenue: rev})
	}
	sortByName(extra)

	return append(out, extra...)
}
