package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
)

func TestBuildFinancialReport_Annual(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	list := []appointment.Appointment{
		ap("1", time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC), "Ana", 50, true, appointment.StatusCompleted),
		ap("2", time.Date(2024, 7, 5, 10, 0, 0, 0, time.UTC), "Bea", 30, false, appointment.StatusCompleted),
		ap("3", time.Date(2024, 9, 5, 10, 0, 0, 0, time.UTC), "Bea", 20, true, appointment.StatusScheduled),
		ap("4", time.Date(2025, 1, 5, 10, 0, 0, 0, time.UTC), "Ana", 80, true, appointment.StatusCompleted),
	}

	rep := BuildFinancialReport(list, 2024, now)

	assert.Equal(t, 2024, rep.Year)
	assert.True(t, rep.AnnualRevenue.Equal(dec(70)))
	assert.Equal(t, 2, rep.AnnualServices)

	require.Len(t, rep.History, HistoryMonths)
	for _, m := range rep.History {
		assert.True(t, m.Revenue.IsZero(), m.Label)
	}
}

func TestBuildFinancialReport_HistoryRollsOverYear(t *testing.T) {
	now := time.Date(2026, 2, 20, 12, 0, 0, 0, time.UTC)

	list := []appointment.Appointment{
		ap("1", time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), "Ana", 40, true, appointment.StatusCompleted),
		ap("2", time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC), "", 10, true, appointment.StatusCompleted),
		ap("3", time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC), "Bea", 25, true, appointment.StatusCompleted),
		ap("4", time.Date(2025, 12, 26, 9, 0, 0, 0, time.UTC), "Bea", 35, false, appointment.StatusCompleted),
		ap("5", time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC), "Ana", 99, true, appointment.StatusCompleted),
	}

	rep := BuildFinancialReport(list, 1999, now)

	require.Len(t, rep.History, 6)

	want := []struct {
		year  int
		month int
		label string
	}{
		{2026, 2, "fevereiro de 2026"},
		{2026, 1, "janeiro de 2026"},
		{2025, 12, "dezembro de 2025"},
		{2025, 11, "novembro de 2025"},
		{2025, 10, "outubro de 2025"},
		{2025, 9, "setembro de 2025"},
	}
	for i, w := range want {
		assert.Equal(t, w.year, rep.History[i].Year)
		assert.Equal(t, w.month, rep.History[i].Month)
		assert.Equal(t, w.label, rep.History[i].Label)
	}

	feb := rep.History[0]
	assert.True(t, feb.Revenue.Equal(dec(50)))
	assert.Equal(t, 2, feb.CompletedServices)
	assert.True(t, feb.RevenueByEmployee["Ana"].Equal(dec(40)))
	assert.True(t, feb.RevenueByEmployee[UnassignedEmployee].Equal(dec(10)))

	dec25 := rep.History[2]
	assert.True(t, dec25.Revenue.Equal(dec(25)))
	assert.Equal(t, 2, dec25.CompletedServices)

	assert.Empty(t, rep.History[1].RevenueByEmployee)
	assert.True(t, rep.AnnualRevenue.IsZero())
}

func TestBuildFinancialReport_EndOfMonthAnchor(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	rep := BuildFinancialReport(nil, 2026, now)

	assert.Equal(t, 3, rep.History[0].Month)
	assert.Equal(t, 2, rep.History[1].Month)
	assert.Equal(t, 1, rep.History[2].Month)
	assert.Equal(t, 12, rep.History[3].Month)
	assert.Equal(t, 2025, rep.History[3].Year)
}

func TestAverageDivisor(t *testing.T) {
	assert.Equal(t, 1, AverageDivisor(2026, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 10, AverageDivisor(2026, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 12, AverageDivisor(2025, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 12, AverageDivisor(2027, time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)))
}

func TestAverageMonthlyRevenue(t *testing.T) {
	now := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	rep := FinancialReport{Year: 2026, AnnualRevenue: dec(100)}

	assert.Equal(t, "25", AverageMonthlyRevenue(rep, now).String())

	rep.Year = 2025
	assert.Equal(t, "8.33", AverageMonthlyRevenue(rep, now).String())
}

func TestMonthLabel(t *testing.T) {
	assert.Equal(t, "março de 2024", MonthLabel(2024, time.March))
	assert.Equal(t, "outubro de 2026", MonthLabel(2026, time.October))
}
