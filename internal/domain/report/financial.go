package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// HistoryMonths is the length of the rolling monthly history.
const HistoryMonths = 6

type MonthlyReport struct {
	Label             string                     `json:"label"`
	Month             int                        `json:"month"`
	Year              int                        `json:"year"`
	Revenue           decimal.Decimal            `json:"revenue"`
	CompletedServices int                        `json:"completed_services"`
	RevenueByEmployee map[string]decimal.Decimal `json:"revenue_by_employee"`
}

type FinancialReport struct {
	Year           int             `json:"year"`
	AnnualRevenue  decimal.Decimal `json:"annual_revenue"`
	AnnualServices int             `json:"annual_services"`
	History        []MonthlyReport `json:"history"`
}

// BuildFinancialReport computes the closure for year and the rolling history
// anchored at now. The annual figures never look at now and the history
// never looks at year.
func BuildFinancialReport(
	list []appointment.Appointment,
	year int,
	now time.Time,
) FinancialReport {

	loc := now.Location()

	rep := FinancialReport{
		Year:          year,
		AnnualRevenue: decimal.Zero,
		History:       make([]MonthlyReport, 0, HistoryMonths),
	}

	for _, ap := range list {
		if ap.Timestamp.In(loc).Year() != year {
			continue
		}
		if ap.IsPaid {
			rep.AnnualRevenue = rep.AnnualRevenue.Add(ap.Price)
		}
		if ap.Status == appointment.StatusCompleted {
			rep.AnnualServices++
		}
	}

	for offset := 0; offset < HistoryMonths; offset++ {
		y, m := monthsBack(now, offset)
		rep.History = append(rep.History, buildMonth(list, y, m, loc))
	}

	return rep
}

func buildMonth(
	list []appointment.Appointment,
	year int,
	month time.Month,
	loc *time.Location,
) MonthlyReport {

	mr := MonthlyReport{
		Label:             MonthLabel(year, month),
		Month:             int(month),
		Year:              year,
		Revenue:           decimal.Zero,
		RevenueByEmployee: map[string]decimal.Decimal{},
	}

	for _, ap := range list {
		if !timezone.SameMonth(ap.Timestamp, year, month, loc) {
			continue
		}
		if ap.Status == appointment.StatusCompleted {
			mr.CompletedServices++
		}
		if ap.IsPaid {
			mr.Revenue = mr.Revenue.Add(ap.Price)
			key := employeeKey(ap.EmployeeName)
			mr.RevenueByEmployee[key] = mr.RevenueByEmployee[key].Add(ap.Price)
		}
	}

	return mr
}

// monthsBack steps offset calendar months back from now's month.
func monthsBack(now time.Time, offset int) (int, time.Month) {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	t := first.AddDate(0, -offset, 0)
	return t.Year(), t.Month()
}

// AverageDivisor is the number of months the annual revenue is averaged
// over: the elapsed months for the current year, 12 otherwise.
func AverageDivisor(year int, now time.Time) int {
	if year != now.Year() {
		return 12
	}
	return max(1, int(now.Month()))
}

func AverageMonthlyRevenue(rep FinancialReport, now time.Time) decimal.Decimal {
	div := decimal.NewFromInt(int64(AverageDivisor(rep.Year, now)))
	return rep.AnnualRevenue.DivRound(div, 2)
}

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// MonthLabel renders the pt-BR long month form, e.g. "maio de 2024".
func MonthLabel(year int, month time.Month) string {
	if month < time.January || month > time.December {
		return fmt.Sprintf("%d", year)
	}
	return fmt.Sprintf("%s de %d", monthNames[month-1], year)
}

func sortByName(rows []EmployeeRevenue) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].EmployeeName < rows[j].EmployeeName
	})
}
