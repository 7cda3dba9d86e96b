package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/report"
)

type DashboardDTO struct {
	Date            string                   `json:"date"`
	Stats           report.DailyStats        `json:"stats"`
	Team            []report.EmployeeRevenue `json:"team"`
	NextAppointment *AppointmentDTO          `json:"next_appointment,omitempty"`
	Remaining       int                      `json:"remaining"`
}

type FinancialClosureDTO struct {
	Year           int                    `json:"year"`
	AnnualRevenue  decimal.Decimal        `json:"annual_revenue"`
	AnnualServices int                    `json:"annual_services"`
	AverageMonthly decimal.Decimal        `json:"average_monthly"`
	AverageDivisor int                    `json:"average_divisor"`
	History        []report.MonthlyReport `json:"history"`
	GeneratedAt    time.Time              `json:"generated_at"`
}
