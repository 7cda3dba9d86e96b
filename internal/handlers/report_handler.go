package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
	"github.com/BruksfildServices01/barber-frontdesk/internal/usecase/report"
)

type ReportHandler struct {
	daily     *report.GetDailyStats
	financial *report.GetFinancialClosure

	timezone string
	now      timezone.Clock
}

func NewReportHandler(
	daily *report.GetDailyStats,
	financial *report.GetFinancialClosure,
	tz string,
	now timezone.Clock,
) *ReportHandler {
	return &ReportHandler{
		daily:     daily,
		financial: financial,
		timezone:  tz,
		now:       now,
	}
}

// Dashboard returns the figures of ?date= (today by default).
func (h *ReportHandler) Dashboard(c *gin.Context) {
	day, ok := dateParam(c, h.timezone, h.now)
	if !ok {
		return
	}

	out, err := h.daily.Execute(c.Request.Context(), day)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// Financial returns the closure of ?year= (current year by default).
func (h *ReportHandler) Financial(c *gin.Context) {
	year := 0
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
			return
		}
		year = y
	}

	out, err := h.financial.Execute(c.Request.Context(), year)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}
