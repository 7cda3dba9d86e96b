package report

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/report"
	"github.com/BruksfildServices01/barber-frontdesk/internal/dto"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// GetDailyStats feeds the dashboard: the day's figures, the team breakdown
// and the next scheduled appointment.
type GetDailyStats struct {
	repo frontdesk.Repository
	now  timezone.Clock
}

func NewGetDailyStats(
	repo frontdesk.Repository,
	now timezone.Clock,
) *GetDailyStats {
	return &GetDailyStats{
		repo: repo,
		now:  now,
	}
}

func (uc *GetDailyStats) Execute(
	ctx context.Context,
	date time.Time,
) (*dto.DashboardDTO, error) {

	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	stats := domain.ComputeDailyStats(snap.Appointments, date)
	day := appointment.OnDate(snap.Appointments, date)

	out := &dto.DashboardDTO{
		Date:      date.Format("2006-01-02"),
		Stats:     stats,
		Team:      domain.TeamPerformance(stats, snap.Employees),
		Remaining: appointment.Remaining(day, uc.now()),
	}
	if next, ok := appointment.Next(day, uc.now()); ok {
		nd := dto.NewAppointmentDTO(next, snap.Clients)
		out.NextAppointment = &nd
	}

	return out, nil
}
