package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	"github.com/BruksfildServices01/barber-frontdesk/internal/dto"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo frontdesk.Repository
	now  timezone.Clock
}

func NewListAppointmentsByDate(
	repo frontdesk.Repository,
	now timezone.Clock,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		now:  now,
	}
}

// Execute returns the agenda of the calendar day of date, each appointment
// reconciled against the current client list. The next appointment and the
// remaining count are relative to the clock.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) (*dto.AgendaDTO, error) {

	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	day := domain.OnDate(snap.Appointments, date)

	out := &dto.AgendaDTO{
		Date:         date.Format("2006-01-02"),
		Appointments: make([]dto.AppointmentDTO, 0, len(day)),
		Remaining:    domain.Remaining(day, uc.now()),
	}
	for _, ap := range day {
		out.Appointments = append(out.Appointments, dto.NewAppointmentDTO(ap, snap.Clients))
	}
	if next, ok := domain.Next(day, uc.now()); ok {
		out.NextID = next.ID
	}

	return out, nil
}
