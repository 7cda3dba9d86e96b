package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
)

type QuickTogglePayment struct {
	repo  frontdesk.Repository
	audit *audit.Dispatcher
}

func NewQuickTogglePayment(
	repo frontdesk.Repository,
	audit *audit.Dispatcher,
) *QuickTogglePayment {
	return &QuickTogglePayment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *QuickTogglePayment) Execute(
	ctx context.Context,
	actor string,
	appointmentID string,
) (*domain.Appointment, error) {

	var updated domain.Appointment
	_, err := uc.repo.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		list, ap, err := domain.Replace(snap.Appointments, appointmentID, func(ap domain.Appointment) (domain.Appointment, error) {
			return domain.TogglePaid(ap), nil
		})
		if err != nil {
			return snap, err
		}
		snap.Appointments = list
		updated = ap
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "appointment_payment_toggled",
		Entity:   "appointment",
		EntityID: updated.ID,
		Metadata: map[string]any{
			"is_paid":        updated.IsPaid,
			"payment_method": updated.PaymentMethod,
		},
	})

	return &updated, nil
}
