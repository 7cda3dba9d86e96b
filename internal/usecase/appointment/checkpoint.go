package appointment

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
)

type ConfirmCheckpointInput struct {
	Actor         string
	AppointmentID string

	Price         decimal.Decimal
	IsPaid        bool
	Status        domain.Status
	PaymentMethod domain.PaymentMethod
	ServiceName   string
}

type ConfirmCheckpoint struct {
	repo  frontdesk.Repository
	audit *audit.Dispatcher
}

func NewConfirmCheckpoint(
	repo frontdesk.Repository,
	audit *audit.Dispatcher,
) *ConfirmCheckpoint {
	return &ConfirmCheckpoint{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmCheckpoint) Execute(
	ctx context.Context,
	in ConfirmCheckpointInput,
) (*domain.Appointment, error) {

	cp := domain.Checkpoint{
		Price:         in.Price,
		IsPaid:        in.IsPaid,
		Status:        in.Status,
		PaymentMethod: in.PaymentMethod,
		ServiceName:   in.ServiceName,
	}

	var updated domain.Appointment
	_, err := uc.repo.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		list, ap, err := domain.Replace(snap.Appointments, in.AppointmentID, func(ap domain.Appointment) (domain.Appointment, error) {
			return domain.ApplyCheckpoint(ap, cp)
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
		Actor:    in.Actor,
		Action:   "appointment_checkpoint",
		Entity:   "appointment",
		EntityID: updated.ID,
		Metadata: map[string]any{
			"price":          updated.Price.String(),
			"is_paid":        updated.IsPaid,
			"status":         updated.Status,
			"payment_method": updated.PaymentMethod,
		},
	})

	return &updated, nil
}
