package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/client"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Actor string

	ClientName  string
	ClientPhone string

	EmployeeName string
	ServiceName  string

	// Date is YYYY-MM-DD in the shop timezone. Hour and Minute are clamped
	// into a valid clock time.
	Date   string
	Hour   int
	Minute int
}

type CreateAppointmentOutput struct {
	Appointment   domain.Appointment
	Client        client.Client
	ClientCreated bool
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     frontdesk.Repository
	audit    *audit.Dispatcher
	now      timezone.Clock
	timezone string
	log      *zap.Logger
}

func NewCreateAppointment(
	repo frontdesk.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
	tz string,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		audit:    audit,
		now:      now,
		timezone: tz,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*CreateAppointmentOutput, error) {

	// --------------------------------------------------
	// 1️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	day, err := timezone.ParseDate(uc.timezone, strings.TrimSpace(in.Date))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	ts := time.Date(
		day.Year(), day.Month(), day.Day(),
		clamp(in.Hour, 0, 23), clamp(in.Minute, 0, 59), 0, 0,
		day.Location(),
	)

	var out CreateAppointmentOutput
	_, err = uc.repo.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {

		// --------------------------------------------------
		// 2️⃣ Cliente (resolve or create)
		// --------------------------------------------------
		before := len(snap.Clients)
		c, clients, err := client.ResolveOrCreate(
			snap.Clients,
			in.ClientName,
			in.ClientPhone,
			uc.now(),
		)
		if err != nil {
			return snap, err
		}

		// --------------------------------------------------
		// 3️⃣ Agendamento referenciando o cliente resolvido
		// --------------------------------------------------
		ap := domain.New(
			uuid.NewString(),
			c.ID,
			strings.TrimSpace(in.ClientName),
			strings.TrimSpace(in.EmployeeName),
			strings.TrimSpace(in.ServiceName),
			ts,
		)

		snap.Clients = clients
		snap.Appointments = domain.Insert(snap.Appointments, ap)

		out = CreateAppointmentOutput{
			Appointment:   ap,
			Client:        c,
			ClientCreated: len(clients) > before,
		}
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	if out.ClientCreated {
		uc.audit.Dispatch(audit.Event{
			Actor:    in.Actor,
			Action:   "client_created",
			Entity:   "client",
			EntityID: out.Client.ID,
		})
	}
	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: out.Appointment.ID,
		Metadata: map[string]any{
			"client_id": out.Client.ID,
			"timestamp": out.Appointment.Timestamp,
		},
	})

	uc.log.Debug("appointment created",
		zap.String("appointment_id", out.Appointment.ID),
		zap.Bool("client_created", out.ClientCreated),
	)

	return &out, nil
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}
