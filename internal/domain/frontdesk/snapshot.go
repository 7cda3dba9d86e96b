package frontdesk

import (
	"context"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/client"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/employee"
)

// Snapshot is one immutable version of the front desk dataset.
// Holders must never mutate the slices; mutations build new ones.
type Snapshot struct {
	Version      uint64
	Appointments []appointment.Appointment
	Clients      []client.Client
	Employees    []employee.Employee
}

// UpdateFunc derives the next snapshot from the current one. Returning an
// error discards the update.
type UpdateFunc func(Snapshot) (Snapshot, error)

type Repository interface {
	// -------- Read --------
	Snapshot(ctx context.Context) (Snapshot, error)

	// -------- Write (serialized) --------
	Update(ctx context.Context, fn UpdateFunc) (Snapshot, error)
}
