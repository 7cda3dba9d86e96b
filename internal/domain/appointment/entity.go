package appointment

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
)

const (
	DefaultDurationMinutes = 30
	DefaultServiceName     = "Serviço a definir"
)

type Appointment struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id,omitempty"`
	ClientName      string          `json:"client_name"`
	EmployeeName    string          `json:"employee_name"`
	ServiceName     string          `json:"service_name"`
	Timestamp       time.Time       `json:"timestamp"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	IsPaid          bool            `json:"is_paid"`
	Status          Status          `json:"status"`
	PaymentMethod   PaymentMethod   `json:"payment_method,omitempty"`
}

// New builds a freshly booked appointment: no price, unpaid, scheduled.
func New(
	id string,
	clientID string,
	clientName string,
	employeeName string,
	serviceName string,
	ts time.Time,
) Appointment {
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return Appointment{
		ID:              id,
		ClientID:        clientID,
		ClientName:      clientName,
		EmployeeName:    employeeName,
		ServiceName:     serviceName,
		Timestamp:       ts,
		DurationMinutes: DefaultDurationMinutes,
		Price:           decimal.Zero,
		IsPaid:          false,
		Status:          InitialStatus(),
	}
}

// ===============================
// Domain Actions
// ===============================

// Checkpoint finalizes an appointment after the service was delivered.
// Empty Status and ServiceName keep the current values; PaymentMethod is
// always taken as given.
type Checkpoint struct {
	Price         decimal.Decimal
	IsPaid        bool
	Status        Status
	PaymentMethod PaymentMethod
	ServiceName   string
}

func ApplyCheckpoint(ap Appointment, cp Checkpoint) (Appointment, error) {
	if cp.Price.IsNegative() {
		return Appointment{}, httperr.ErrBusiness("invalid_price")
	}
	if cp.Status != "" && !cp.Status.Valid() {
		return Appointment{}, httperr.ErrBusiness("invalid_status")
	}
	if !cp.PaymentMethod.Valid() {
		return Appointment{}, httperr.ErrBusiness("invalid_payment_method")
	}

	ap.Price = cp.Price
	ap.IsPaid = cp.IsPaid
	if cp.Status != "" {
		ap.Status = cp.Status
	}
	ap.PaymentMethod = cp.PaymentMethod
	if cp.ServiceName != "" {
		ap.ServiceName = cp.ServiceName
	}
	return ap, nil
}

// TogglePaid flips the paid flag. Marking as paid completes the appointment
// and assigns the default payment method if none was recorded; unmarking
// clears the method and leaves the status alone.
func TogglePaid(ap Appointment) Appointment {
	ap.IsPaid = !ap.IsPaid
	if ap.IsPaid {
		ap.Status = StatusCompleted
		if ap.PaymentMethod == PaymentNone {
			ap.PaymentMethod = DefaultPaymentMethod
		}
	} else {
		ap.PaymentMethod = PaymentNone
	}
	return ap
}

// ===============================
// List helpers (copy on write)
// ===============================

// Insert returns a new list containing aps, ordered by timestamp.
func Insert(list []Appointment, aps ...Appointment) []Appointment {
	out := make([]Appointment, 0, len(list)+len(aps))
	out = append(out, list...)
	out = append(out, aps...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Replace returns a new list where the appointment with id is swapped for
// the result of fn.
func Replace(
	list []Appointment,
	id string,
	fn func(Appointment) (Appointment, error),
) ([]Appointment, Appointment, error) {

	out := make([]Appointment, len(list))
	copy(out, list)

	for i := range out {
		if out[i].ID != id {
			continue
		}
		updated, err := fn(out[i])
		if err != nil {
			return nil, Appointment{}, err
		}
		out[i] = updated
		return out, updated, nil
	}

	return nil, Appointment{}, httperr.ErrBusiness("appointment_not_found")
}

func Find(list []Appointment, id string) (Appointment, bool) {
	for _, ap := range list {
		if ap.ID == id {
			return ap, true
		}
	}
	return Appointment{}, false
}
