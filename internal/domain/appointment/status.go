package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCanceled  Status = "CANCELED"
	StatusNoShow    Status = "NO_SHOW"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// InitialStatus is the status of every newly booked appointment.
func InitialStatus() Status {
	return StatusScheduled
}

// ===============================
// Payment Method
// ===============================

type PaymentMethod string

const (
	PaymentNone PaymentMethod = ""
	PaymentCash PaymentMethod = "CASH"
	PaymentPix  PaymentMethod = "PIX"
	PaymentCard PaymentMethod = "CARD"
)

// DefaultPaymentMethod is assigned by the quick toggle when none is set.
const DefaultPaymentMethod = PaymentPix

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentNone, PaymentCash, PaymentPix, PaymentCard:
		return true
	}
	return false
}
