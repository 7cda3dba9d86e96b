package dto

import (
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/client"
)

// AppointmentDTO is an appointment as shown in the agenda, with the warning
// badge for its linked client when there is one.
type AppointmentDTO struct {
	appointment.Appointment
	Flag *appointment.Flag `json:"flag,omitempty"`
}

func NewAppointmentDTO(ap appointment.Appointment, clients []client.Client) AppointmentDTO {
	return AppointmentDTO{
		Appointment: ap,
		Flag:        appointment.Reconcile(ap, clients),
	}
}

type AgendaDTO struct {
	Date         string           `json:"date"`
	Appointments []AppointmentDTO `json:"appointments"`
	NextID       string           `json:"next_id,omitempty"`
	Remaining    int              `json:"remaining"`
}
