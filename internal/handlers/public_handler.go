package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontdesk/internal/usecase/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/usecase/team"
)

const publicActor = "public"

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the booking page: no login, read access to the team
// and creation of scheduled appointments only.
type PublicHandler struct {
	employees *team.ListEmployees
	create    *appointment.CreateAppointment
}

func NewPublicHandler(
	employees *team.ListEmployees,
	create *appointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		employees: employees,
		create:    create,
	}
}

////////////////////////////////////////////////////////
// EMPLOYEES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListEmployees(c *gin.Context) {
	list, err := h.employees.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

////////////////////////////////////////////////////////
// BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), toCreateInput(publicActor, req))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":            out.Appointment.ID,
		"timestamp":     out.Appointment.Timestamp,
		"employee_name": out.Appointment.EmployeeName,
		"service_name":  out.Appointment.ServiceName,
		"status":        out.Appointment.Status,
	})
}
