package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontdesk/internal/middleware"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
	"github.com/BruksfildServices01/barber-frontdesk/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create     *appointment.CreateAppointment
	checkpoint *appointment.ConfirmCheckpoint
	toggle     *appointment.QuickTogglePayment
	listByDate *appointment.ListAppointmentsByDate

	timezone string
	now      timezone.Clock
}

func NewAppointmentHandler(
	create *appointment.CreateAppointment,
	checkpoint *appointment.ConfirmCheckpoint,
	toggle *appointment.QuickTogglePayment,
	listByDate *appointment.ListAppointmentsByDate,
	tz string,
	now timezone.Clock,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:     create,
		checkpoint: checkpoint,
		toggle:     toggle,
		listByDate: listByDate,
		timezone:   tz,
		now:        now,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName   string `json:"client_name" binding:"required"`
	ClientPhone  string `json:"client_phone"`
	EmployeeName string `json:"employee_name"`
	ServiceName  string `json:"service_name"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	Hour         int    `json:"hour"`
	Minute       int    `json:"minute"`
}

type CheckpointRequest struct {
	Price         decimal.Decimal `json:"price"`
	IsPaid        bool            `json:"is_paid"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	ServiceName   string          `json:"service_name"`
}

// ======================================================
// LIST (agenda)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	day, ok := dateParam(c, h.timezone, h.now)
	if !ok {
		return
	}

	agenda, err := h.listByDate.Execute(c.Request.Context(), day)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, agenda)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.create.Execute(c.Request.Context(), toCreateInput(middleware.Actor(c), req))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"appointment":    out.Appointment,
		"client":         out.Client,
		"client_created": out.ClientCreated,
	})
}

func toCreateInput(actor string, req CreateAppointmentRequest) appointment.CreateAppointmentInput {
	return appointment.CreateAppointmentInput{
		Actor:        actor,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		EmployeeName: req.EmployeeName,
		ServiceName:  req.ServiceName,
		Date:         req.Date,
		Hour:         req.Hour,
		Minute:       req.Minute,
	}
}

// ======================================================
// CHECKPOINT
// ======================================================

func (h *AppointmentHandler) Checkpoint(c *gin.Context) {
	var req CheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.checkpoint.Execute(c.Request.Context(), appointment.ConfirmCheckpointInput{
		Actor:         middleware.Actor(c),
		AppointmentID: c.Param("id"),
		Price:         req.Price,
		IsPaid:        req.IsPaid,
		Status:        domain.Status(req.Status),
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		ServiceName:   req.ServiceName,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// QUICK TOGGLE
// ======================================================

func (h *AppointmentHandler) TogglePayment(c *gin.Context) {
	ap, err := h.toggle.Execute(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
