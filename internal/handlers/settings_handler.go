package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontdesk/internal/middleware"
	"github.com/BruksfildServices01/barber-frontdesk/internal/usecase/settings"
	"github.com/BruksfildServices01/barber-frontdesk/internal/usecase/team"
)

// ======================================================
// SETTINGS (fixed credential gate + team management)
// ======================================================

type SettingsHandler struct {
	gate *settings.Gate
	list *team.ListEmployees
	add  *team.AddEmployee
	del  *team.DeleteEmployee
}

func NewSettingsHandler(
	gate *settings.Gate,
	list *team.ListEmployees,
	add *team.AddEmployee,
	del *team.DeleteEmployee,
) *SettingsHandler {
	return &SettingsHandler{
		gate: gate,
		list: list,
		add:  add,
		del:  del,
	}
}

type SettingsLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AddEmployeeRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *SettingsHandler) Login(c *gin.Context) {
	var req SettingsLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.gate.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, out)
}

func (h *SettingsHandler) Logout(c *gin.Context) {
	token := c.GetHeader(middleware.SettingsSessionHeader)
	if token != "" {
		if err := h.gate.Logout(c.Request.Context(), token); err != nil {
			writeError(c, err)
			return
		}
	}
	c.Status(http.StatusNoContent)
}

func (h *SettingsHandler) ListEmployees(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *SettingsHandler) AddEmployee(c *gin.Context) {
	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_employee_name", "Informe o nome do profissional.")
		return
	}

	emp, err := h.add.Execute(c.Request.Context(), settingsActor(c), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.Created(c, emp)
}

func (h *SettingsHandler) DeleteEmployee(c *gin.Context) {
	if err := h.del.Execute(c.Request.Context(), settingsActor(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// settingsActor records both the account and the settings user.
func settingsActor(c *gin.Context) string {
	return middleware.Actor(c) + " (" + c.GetString(middleware.ContextSettingsUser) + ")"
}
