package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontdesk/internal/middleware"
	"github.com/BruksfildServices01/barber-frontdesk/internal/usecase/client"
)

type ClientHandler struct {
	list    *client.ListClients
	suggest *client.SuggestClients
	update  *client.Update
}

func NewClientHandler(
	list *client.ListClients,
	suggest *client.SuggestClients,
	update *client.Update,
) *ClientHandler {
	return &ClientHandler{
		list:    list,
		suggest: suggest,
		update:  update,
	}
}

type UpdatePhoneRequest struct {
	Phone string `json:"phone"`
}

type RenameClientRequest struct {
	Name string `json:"name" binding:"required"`
}

// ======================================================
// LIST CLIENTS
// ======================================================

func (h *ClientHandler) List(c *gin.Context) {
	includeDeleted, _ := strconv.ParseBool(c.Query("include_deleted"))

	clients, err := h.list.Execute(c.Request.Context(), includeDeleted)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, clients)
}

// ======================================================
// SUGGESTIONS (booking form autocomplete)
// ======================================================

func (h *ClientHandler) Suggestions(c *gin.Context) {
	clients, err := h.suggest.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, clients)
}

// ======================================================
// UPDATES
// ======================================================

func (h *ClientHandler) UpdatePhone(c *gin.Context) {
	var req UpdatePhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cl, err := h.update.UpdatePhone(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Rename(c *gin.Context) {
	var req RenameClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cl, err := h.update.Rename(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, cl)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if _, err := h.update.SoftDelete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
