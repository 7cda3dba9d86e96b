package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httpresp"
	"github.com/BruksfildServices01/barber-frontdesk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-frontdesk/internal/logger"
	"github.com/BruksfildServices01/barber-frontdesk/internal/models"
	"github.com/BruksfildServices01/barber-frontdesk/internal/validators"
)

type AccessRequestHandler struct {
	repo     *repository.AccessRequestGormRepository
	resolver validators.DomainResolver
	audit    *audit.Dispatcher
}

// NewAccessRequestHandler skips the email domain check when resolver is nil.
func NewAccessRequestHandler(
	repo *repository.AccessRequestGormRepository,
	resolver validators.DomainResolver,
	audit *audit.Dispatcher,
) *AccessRequestHandler {
	return &AccessRequestHandler{
		repo:     repo,
		resolver: resolver,
		audit:    audit,
	}
}

type CreateAccessRequestRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone"`
	Reason string `json:"reason"`
}

// ======================================================
// CREATE (public, from the login screen)
// ======================================================

func (h *AccessRequestHandler) Create(c *gin.Context) {
	var req CreateAccessRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Preencha nome e email válidos.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Preencha nome e email válidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if h.resolver != nil && !validators.IsEmailDomainValid(c.Request.Context(), h.resolver, email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	phone, ok := validators.NormalizePhone(req.Phone)
	if !ok {
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
		return
	}

	ar := models.AccessRequest{
		Name:   name,
		Email:  email,
		Phone:  phone,
		Reason: strings.TrimSpace(req.Reason),
		Status: models.AccessRequestPending,
	}

	if err := h.repo.Create(c.Request.Context(), &ar); err != nil {
		if httperr.IsBusiness(err, "access_request_exists") {
			writeError(c, err)
			return
		}
		logger.FromGin(c).Error("access request failed", zap.Error(err))
		httperr.Internal(c, "access_request_failed", "Erro ao enviar solicitação. Tente novamente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Actor:    email,
		Action:   "access_requested",
		Entity:   "access_request",
		EntityID: uintToString(ar.ID),
	})

	httpresp.Created(c, ar)
}

// ======================================================
// LIST (logged in)
// ======================================================

func (h *AccessRequestHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, list)
}
