package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/logger"
)

type businessMapping struct {
	status  int
	message string
}

// Mensagens exibidas ao usuário para cada código de negócio.
var businessErrors = map[string]businessMapping{
	"invalid_date_or_time":   {http.StatusBadRequest, "Data ou hora inválida."},
	"invalid_client_name":    {http.StatusBadRequest, "Informe o nome do cliente."},
	"invalid_employee_name":  {http.StatusBadRequest, "Informe o nome do profissional."},
	"invalid_price":          {http.StatusBadRequest, "Valor inválido."},
	"invalid_status":         {http.StatusBadRequest, "Status inválido."},
	"invalid_payment_method": {http.StatusBadRequest, "Forma de pagamento inválida."},
	"invalid_year":           {http.StatusBadRequest, "Ano inválido."},
	"appointment_not_found":  {http.StatusNotFound, "Agendamento não encontrado."},
	"client_not_found":       {http.StatusNotFound, "Cliente não encontrado."},
	"employee_not_found":     {http.StatusNotFound, "Profissional não encontrado."},
	"client_deleted":         {http.StatusConflict, "Cliente removido."},
	"access_request_exists":  {http.StatusConflict, "Já existe uma solicitação pendente para este email."},
	"access_denied":          {http.StatusUnauthorized, "Acesso Negado"},
	"invalid_credentials":    {http.StatusUnauthorized, "Email ou senha incorretos."},
}

// writeError translates use case errors into the JSON error body. Anything
// that is not a known business error is logged and reported as internal.
func writeError(c *gin.Context, err error) {
	code := httperr.Code(err)
	if m, ok := businessErrors[code]; ok {
		httperr.Write(c, m.status, code, m.message)
		return
	}

	logger.FromGin(c).Error("request failed", zap.Error(err))
	httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
}
