package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/session"
)

const (
	SettingsSessionHeader = "X-Settings-Session"
	ContextSettingsUser   = "settingsUser"
)

type SessionValidator interface {
	Validate(ctx context.Context, token string) (*session.Session, error)
}

// SettingsGate requires a settings session opened with the fixed
// credentials, on top of the account login.
func SettingsGate(v SessionValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := v.Validate(c.Request.Context(), c.GetHeader(SettingsSessionHeader))
		if err != nil {
			if httperr.IsBusiness(err, "access_denied") {
				httperr.Unauthorized(c, "access_denied", "Acesso Negado")
			} else {
				httperr.Internal(c, "settings_session_failed", "Erro ao validar sessão.")
			}
			c.Abort()
			return
		}

		c.Set(ContextSettingsUser, sess.Username)
		c.Next()
	}
}
