package settings

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/session"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// Gate protects the settings area with a fixed username and password,
// independent of the remote account login.
type Gate struct {
	username string
	password string
	ttl      time.Duration

	sessions session.Store
	audit    *audit.Dispatcher
	now      timezone.Clock
	log      *zap.Logger
}

type Credentials struct {
	Username string
	Password string
}

func NewGate(
	creds Credentials,
	ttl time.Duration,
	sessions session.Store,
	audit *audit.Dispatcher,
	now timezone.Clock,
	log *zap.Logger,
) *Gate {
	return &Gate{
		username: creds.Username,
		password: creds.Password,
		ttl:      ttl,
		sessions: sessions,
		audit:    audit,
		now:      now,
		log:      log,
	}
}

type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (g *Gate) Login(ctx context.Context, username, password string) (*LoginOutput, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		g.log.Warn("settings login denied", zap.String("username", username))
		return nil, httperr.ErrBusiness("access_denied")
	}

	now := g.now()
	token := uuid.NewString()
	sess := session.Session{
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(g.ttl),
	}
	if err := g.sessions.Save(ctx, token, sess, g.ttl); err != nil {
		return nil, fmt.Errorf("save settings session: %w", err)
	}

	g.audit.Dispatch(audit.Event{
		Actor:  username,
		Action: "settings_login",
		Entity: "settings",
	})

	return &LoginOutput{Token: token, ExpiresAt: sess.ExpiresAt}, nil
}

func (g *Gate) Logout(ctx context.Context, token string) error {
	if err := g.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete settings session: %w", err)
	}
	return nil
}

// Validate resolves a session token. Unknown or expired tokens yield
// access_denied.
func (g *Gate) Validate(ctx context.Context, token string) (*session.Session, error) {
	if token == "" {
		return nil, httperr.ErrBusiness("access_denied")
	}
	sess, err := g.sessions.Get(ctx, token)
	if errors.Is(err, session.ErrNotFound) {
		return nil, httperr.ErrBusiness("access_denied")
	}
	if err != nil {
		return nil, err
	}
	return sess, nil
}
