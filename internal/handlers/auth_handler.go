package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-frontdesk/internal/config"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-frontdesk/internal/logger"
	"github.com/BruksfildServices01/barber-frontdesk/internal/models"
	"github.com/BruksfildServices01/barber-frontdesk/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	accounts *repository.AccountGormRepository
	config   *config.Config
}

func NewAuthHandler(accounts *repository.AccountGormRepository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{accounts: accounts, config: cfg}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := validators.NormalizeEmail(req.Email)

	acc, err := h.accounts.FindByEmail(c.Request.Context(), email)
	if httperr.IsBusiness(err, "account_not_found") {
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos.")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(req.Password)); err != nil {
		logger.FromGin(c).Info("login rejected", zap.String("email", email))
		httperr.Unauthorized(c, "invalid_credentials", "Email ou senha incorretos.")
		return
	}

	token, err := GenerateToken(h.config.JWTSecret, acc, time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account": gin.H{
			"id":    acc.ID,
			"name":  acc.Name,
			"email": acc.Email,
			"role":  acc.Role,
		},
		"token": token,
	})
}

// --------- JWT ---------

func GenerateToken(secret string, acc *models.Account, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   acc.ID,
		"email": acc.Email,
		"role":  acc.Role,
		"exp":   now.Add(tokenTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// HashPassword is used for the bootstrap account.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// EnsureBootstrapAccount creates the first owner account when it does not
// exist yet. Blank credentials disable it.
func EnsureBootstrapAccount(
	ctx context.Context,
	accounts *repository.AccountGormRepository,
	email string,
	password string,
	log *zap.Logger,
) error {
	email = validators.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	_, err := accounts.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !httperr.IsBusiness(err, "account_not_found") {
		return err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash bootstrap password: %w", err)
	}

	if err := accounts.Create(ctx, &models.Account{
		Name:         "Administrador",
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleOwner,
	}); err != nil && !httperr.IsBusiness(err, "account_exists") {
		return err
	}

	log.Info("bootstrap account ready", zap.String("email", email))
	return nil
}
