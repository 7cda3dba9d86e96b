package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barber-frontdesk/internal/config"
	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
)

const (
	ContextAccountID    = "accountID"
	ContextAccountEmail = "accountEmail"
	ContextAccountRole  = "accountRole"
)

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing_authorization_header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid_authorization_header")
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "invalid_token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "invalid_token_claims")
			return
		}

		accountID, ok := claims["sub"].(float64)
		if !ok {
			abortUnauthorized(c, "invalid_token_payload")
			return
		}
		email, _ := claims["email"].(string)
		role, _ := claims["role"].(string)

		c.Set(ContextAccountID, uint(accountID))
		c.Set(ContextAccountEmail, email)
		c.Set(ContextAccountRole, role)

		c.Next()
	}
}

// Actor names the caller in audit records.
func Actor(c *gin.Context) string {
	if email := c.GetString(ContextAccountEmail); email != "" {
		return email
	}
	return "anonymous"
}

func abortUnauthorized(c *gin.Context, code string) {
	httperr.Unauthorized(c, code, "Sessão inválida. Faça login novamente.")
	c.Abort()
}
