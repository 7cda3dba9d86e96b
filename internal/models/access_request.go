package models

import "time"

const (
	AccessRequestPending  = "pending"
	AccessRequestApproved = "approved"
	AccessRequestRejected = "rejected"
)

// Pedido de acesso enviado pela tela de login. Só pode existir um pedido
// pendente por email.
type AccessRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Email  string `gorm:"size:100;not null;index:idx_access_requests_pending_email,unique,where:status = 'pending'" json:"email"`
	Phone  string `gorm:"size:20" json:"phone"`
	Reason string `gorm:"type:text" json:"reason"`
	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
