package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

// FindByEmail expects an already normalized email.
func (r *AccountGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Account, error) {

	var acc models.Account
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&acc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, httperr.ErrBusiness("account_not_found")
	}
	if err != nil {
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &acc, nil
}

func (r *AccountGormRepository) Create(
	ctx context.Context,
	acc *models.Account,
) error {

	err := r.db.WithContext(ctx).Create(acc).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("account_exists")
	}
	if err != nil {
		return fmt.Errorf("create account: %w", err)
	}
	return nil
}
