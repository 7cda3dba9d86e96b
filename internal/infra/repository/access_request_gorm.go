package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-frontdesk/internal/httperr"
	"github.com/BruksfildServices01/barber-frontdesk/internal/models"
)

type AccessRequestGormRepository struct {
	db *gorm.DB
}

func NewAccessRequestGormRepository(db *gorm.DB) *AccessRequestGormRepository {
	return &AccessRequestGormRepository{db: db}
}

// Create stores a pending request. A second pending request for the same
// email is rejected with access_request_exists.
func (r *AccessRequestGormRepository) Create(
	ctx context.Context,
	req *models.AccessRequest,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.AccessRequest{}).
			Where("email = ? AND status = ?", req.Email, models.AccessRequestPending).
			Count(&count).Error; err != nil {
			return fmt.Errorf("count pending access requests: %w", err)
		}
		if count > 0 {
			return httperr.ErrBusiness("access_request_exists")
		}

		err := tx.Create(req).Error
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness("access_request_exists")
		}
		if err != nil {
			return fmt.Errorf("create access request: %w", err)
		}
		return nil
	})
}

// List returns requests newest first, optionally filtered by status.
func (r *AccessRequestGormRepository) List(
	ctx context.Context,
	status string,
) ([]models.AccessRequest, error) {

	q := r.db.WithContext(ctx).Model(&models.AccessRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var out []models.AccessRequest
	if err := q.Order("created_at DESC").Order("id DESC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list access requests: %w", err)
	}
	return out, nil
}
