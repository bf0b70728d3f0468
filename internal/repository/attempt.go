package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"edumath-pro/internal/model"
)

type AttemptRepository interface {
	Create(ctx context.Context, attempt *model.PaymentAttempt) error
	FindByPaymentID(ctx context.Context, mPaymentID string) (*model.PaymentAttempt, error)
	MarkCompleted(ctx context.Context, mPaymentID string) error
	MarkCancelled(ctx context.Context, mPaymentID string) error
}

type attemptRepoImpl struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepoImpl{
		db: db,
	}
}

func (r *attemptRepoImpl) Create(ctx context.Context, attempt *model.PaymentAttempt) error {
	return r.db.WithContext(ctx).Create(attempt).Error
}

func (r *attemptRepoImpl) FindByPaymentID(ctx context.Context, mPaymentID string) (*model.PaymentAttempt, error) {
	var attempt model.PaymentAttempt
	err := r.db.WithContext(ctx).
		Where("m_payment_id = ?", mPaymentID).
		First(&attempt).Error

	if err != nil {
		return nil, err
	}

	return &attempt, nil
}

func (r *attemptRepoImpl) MarkCompleted(ctx context.Context, mPaymentID string) error {
	return r.setStatus(ctx, mPaymentID, model.AttemptCompleted)
}

func (r *attemptRepoImpl) MarkCancelled(ctx context.Context, mPaymentID string) error {
	return r.setStatus(ctx, mPaymentID, model.AttemptCancelled)
}

func (r *attemptRepoImpl) setStatus(ctx context.Context, mPaymentID, status string) error {
	result := r.db.WithContext(ctx).Model(&model.PaymentAttempt{}).
		Where("m_payment_id = ? AND status = ?", mPaymentID, model.AttemptInitiated).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
