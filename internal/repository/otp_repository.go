package repository

import (
	"context"

	"gorm.io/gorm"

	"mabar/internal/model"
)

// OtpRepository defines persistence for pending one-time passcodes.
type OtpRepository interface {
	Create(ctx context.Context, otp *model.OtpCode) error
	FindByUserID(ctx context.Context, userID uint) (*model.OtpCode, error)
}

type otpRepository struct {
	db *gorm.DB
}

// NewOtpRepository builds a GORM-backed repository.
func NewOtpRepository(db *gorm.DB) OtpRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(ctx context.Context, otp *model.OtpCode) error {
	return r.db.WithContext(ctx).Create(otp).Error
}

func (r *otpRepository) FindByUserID(ctx context.Context, userID uint) (*model.OtpCode, error) {
	var otp model.OtpCode
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}
