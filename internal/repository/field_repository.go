package repository

import (
	"context"

	"gorm.io/gorm"

	"mabar/internal/model"
)

// FieldRepository defines field persistence operations.
type FieldRepository interface {
	Create(ctx context.Context, field *model.Field) error
	Update(ctx context.Context, field *model.Field) error
	Delete(ctx context.Context, field *model.Field) error
	FindByID(ctx context.Context, id uint) (*model.Field, error)
	FindInVenue(ctx context.Context, id, venueID uint) (*model.Field, error)
	ListByVenue(ctx context.Context, venueID uint) ([]model.Field, error)
}

type fieldRepository struct {
	db *gorm.DB
}

// NewFieldRepository builds a GORM-backed repository.
func NewFieldRepository(db *gorm.DB) FieldRepository {
	return &fieldRepository{db: db}
}

func (r *fieldRepository) Create(ctx context.Context, field *model.Field) error {
	return r.db.WithContext(ctx).Create(field).Error
}

func (r *fieldRepository) Update(ctx context.Context, field *model.Field) error {
	return r.db.WithContext(ctx).Save(field).Error
}

func (r *fieldRepository) Delete(ctx context.Context, field *model.Field) error {
	return r.db.WithContext(ctx).Delete(field).Error
}

func (r *fieldRepository) FindByID(ctx context.Context, id uint) (*model.Field, error) {
	var field model.Field
	if err := r.db.WithContext(ctx).First(&field, id).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *fieldRepository) FindInVenue(ctx context.Context, id, venueID uint) (*model.Field, error) {
	var field model.Field
	if err := r.db.WithContext(ctx).
		Where("id = ? AND venue_id = ?", id, venueID).
		First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

func (r *fieldRepository) ListByVenue(ctx context.Context, venueID uint) ([]model.Field, error) {
	var fields []model.Field
	if err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}
