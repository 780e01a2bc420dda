package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "mabar/internal/errors"
	"mabar/internal/model"
	"mabar/internal/repository"
)

// FieldService handles field CRUD nested under a venue. All mutations check
// that the caller owns the parent venue.
type FieldService interface {
	ListByVenue(ctx context.Context, venueID uint) ([]model.Field, error)
	Get(ctx context.Context, venueID, id uint) (*model.Field, error)
	Create(ctx context.Context, ownerID, venueID uint, name string, fieldType model.FieldType) (*model.Field, error)
	Update(ctx context.Context, ownerID, venueID, id uint, name string, fieldType model.FieldType) (*model.Field, error)
	Delete(ctx context.Context, ownerID, venueID, id uint) error
}

type fieldService struct {
	fields repository.FieldRepository
	venues repository.VenueRepository
}

// NewFieldService creates a new field service.
func NewFieldService(fields repository.FieldRepository, venues repository.VenueRepository) FieldService {
	return &fieldService{fields: fields, venues: venues}
}

func (s *fieldService) ListByVenue(ctx context.Context, venueID uint) ([]model.Field, error) {
	return s.fields.ListByVenue(ctx, venueID)
}

func (s *fieldService) Get(ctx context.Context, venueID, id uint) (*model.Field, error) {
	field, err := s.fields.FindInVenue(ctx, id, venueID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrFieldNotFound
		}
		return nil, fmt.Errorf("find field: %w", err)
	}
	return field, nil
}

func (s *fieldService) Create(ctx context.Context, ownerID, venueID uint, name string, fieldType model.FieldType) (*model.Field, error) {
	if err := s.checkOwnership(ctx, ownerID, venueID); err != nil {
		return nil, err
	}

	field := &model.Field{
		Name:    name,
		Type:    fieldType,
		VenueID: venueID,
	}
	if err := s.fields.Create(ctx, field); err != nil {
		return nil, fmt.Errorf("create field: %w", err)
	}
	return field, nil
}

func (s *fieldService) Update(ctx context.Context, ownerID, venueID, id uint, name string, fieldType model.FieldType) (*model.Field, error) {
	if err := s.checkOwnership(ctx, ownerID, venueID); err != nil {
		return nil, err
	}

	field, err := s.Get(ctx, venueID, id)
	if err != nil {
		return nil, err
	}

	field.Name = name
	field.Type = fieldType
	if err := s.fields.Update(ctx, field); err != nil {
		return nil, fmt.Errorf("update field: %w", err)
	}
	return field, nil
}

func (s *fieldService) Delete(ctx context.Context, ownerID, venueID, id uint) error {
	if err := s.checkOwnership(ctx, ownerID, venueID); err != nil {
		return err
	}

	field, err := s.Get(ctx, venueID, id)
	if err != nil {
		return err
	}

	if err := s.fields.Delete(ctx, field); err != nil {
		return fmt.Errorf("delete field: %w", err)
	}
	return nil
}

// checkOwnership verifies the venue exists and belongs to ownerID.
func (s *fieldService) checkOwnership(ctx context.Context, ownerID, venueID uint) error {
	venue, err := s.venues.FindByID(ctx, venueID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrVenueNotFound
		}
		return fmt.Errorf("find venue: %w", err)
	}
	if venue.UserID != ownerID {
		return apperrors.ErrAccessDenied
	}
	return nil
}
