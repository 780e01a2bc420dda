package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "mabar/internal/errors"
	"mabar/internal/model"
	"mabar/internal/repository"
)

// VenueService handles owner-scoped venue operations.
type VenueService interface {
	List(ctx context.Context) ([]model.Venue, error)
	Create(ctx context.Context, ownerID uint, name, phone, address string) (*model.Venue, error)
	Detail(ctx context.Context, id uint, playDate time.Time) ([]repository.VenueDetailRow, error)
	Update(ctx context.Context, ownerID, id uint, name, phone, address string) (*model.Venue, error)
}

type venueService struct {
	venues repository.VenueRepository
}

// NewVenueService creates a new venue service.
func NewVenueService(venues repository.VenueRepository) VenueService {
	return &venueService{venues: venues}
}

func (s *venueService) List(ctx context.Context) ([]model.Venue, error) {
	return s.venues.List(ctx)
}

// Create registers a venue owned by the authenticated owner.
func (s *venueService) Create(ctx context.Context, ownerID uint, name, phone, address string) (*model.Venue, error) {
	venue := &model.Venue{
		Name:    name,
		Phone:   phone,
		Address: address,
		UserID:  ownerID,
	}
	if err := s.venues.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("create venue: %w", err)
	}
	return venue, nil
}

// Detail returns the venue joined with its fields' bookings on the given day.
// A venue without bookings that day yields an empty row set.
func (s *venueService) Detail(ctx context.Context, id uint, playDate time.Time) ([]repository.VenueDetailRow, error) {
	rows, err := s.venues.FindDetail(ctx, id, playDate)
	if err != nil {
		return nil, fmt.Errorf("venue detail: %w", err)
	}
	return rows, nil
}

// Update mutates a venue after checking the caller owns it.
func (s *venueService) Update(ctx context.Context, ownerID, id uint, name, phone, address string) (*model.Venue, error) {
	venue, err := s.venues.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrVenueNotFound
		}
		return nil, fmt.Errorf("find venue: %w", err)
	}

	if venue.UserID != ownerID {
		return nil, apperrors.ErrAccessDenied
	}

	venue.Name = name
	venue.Phone = phone
	venue.Address = address
	if err := s.venues.Update(ctx, venue); err != nil {
		return nil, fmt.Errorf("update venue: %w", err)
	}
	return venue, nil
}
