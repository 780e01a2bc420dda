package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "mabar/internal/errors"
	"mabar/internal/model"
	"mabar/internal/repository"
)

// MockVenueRepository is a mock implementation of VenueRepository.
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *model.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) Update(ctx context.Context, venue *model.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) FindByID(ctx context.Context, id uint) (*model.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Venue), args.Error(1)
}

func (m *MockVenueRepository) List(ctx context.Context) ([]model.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Venue), args.Error(1)
}

func (m *MockVenueRepository) FindDetail(ctx context.Context, id uint, playDate time.Time) ([]repository.VenueDetailRow, error) {
	args := m.Called(ctx, id, playDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.VenueDetailRow), args.Error(1)
}

func TestVenueService_Create(t *testing.T) {
	mockVenues := new(MockVenueRepository)
	mockVenues.On("Create", mock.Anything, mock.AnythingOfType("*model.Venue")).Return(nil)

	service := NewVenueService(mockVenues)
	venue, err := service.Create(context.Background(), 2, "GOR Senayan", "+628123456789", "Jl. Sudirman")

	assert.NoError(t, err)
	assert.Equal(t, uint(2), venue.UserID)
	assert.Equal(t, "GOR Senayan", venue.Name)
	mockVenues.AssertExpectations(t)
}

func TestVenueService_Update(t *testing.T) {
	tests := []struct {
		name          string
		ownerID       uint
		setupMock     func(*MockVenueRepository)
		expectedError error
	}{
		{
			name:    "owner can update",
			ownerID: 2,
			setupMock: func(venues *MockVenueRepository) {
				venues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2, Name: "Old"}, nil)
				venues.On("Update", mock.Anything, mock.AnythingOfType("*model.Venue")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "non-owner is rejected and the row is untouched",
			ownerID: 9,
			setupMock: func(venues *MockVenueRepository) {
				venues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2, Name: "Old"}, nil)
			},
			expectedError: apperrors.ErrAccessDenied,
		},
		{
			name:    "missing venue",
			ownerID: 2,
			setupMock: func(venues *MockVenueRepository) {
				venues.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrVenueNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockVenues := new(MockVenueRepository)
			tt.setupMock(mockVenues)

			service := NewVenueService(mockVenues)
			venue, err := service.Update(context.Background(), tt.ownerID, 1, "New", "+628123456789", "Jl. Baru")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, venue)
				mockVenues.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "New", venue.Name)
			}
			mockVenues.AssertExpectations(t)
		})
	}
}
