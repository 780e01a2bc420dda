package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "mabar/internal/errors"
	"mabar/internal/model"
)

func TestFieldService_Create(t *testing.T) {
	tests := []struct {
		name          string
		ownerID       uint
		setupMock     func(*MockFieldRepository, *MockVenueRepository)
		expectedError error
	}{
		{
			name:    "owner can create",
			ownerID: 2,
			setupMock: func(fields *MockFieldRepository, venues *MockVenueRepository) {
				venues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2}, nil)
				fields.On("Create", mock.Anything, mock.AnythingOfType("*model.Field")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:    "non-owner is rejected",
			ownerID: 9,
			setupMock: func(fields *MockFieldRepository, venues *MockVenueRepository) {
				venues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2}, nil)
			},
			expectedError: apperrors.ErrAccessDenied,
		},
		{
			name:    "missing venue",
			ownerID: 2,
			setupMock: func(fields *MockFieldRepository, venues *MockVenueRepository) {
				venues.On("FindByID", mock.Anything, uint(1)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrVenueNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockFields := new(MockFieldRepository)
			mockVenues := new(MockVenueRepository)
			tt.setupMock(mockFields, mockVenues)

			service := NewFieldService(mockFields, mockVenues)
			field, err := service.Create(context.Background(), tt.ownerID, 1, "Lapangan A", model.FieldTypeFutsal)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, field)
				mockFields.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, uint(1), field.VenueID)
				assert.Equal(t, model.FieldTypeFutsal, field.Type)
			}

			mockFields.AssertExpectations(t)
			mockVenues.AssertExpectations(t)
		})
	}
}

func TestFieldService_Update(t *testing.T) {
	t.Run("non-owner cannot update and the row is unchanged", func(t *testing.T) {
		mockFields := new(MockFieldRepository)
		mockVenues := new(MockVenueRepository)
		mockVenues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2}, nil)

		service := NewFieldService(mockFields, mockVenues)
		field, err := service.Update(context.Background(), 9, 1, 10, "Renamed", model.FieldTypeSoccer)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrAccessDenied, err)
		assert.Nil(t, field)
		mockFields.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owner updates name and type", func(t *testing.T) {
		mockFields := new(MockFieldRepository)
		mockVenues := new(MockVenueRepository)
		mockVenues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2}, nil)
		mockFields.On("FindInVenue", mock.Anything, uint(10), uint(1)).
			Return(&model.Field{ID: 10, VenueID: 1, Name: "Old", Type: model.FieldTypeFutsal}, nil)
		mockFields.On("Update", mock.Anything, mock.AnythingOfType("*model.Field")).Return(nil)

		service := NewFieldService(mockFields, mockVenues)
		field, err := service.Update(context.Background(), 2, 1, 10, "Renamed", model.FieldTypeSoccer)

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", field.Name)
		assert.Equal(t, model.FieldTypeSoccer, field.Type)
		mockFields.AssertExpectations(t)
		mockVenues.AssertExpectations(t)
	})
}

func TestFieldService_Delete(t *testing.T) {
	t.Run("non-owner cannot delete", func(t *testing.T) {
		mockFields := new(MockFieldRepository)
		mockVenues := new(MockVenueRepository)
		mockVenues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2}, nil)

		service := NewFieldService(mockFields, mockVenues)
		err := service.Delete(context.Background(), 9, 1, 10)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrAccessDenied, err)
		mockFields.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing field", func(t *testing.T) {
		mockFields := new(MockFieldRepository)
		mockVenues := new(MockVenueRepository)
		mockVenues.On("FindByID", mock.Anything, uint(1)).Return(&model.Venue{ID: 1, UserID: 2}, nil)
		mockFields.On("FindInVenue", mock.Anything, uint(10), uint(1)).Return(nil, gorm.ErrRecordNotFound)

		service := NewFieldService(mockFields, mockVenues)
		err := service.Delete(context.Background(), 2, 1, 10)

		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrFieldNotFound, err)
		mockFields.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
