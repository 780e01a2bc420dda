package repository

import (
	"context"

	"gorm.io/gorm"

	"mabar/internal/model"
)

// Participant is one attendee of a booking, joined through user_has_bookings.
type Participant struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
}

// BookingRepository defines booking and membership persistence operations.
type BookingRepository interface {
	// CreateWithMember creates the booking row and the creator's membership
	// row in a single transaction.
	CreateWithMember(ctx context.Context, booking *model.Booking) error
	FindByID(ctx context.Context, id uint) (*model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	ParticipantsOf(ctx context.Context, bookingID uint) ([]Participant, error)
	AddMember(ctx context.Context, member *model.UserHasBooking) error
	// RemoveMember deletes the membership row and reports how many rows
	// were affected.
	RemoveMember(ctx context.Context, userID, bookingID uint) (int64, error)
	HasMember(ctx context.Context, userID, bookingID uint) (bool, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository builds a GORM-backed repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) CreateWithMember(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(booking).Error; err != nil {
			return err
		}
		member := &model.UserHasBooking{
			UserID:    booking.UserIDBooking,
			BookingID: booking.ID,
		}
		return tx.Create(member).Error
	})
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*model.Booking, error) {
	var booking model.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := r.db.WithContext(ctx).Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ParticipantsOf lists the attendees of one booking, scoped to its id.
func (r *bookingRepository) ParticipantsOf(ctx context.Context, bookingID uint) ([]Participant, error) {
	var participants []Participant
	err := r.db.WithContext(ctx).
		Table("user_has_bookings").
		Select("users.id AS user_id, users.name").
		Joins("JOIN users ON users.id = user_has_bookings.user_id").
		Where("user_has_bookings.booking_id = ?", bookingID).
		Scan(&participants).Error
	if err != nil {
		return nil, err
	}
	return participants, nil
}

func (r *bookingRepository) AddMember(ctx context.Context, member *model.UserHasBooking) error {
	return r.db.WithContext(ctx).Create(member).Error
}

func (r *bookingRepository) RemoveMember(ctx context.Context, userID, bookingID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND booking_id = ?", userID, bookingID).
		Delete(&model.UserHasBooking{})
	return res.RowsAffected, res.Error
}

func (r *bookingRepository) HasMember(ctx context.Context, userID, bookingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.UserHasBooking{}).
		Where("user_id = ? AND booking_id = ?", userID, bookingID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
