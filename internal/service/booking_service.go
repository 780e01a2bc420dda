package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mabar/internal/auth"
	apperrors "mabar/internal/errors"
	"mabar/internal/model"
	"mabar/internal/repository"
)

// BookingDetail is a booking together with its attendee list.
type BookingDetail struct {
	Booking      model.Booking            `json:"booking"`
	Participants []repository.Participant `json:"participants"`
}

// ScheduleEntry is one actively logged-in user and the bookings they attend.
type ScheduleEntry struct {
	UserID   uint                   `json:"user_id"`
	Schedule []model.UserHasBooking `json:"schedule"`
}

// BookingService handles booking reads, creation, and membership.
type BookingService interface {
	List(ctx context.Context) ([]model.Booking, error)
	Get(ctx context.Context, id uint) (*BookingDetail, error)
	Create(ctx context.Context, userID, venueID, fieldID uint, playDateStart time.Time, playDateEnd string) (*model.Booking, error)
	Join(ctx context.Context, userID, bookingID uint) error
	Unjoin(ctx context.Context, userID, bookingID uint) error
	Schedule(ctx context.Context) ([]ScheduleEntry, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	fields   repository.FieldRepository
	users    repository.UserRepository
	sessions auth.SessionStoreInterface
}

// NewBookingService creates a new booking service.
func NewBookingService(
	bookings repository.BookingRepository,
	fields repository.FieldRepository,
	users repository.UserRepository,
	sessions auth.SessionStoreInterface,
) BookingService {
	return &bookingService{
		bookings: bookings,
		fields:   fields,
		users:    users,
		sessions: sessions,
	}
}

func (s *bookingService) List(ctx context.Context) ([]model.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *bookingService) Get(ctx context.Context, id uint) (*BookingDetail, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, fmt.Errorf("find booking: %w", err)
	}

	participants, err := s.bookings.ParticipantsOf(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}

	return &BookingDetail{Booking: *booking, Participants: participants}, nil
}

// Create validates the field belongs to the venue in the request path, then
// writes the booking and the creator's membership row in one transaction.
func (s *bookingService) Create(ctx context.Context, userID, venueID, fieldID uint, playDateStart time.Time, playDateEnd string) (*model.Booking, error) {
	field, err := s.fields.FindByID(ctx, fieldID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrFieldNotFound
		}
		return nil, fmt.Errorf("find field: %w", err)
	}

	if field.VenueID != venueID {
		return nil, apperrors.ErrFieldNotInVenue
	}

	// bookings open from tomorrow onwards, local midnight
	now := time.Now()
	startOfTomorrow := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, now.Location())
	if playDateStart.Before(startOfTomorrow) {
		return nil, apperrors.ErrPlayDateTooSoon
	}

	booking := &model.Booking{
		PlayDateStart: playDateStart,
		PlayDateEnd:   playDateEnd,
		UserIDBooking: userID,
		FieldID:       fieldID,
	}
	if err := s.bookings.CreateWithMember(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return booking, nil
}

// Join adds the user to an existing booking. Joining twice is rejected rather
// than surfacing a primary key violation.
func (s *bookingService) Join(ctx context.Context, userID, bookingID uint) error {
	if _, err := s.bookings.FindByID(ctx, bookingID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrBookingNotFound
		}
		return fmt.Errorf("find booking: %w", err)
	}

	joined, err := s.bookings.HasMember(ctx, userID, bookingID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if joined {
		return apperrors.ErrAlreadyJoined
	}

	member := &model.UserHasBooking{UserID: userID, BookingID: bookingID}
	if err := s.bookings.AddMember(ctx, member); err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

// Unjoin removes the user's membership; zero affected rows means they were
// never joined.
func (s *bookingService) Unjoin(ctx context.Context, userID, bookingID uint) error {
	affected, err := s.bookings.RemoveMember(ctx, userID, bookingID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrNotJoined
	}
	return nil
}

// Schedule returns the membership rows of every user with a live session.
func (s *bookingService) Schedule(ctx context.Context) ([]ScheduleEntry, error) {
	ids, err := s.sessions.ActiveUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}

	users, err := s.users.ListWithMemberships(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load schedules: %w", err)
	}

	entries := make([]ScheduleEntry, 0, len(users))
	for _, user := range users {
		entries = append(entries, ScheduleEntry{
			UserID:   user.ID,
			Schedule: user.Memberships,
		})
	}
	return entries, nil
}
