package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"mabar/internal/model"
)

// VenueDetailRow is one row of the venue detail join: the venue columns plus
// every booking on one of its fields starting on the requested date.
type VenueDetailRow struct {
	VenueID       uint       `json:"venue_id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	OwnerID       uint       `json:"owner_id"`
	BookingID     *uint      `json:"booking_id,omitempty"`
	FieldID       *uint      `json:"field_id,omitempty"`
	PlayDateStart *time.Time `json:"play_date_start,omitempty"`
	PlayDateEnd   *string    `json:"play_date_end,omitempty"`
}

// VenueRepository defines venue persistence operations.
type VenueRepository interface {
	Create(ctx context.Context, venue *model.Venue) error
	Update(ctx context.Context, venue *model.Venue) error
	FindByID(ctx context.Context, id uint) (*model.Venue, error)
	List(ctx context.Context) ([]model.Venue, error)
	FindDetail(ctx context.Context, id uint, playDate time.Time) ([]VenueDetailRow, error)
}

type venueRepository struct {
	db *gorm.DB
}

// NewVenueRepository builds a GORM-backed repository.
func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, venue *model.Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) Update(ctx context.Context, venue *model.Venue) error {
	return r.db.WithContext(ctx).Save(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*model.Venue, error) {
	var venue model.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *venueRepository) List(ctx context.Context) ([]model.Venue, error) {
	var venues []model.Venue
	if err := r.db.WithContext(ctx).Find(&venues).Error; err != nil {
		return nil, err
	}
	return venues, nil
}

// FindDetail joins venues, fields, and bookings, keeping bookings whose play
// date falls on the given day.
func (r *venueRepository) FindDetail(ctx context.Context, id uint, playDate time.Time) ([]VenueDetailRow, error) {
	var rows []VenueDetailRow
	err := r.db.WithContext(ctx).
		Table("venues").
		Select("venues.id AS venue_id, venues.name, venues.phone, venues.address, venues.user_id AS owner_id, "+
			"bookings.id AS booking_id, bookings.field_id, bookings.play_date_start, bookings.play_date_end").
		Joins("JOIN fields ON fields.venue_id = venues.id").
		Joins("JOIN bookings ON bookings.field_id = fields.id").
		Where("venues.id = ?", id).
		Where("DATE(bookings.play_date_start) = ?", playDate.Format("2006-01-02")).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
