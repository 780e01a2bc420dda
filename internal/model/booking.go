package model

import "time"

// Booking represents a reserved slot on a field. PlayDateEnd is kept as a
// free-form string in the source schema (varchar 45), so it stays loosely
// validated here too.
type Booking struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	PlayDateStart time.Time `json:"play_date_start" gorm:"not null"`
	PlayDateEnd   string    `json:"play_date_end" gorm:"size:45;not null"`
	UserIDBooking uint      `json:"user_id_booking" gorm:"not null;index"`
	FieldID       uint      `json:"field_id" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	Creator     User             `json:"-" gorm:"foreignKey:UserIDBooking"`
	Field       Field            `json:"-" gorm:"foreignKey:FieldID"`
	Memberships []UserHasBooking `json:"memberships,omitempty" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}
