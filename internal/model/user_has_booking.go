package model

import "time"

// UserHasBooking links a user to a booking they attend. The composite
// primary key guarantees at most one membership per (user, booking) pair.
type UserHasBooking struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	BookingID uint      `json:"booking_id" gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the join table name from the source schema.
func (UserHasBooking) TableName() string {
	return "user_has_bookings"
}
