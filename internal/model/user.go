package model

import "time"

// Role values assignable to a user at registration.
const (
	RoleOwner = "owner"
	RoleUser  = "user"
)

// User represents a registered account. Owners manage venues and fields,
// regular users create and join bookings.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string    `json:"role" gorm:"size:50;not null;default:'user';index"`
	IsVerified   bool      `json:"is_verified" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Venues      []Venue          `json:"venues,omitempty" gorm:"foreignKey:UserID"`
	Bookings    []Booking        `json:"bookings,omitempty" gorm:"foreignKey:UserIDBooking"`
	Memberships []UserHasBooking `json:"memberships,omitempty" gorm:"foreignKey:UserID"`
}
