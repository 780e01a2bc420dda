package model

import "time"

// Venue represents a bookable location owned by a user with the owner role.
type Venue struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:45;not null"`
	Phone     string    `json:"phone" gorm:"size:45;not null"`
	Address   string    `json:"address" gorm:"size:45;not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Owner  User    `json:"-" gorm:"foreignKey:UserID"`
	Fields []Field `json:"fields,omitempty" gorm:"foreignKey:VenueID;constraint:OnDelete:CASCADE"`
}
