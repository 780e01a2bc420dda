package model

import "time"

// FieldType enumerates the supported sport surfaces.
type FieldType string

const (
	FieldTypeSoccer     FieldType = "soccer"
	FieldTypeMinisoccer FieldType = "minisoccer"
	FieldTypeFutsal     FieldType = "futsal"
	FieldTypeBasketball FieldType = "basketball"
	FieldTypeVolleyball FieldType = "volleyball"
)

// Field represents a single playable field inside a venue.
type Field struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:45;not null"`
	Type      FieldType `json:"type" gorm:"type:varchar(20);not null"`
	VenueID   uint      `json:"venue_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Venue    Venue     `json:"-" gorm:"foreignKey:VenueID"`
	Bookings []Booking `json:"bookings,omitempty" gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
}
