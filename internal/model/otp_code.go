package model

import "time"

// OtpCode holds the one-time passcode emailed at registration. The row is
// deleted once the code is successfully confirmed.
type OtpCode struct {
	UserID    uint      `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	OtpCode   int       `json:"otp_code" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
