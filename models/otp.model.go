package models

import (
	"time"

	"gorm.io/gorm"
)

// OTP channels
const (
	OTPChannelEmail = "email"
	OTPChannelPhone = "phone"
)

// OTP is a verification challenge keyed by email or countryCode+phone.
// At most one live challenge exists per key: sending a new code replaces
// the previous row, and a successful verify deletes it.
type OTP struct {
	gorm.Model
	Key       string    `gorm:"size:100;index;not null" json:"key"`
	Channel   string    `gorm:"size:10;not null" json:"channel"`
	Code      string    `gorm:"size:10;not null" json:"code"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
