package models

import "gorm.io/gorm"

// AvailableFund holds the uninvested cash balance for a user. The row is
// created at zero during registration, in the same transaction as the user.
type AvailableFund struct {
	gorm.Model
	UserID uint    `gorm:"unique;not null" json:"user_id"`
	Amount float64 `gorm:"default:0" json:"amount"`
}
