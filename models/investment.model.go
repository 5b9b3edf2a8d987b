package models

import (
	"time"

	"gorm.io/gorm"
)

// Investment records a position taken against the fund catalog.
// CurrentValue is priced once at creation from the fund's yearly return
// and is not re-marked to market afterwards.
type Investment struct {
	gorm.Model
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	FundID         uint      `gorm:"not null;index" json:"fund_id"`
	AmountInvested float64   `gorm:"not null" json:"amount_invested"`
	CurrentValue   float64   `gorm:"not null" json:"current_value"`
	InvestmentDate time.Time `gorm:"not null" json:"investment_date"`
}
