package models

import "gorm.io/gorm"

// Fund is read-only reference data seeded once at startup.
type Fund struct {
	gorm.Model
	FundName     string  `gorm:"unique;not null" json:"fund_name"`
	TotalValue   float64 `gorm:"not null" json:"total_value"`
	YearlyReturn float64 `gorm:"not null" json:"yearly_return"`
	Description  string  `json:"description"`
	Allocation   string  `json:"allocation"`
}
