package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType defines the type of a ledger entry
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeInvestment TransactionType = "investment"
)

// Transactions is the append-only ledger: every balance mutation writes
// exactly one row here, inside the same database transaction.
type Transactions struct {
	gorm.Model
	UserID          uint            `gorm:"not null;index" json:"user_id"`
	Type            TransactionType `gorm:"type:varchar(20);not null" json:"type"`
	Amount          float64         `gorm:"not null" json:"amount"`
	Description     string          `gorm:"type:text" json:"description"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	IsDeleted       bool            `gorm:"default:false" json:"-"`
}
