package models

import "gorm.io/gorm"

type SupportTicket struct {
	gorm.Model
	TicketNumber string `gorm:"unique;not null" json:"ticket_number"`
	UserID       uint   `gorm:"not null;index" json:"user_id"`
	Subject      string `gorm:"size:255;not null" json:"subject"`
	Message      string `gorm:"type:text;not null" json:"message"`
	Status       string `gorm:"default:'open'" json:"status"`
	IsDeleted    bool   `gorm:"default:false" json:"-"`
}
