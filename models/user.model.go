package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username    string `gorm:"unique;not null" json:"username"`
	Password    string `gorm:"not null" json:"-"`
	FirstName   string `gorm:"not null" json:"first_name"`
	LastName    string `gorm:"not null" json:"last_name"`
	Pan         string `gorm:"unique;not null" json:"pan"`
	Aadhar      string `gorm:"unique;not null" json:"aadhar"`
	Address     string `gorm:"not null" json:"address"`
	Email       string `gorm:"unique;not null" json:"email"`
	Phone       string `gorm:"not null" json:"phone"`
	CountryCode string `gorm:"default:'+91'" json:"country_code"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`
}
