package entity

import (
	"gorm.io/gorm"
)

type Courier struct {
	gorm.Model
	UserID    uint   `gorm:"uniqueIndex;not null" json:"userId"`
	AddressID uint   `gorm:"not null" json:"addressId"`
	Name      string `gorm:"not null" json:"name"`
	Phone     string `gorm:"not null" json:"phone"`
	Email     string `gorm:"not null" json:"email"`
	Active    bool   `gorm:"default:true" json:"active"`
}
