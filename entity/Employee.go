package entity

import (
	"gorm.io/gorm"
)

type Employee struct {
	gorm.Model
	UserID       uint   `gorm:"uniqueIndex;not null" json:"userId"`
	AddressID    uint   `gorm:"not null" json:"addressId"`
	RestaurantID uint   `gorm:"not null" json:"restaurantId"`
	Phone        string `gorm:"not null" json:"phone"`
	Email        string `gorm:"not null" json:"email"`
}
