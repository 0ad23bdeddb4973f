package entity

import (
	"gorm.io/gorm"
)

// Restaurant carries foreign keys only; addresses and ratings are composed
// into DTOs by the service layer, never preloaded as an object graph.
type Restaurant struct {
	gorm.Model
	Name       string `gorm:"not null" json:"name"`
	PriceRange int    `gorm:"not null;check:price_range BETWEEN 1 AND 3" json:"price_range"`
	Phone      string `gorm:"not null" json:"phone"`
	Email      string `gorm:"not null" json:"email"`

	UserID    uint `gorm:"not null" json:"userId"` // owner (users.id)
	AddressID uint `gorm:"not null" json:"addressId"`
}
