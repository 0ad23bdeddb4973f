package entity

import (
	"gorm.io/gorm"
)

// OrderStatus is the controlled vocabulary of order states. Transition
// validity is "does a status with this name exist", nothing stricter.
type OrderStatus struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
}

// Seeded status names.
const (
	StatusInProgress = "in progress"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)
