package entity

import (
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	RestaurantID uint   `gorm:"not null" json:"restaurantId"`
	Name         string `gorm:"not null" json:"name"`
	Description  string `json:"description"`
	UnitCost     int64  `gorm:"not null;check:unit_cost >= 0" json:"cost"` // cents
}
