package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	CustomerID    uint  `gorm:"not null" json:"customerId"`
	RestaurantID  uint  `gorm:"not null" json:"restaurantId"`
	CourierID     *uint `json:"courierId"`
	OrderStatusID uint  `gorm:"not null" json:"orderStatusId"`

	// 1-5 once the customer rates the order, NULL until then. Feeds the
	// restaurant's derived rating.
	RestaurantRating *int `gorm:"check:restaurant_rating BETWEEN 1 AND 5" json:"restaurant_rating"`
}
