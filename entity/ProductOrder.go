package entity

import (
	"gorm.io/gorm"
)

// ProductOrder is an order line item. Unit cost is a snapshot of the product
// price at order time, not a live reference.
type ProductOrder struct {
	gorm.Model
	OrderID         uint  `gorm:"not null;index" json:"orderId"`
	ProductID       uint  `gorm:"not null" json:"productId"`
	ProductQuantity int   `gorm:"not null;check:product_quantity >= 1" json:"product_quantity"`
	ProductUnitCost int64 `gorm:"not null;check:product_unit_cost >= 0" json:"product_unit_cost"`
}
