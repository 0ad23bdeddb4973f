package configs

import (
	"gorm.io/gorm"

	"rocketfood/entity"
)

// SeedStatuses inserts the order status vocabulary. Idempotent.
func SeedStatuses(db *gorm.DB) error {
	for _, name := range []string{
		entity.StatusInProgress,
		entity.StatusDelivered,
		entity.StatusCancelled,
	} {
		s := entity.OrderStatus{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}
	return nil
}
