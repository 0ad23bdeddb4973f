package configs

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rocketfood/entity"
)

// Open connects to the database selected by DB_DRIVER.
func Open(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return gorm.Open(dialector, &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{}, &entity.Address{},
		&entity.Customer{}, &entity.Courier{}, &entity.Employee{},
		&entity.Restaurant{}, &entity.Product{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.ProductOrder{},
	)
}
