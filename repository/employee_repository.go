package repository

import (
	"rocketfood/entity"

	"gorm.io/gorm"
)

type EmployeeRepository struct {
	DB *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{DB: db}
}

func (r *EmployeeRepository) ListByRestaurant(restaurantID uint) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.DB.Where("restaurant_id = ?", restaurantID).Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) DeleteByRestaurant(tx *gorm.DB, restaurantID uint) error {
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.Employee{}).Error
}
