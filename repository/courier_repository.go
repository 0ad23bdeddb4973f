package repository

import (
	"rocketfood/entity"

	"gorm.io/gorm"
)

type CourierRepository struct {
	DB *gorm.DB
}

func NewCourierRepository(db *gorm.DB) *CourierRepository {
	return &CourierRepository{DB: db}
}

func (r *CourierRepository) FindByID(id uint) (*entity.Courier, error) {
	var c entity.Courier
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
