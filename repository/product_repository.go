package repository

import (
	"rocketfood/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) FindByID(id uint) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListByRestaurant(restaurantID uint) ([]entity.Product, error) {
	var products []entity.Product
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id ASC").Find(&products).Error
	return products, err
}

func (r *ProductRepository) DeleteByRestaurant(tx *gorm.DB, restaurantID uint) error {
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&entity.Product{}).Error
}
