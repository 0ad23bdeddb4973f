package repository

import (
	"rocketfood/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// List returns restaurants ordered by id, optionally narrowed to a price
// range. Rating filtering happens in the service after aggregation.
func (r *RestaurantRepository) List(priceRange *int) ([]entity.Restaurant, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if priceRange != nil {
		q = q.Where("price_range = ?", *priceRange)
	}
	var rests []entity.Restaurant
	err := q.Order("id ASC").Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) Create(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *RestaurantRepository) Save(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Save(rest).Error
}

func (r *RestaurantRepository) Delete(tx *gorm.DB, id uint) error {
	return tx.Delete(&entity.Restaurant{}, id).Error
}

// RatingStats aggregates the rated orders of a restaurant. Unrated orders
// count in neither sum nor count.
func (r *RestaurantRepository) RatingStats(restaurantID uint) (sum int64, count int64, err error) {
	var row struct {
		Sum   int64
		Count int64
	}
	err = r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(restaurant_rating), 0) AS sum, COUNT(restaurant_rating) AS count").
		Where("restaurant_id = ?", restaurantID).
		Scan(&row).Error
	return row.Sum, row.Count, err
}
