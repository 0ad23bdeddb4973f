package repository

import (
	"rocketfood/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(orderID, statusID uint) error {
	return r.DB.Model(&entity.Order{}).
		Where("id = ?", orderID).
		Update("order_status_id", statusID).Error
}

func (r *OrderRepository) ListByCustomer(customerID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("customer_id = ?", customerID).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByRestaurant(restaurantID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) ListByCourier(courierID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("courier_id = ?", courierID).Order("id ASC").Find(&orders).Error
	return orders, err
}

// ---------------- Line items ----------------

func (r *OrderRepository) CreateProductOrder(tx *gorm.DB, po *entity.ProductOrder) error {
	return tx.Create(po).Error
}

func (r *OrderRepository) ListProductOrders(orderID uint) ([]entity.ProductOrder, error) {
	var items []entity.ProductOrder
	err := r.DB.Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error
	return items, err
}

// ---------------- Status vocabulary ----------------

func (r *OrderRepository) GetStatusByName(name string) (*entity.OrderStatus, error) {
	var s entity.OrderStatus
	if err := r.DB.Where("name = ?", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *OrderRepository) GetStatusByID(id uint) (*entity.OrderStatus, error) {
	var s entity.OrderStatus
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}
