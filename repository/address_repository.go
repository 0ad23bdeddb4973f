package repository

import (
	"rocketfood/entity"

	"gorm.io/gorm"
)

type AddressRepository struct {
	DB *gorm.DB
}

func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{DB: db}
}

func (r *AddressRepository) FindByID(id uint) (*entity.Address, error) {
	var a entity.Address
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Create runs inside the caller's transaction.
func (r *AddressRepository) Create(tx *gorm.DB, a *entity.Address) error {
	return tx.Create(a).Error
}

func (r *AddressRepository) Save(tx *gorm.DB, a *entity.Address) error {
	return tx.Save(a).Error
}
