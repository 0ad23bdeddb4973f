package services

import (
	"rocketfood/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
}

func NewProductService(repo *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: repo}
}

type ProductDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Cost int64  `json:"cost"`
}

func (s *ProductService) ListByRestaurant(restaurantID uint) ([]ProductDTO, error) {
	products, err := s.Repo.ListByRestaurant(restaurantID)
	if err != nil {
		return nil, err
	}
	out := make([]ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ProductDTO{ID: p.ID, Name: p.Name, Cost: p.UnitCost})
	}
	return out, nil
}
