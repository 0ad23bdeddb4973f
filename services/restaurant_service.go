package services

import (
	"errors"

	"gorm.io/gorm"

	"rocketfood/entity"
	"rocketfood/pkg/apperr"
	"rocketfood/repository"
)

type RestaurantService struct {
	DB           *gorm.DB
	Repo         *repository.RestaurantRepository
	AddressRepo  *repository.AddressRepository
	UserRepo     *repository.UserRepository
	ProductRepo  *repository.ProductRepository
	EmployeeRepo *repository.EmployeeRepository
}

func NewRestaurantService(
	db *gorm.DB,
	repo *repository.RestaurantRepository,
	addressRepo *repository.AddressRepository,
	userRepo *repository.UserRepository,
	productRepo *repository.ProductRepository,
	employeeRepo *repository.EmployeeRepository,
) *RestaurantService {
	return &RestaurantService{
		DB:           db,
		Repo:         repo,
		AddressRepo:  addressRepo,
		UserRepo:     userRepo,
		ProductRepo:  productRepo,
		EmployeeRepo: employeeRepo,
	}
}

// ----- DTOs -----

type AddressIn struct {
	StreetAddress string `json:"street_address" binding:"required"`
	City          string `json:"city" binding:"required"`
	PostalCode    string `json:"postal_code" binding:"required"`
}

type CreateRestaurantReq struct {
	UserID     uint       `json:"user_id"`
	Name       string     `json:"name" binding:"required"`
	PriceRange int        `json:"price_range" binding:"required,min=1,max=3"`
	Phone      string     `json:"phone" binding:"required"`
	Email      string     `json:"email" binding:"required,email"`
	Address    *AddressIn `json:"address"`
}

type AddressDTO struct {
	ID            uint   `json:"id"`
	StreetAddress string `json:"street_address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
}

type RestaurantDTO struct {
	ID         uint        `json:"id"`
	Name       string      `json:"name"`
	PriceRange int         `json:"price_range"`
	Rating     int         `json:"rating"`
	Address    *AddressDTO `json:"address"`
}

// ----- Queries -----

// List returns restaurants matching the optional filters, each annotated
// with its display rating. The rating filter is an exact match on the
// ceiling-of-mean value, so it is applied after aggregation, not in SQL.
func (s *RestaurantService) List(rating, priceRange *int) ([]RestaurantDTO, error) {
	rests, err := s.Repo.List(priceRange)
	if err != nil {
		return nil, err
	}

	out := make([]RestaurantDTO, 0, len(rests))
	for i := range rests {
		dto, err := s.toDTO(&rests[i])
		if err != nil {
			return nil, err
		}
		if rating != nil && dto.Rating != *rating {
			continue
		}
		out = append(out, *dto)
	}
	return out, nil
}

func (s *RestaurantService) Get(id uint) (*RestaurantDTO, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Restaurant with id %d not found", id)
		}
		return nil, err
	}
	return s.toDTO(rest)
}

// ----- Mutations -----

func (s *RestaurantService) Create(req *CreateRestaurantReq) (*RestaurantDTO, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	rest := entity.Restaurant{
		Name:       req.Name,
		PriceRange: req.PriceRange,
		Phone:      req.Phone,
		Email:      req.Email,
		UserID:     req.UserID,
	}

	// Address first, then the restaurant referencing it. All or nothing.
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		addr := entity.Address{
			StreetAddress: req.Address.StreetAddress,
			City:          req.Address.City,
			PostalCode:    req.Address.PostalCode,
		}
		if err := s.AddressRepo.Create(tx, &addr); err != nil {
			return err
		}
		rest.AddressID = addr.ID
		return s.Repo.Create(tx, &rest)
	})
	if err != nil {
		return nil, err
	}
	return s.toDTO(&rest)
}

// Update replaces name/phone/email/price-range/address/user wholesale.
func (s *RestaurantService) Update(id uint, req *CreateRestaurantReq) (*RestaurantDTO, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Restaurant with id %d not found", id)
		}
		return nil, err
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		addr := entity.Address{
			StreetAddress: req.Address.StreetAddress,
			City:          req.Address.City,
			PostalCode:    req.Address.PostalCode,
		}
		if err := s.AddressRepo.Create(tx, &addr); err != nil {
			return err
		}

		rest.Name = req.Name
		rest.Phone = req.Phone
		rest.Email = req.Email
		rest.PriceRange = req.PriceRange
		rest.UserID = req.UserID
		rest.AddressID = addr.ID
		return s.Repo.Save(tx, rest)
	})
	if err != nil {
		return nil, err
	}
	return s.toDTO(rest)
}

// Delete removes the restaurant and its dependent products and employees in
// one transaction. Dependents go first to satisfy foreign keys.
func (s *RestaurantService) Delete(id uint) (*RestaurantDTO, error) {
	rest, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Restaurant with id %d not found", id)
		}
		return nil, err
	}

	dto, err := s.toDTO(rest)
	if err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.ProductRepo.DeleteByRestaurant(tx, id); err != nil {
			return err
		}
		if err := s.EmployeeRepo.DeleteByRestaurant(tx, id); err != nil {
			return err
		}
		return s.Repo.Delete(tx, id)
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// ----- Helpers -----

func (s *RestaurantService) validate(req *CreateRestaurantReq) error {
	if req.Address == nil {
		return apperr.Validation("Address is required")
	}
	if _, err := s.UserRepo.FindByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("User not found")
		}
		return err
	}
	return nil
}

func (s *RestaurantService) toDTO(rest *entity.Restaurant) (*RestaurantDTO, error) {
	sum, count, err := s.Repo.RatingStats(rest.ID)
	if err != nil {
		return nil, err
	}

	dto := RestaurantDTO{
		ID:         rest.ID,
		Name:       rest.Name,
		PriceRange: rest.PriceRange,
		Rating:     displayRating(sum, count),
	}

	addr, err := s.AddressRepo.FindByID(rest.AddressID)
	if err == nil {
		dto.Address = &AddressDTO{
			ID:            addr.ID,
			StreetAddress: addr.StreetAddress,
			City:          addr.City,
			PostalCode:    addr.PostalCode,
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return &dto, nil
}
