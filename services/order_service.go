package services

import (
	"errors"
	"log"
	"strings"

	"gorm.io/gorm"

	"rocketfood/entity"
	"rocketfood/pkg/apperr"
	"rocketfood/pkg/rabbitmq"
	"rocketfood/repository"
)

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CustomerRepo *repository.CustomerRepository
	CourierRepo  *repository.CourierRepository
	RestRepo     *repository.RestaurantRepository
	ProductRepo  *repository.ProductRepository
	AddressRepo  *repository.AddressRepository
	Events       *rabbitmq.Client // nil disables publishing
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	customerRepo *repository.CustomerRepository,
	courierRepo *repository.CourierRepository,
	restRepo *repository.RestaurantRepository,
	productRepo *repository.ProductRepository,
	addressRepo *repository.AddressRepository,
	events *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		DB:           db,
		Repo:         repo,
		CustomerRepo: customerRepo,
		CourierRepo:  courierRepo,
		RestRepo:     restRepo,
		ProductRepo:  productRepo,
		AddressRepo:  addressRepo,
		Events:       events,
	}
}

// ----- DTOs -----

type OrderProductIn struct {
	ID       uint `json:"id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	CustomerID   uint             `json:"customer_id" binding:"required"`
	RestaurantID uint             `json:"restaurant_id" binding:"required"`
	Products     []OrderProductIn `json:"products" binding:"required,min=1"`
}

type OrderProductDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"product_name"`
	Quantity  int    `json:"quantity"`
	UnitCost  int64  `json:"unit_cost"`
	TotalCost int64  `json:"total_cost"`
}

type OrderDTO struct {
	ID                uint              `json:"id"`
	CustomerID        uint              `json:"customer_id"`
	CustomerName      string            `json:"customer_name"`
	CustomerAddress   string            `json:"customer_address"`
	RestaurantID      uint              `json:"restaurant_id"`
	RestaurantName    string            `json:"restaurant_name"`
	RestaurantAddress string            `json:"restaurant_address"`
	CourierID         *uint             `json:"courier_id"`
	CourierName       *string           `json:"courier_name"`
	Status            string            `json:"status"`
	Products          []OrderProductDTO `json:"products"`
	TotalCost         int64             `json:"total_cost"`
}

// ----- Create -----

// Create validates the customer, restaurant, and products, snapshots each
// product's current unit cost into the line items, and persists the order
// with its items in one transaction. New orders always start "in progress".
func (s *OrderService) Create(req *CreateOrderReq) (*OrderDTO, error) {
	if len(req.Products) == 0 {
		return nil, apperr.Validation("products are required")
	}

	if _, err := s.CustomerRepo.FindByID(req.CustomerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Customer with id %d not found", req.CustomerID)
		}
		return nil, err
	}
	if _, err := s.RestRepo.FindByID(req.RestaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Restaurant with id %d not found", req.RestaurantID)
		}
		return nil, err
	}

	status, err := s.Repo.GetStatusByName(entity.StatusInProgress)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Order status %q not found", entity.StatusInProgress)
		}
		return nil, err
	}

	// Snapshot unit costs up front so the transaction only writes.
	type line struct {
		productID uint
		quantity  int
		unitCost  int64
	}
	lines := make([]line, 0, len(req.Products))
	for _, in := range req.Products {
		p, err := s.ProductRepo.FindByID(in.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.NotFound("Product with id %d not found", in.ID)
			}
			return nil, err
		}
		if p.RestaurantID != req.RestaurantID {
			return nil, apperr.Validation("Product with id %d does not belong to restaurant %d", in.ID, req.RestaurantID)
		}
		lines = append(lines, line{productID: p.ID, quantity: in.Quantity, unitCost: p.UnitCost})
	}

	order := entity.Order{
		CustomerID:    req.CustomerID,
		RestaurantID:  req.RestaurantID,
		OrderStatusID: status.ID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			po := entity.ProductOrder{
				OrderID:         order.ID,
				ProductID:       l.productID,
				ProductQuantity: l.quantity,
				ProductUnitCost: l.unitCost,
			}
			if err := s.Repo.CreateProductOrder(tx, &po); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	dto, err := s.toDTO(&order)
	if err != nil {
		return nil, err
	}
	s.publish("order.created", dto)
	return dto, nil
}

// ----- Change status -----

// ChangeStatus overwrites the order's status with the named one and echoes
// the requested name back. No transition graph is enforced; any name in the
// vocabulary is a legal target from any state.
func (s *OrderService) ChangeStatus(orderID uint, statusName string) (string, error) {
	if strings.TrimSpace(statusName) == "" {
		return "", apperr.Validation("Invalid or missing parameters")
	}

	if _, err := s.Repo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("Order with id %d not found", orderID)
		}
		return "", err
	}

	status, err := s.Repo.GetStatusByName(statusName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFound("Order status %q not found", statusName)
		}
		return "", err
	}

	if err := s.Repo.UpdateStatus(orderID, status.ID); err != nil {
		return "", err
	}

	s.publish("order.status_changed", map[string]any{"order_id": orderID, "status": statusName})
	return statusName, nil
}

// ----- Query by role -----

// ListByType fetches orders by the given role's foreign key. Exactly
// customer, restaurant, and courier are valid; anything else is an invalid
// argument, not a missing resource.
func (s *OrderService) ListByType(orderType string, id uint) ([]OrderDTO, error) {
	var (
		orders []entity.Order
		err    error
	)
	switch strings.ToLower(orderType) {
	case "customer":
		orders, err = s.Repo.ListByCustomer(id)
	case "restaurant":
		orders, err = s.Repo.ListByRestaurant(id)
	case "courier":
		orders, err = s.Repo.ListByCourier(id)
	default:
		return nil, apperr.InvalidArgument("Invalid type: %s", orderType)
	}
	if err != nil {
		return nil, err
	}

	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		dto, err := s.toDTO(&orders[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *dto)
	}
	return out, nil
}

// ----- Helpers -----

func (s *OrderService) toDTO(o *entity.Order) (*OrderDTO, error) {
	dto := OrderDTO{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		RestaurantID: o.RestaurantID,
		CourierID:    o.CourierID,
	}

	status, err := s.Repo.GetStatusByID(o.OrderStatusID)
	if err != nil {
		return nil, err
	}
	dto.Status = status.Name

	cust, err := s.CustomerRepo.FindByID(o.CustomerID)
	if err != nil {
		return nil, err
	}
	dto.CustomerName = cust.Name
	if addr, err := s.AddressRepo.FindByID(cust.AddressID); err == nil {
		dto.CustomerAddress = addr.String()
	}

	rest, err := s.RestRepo.FindByID(o.RestaurantID)
	if err != nil {
		return nil, err
	}
	dto.RestaurantName = rest.Name
	if addr, err := s.AddressRepo.FindByID(rest.AddressID); err == nil {
		dto.RestaurantAddress = addr.String()
	}

	if o.CourierID != nil {
		if courier, err := s.CourierRepo.FindByID(*o.CourierID); err == nil {
			dto.CourierName = &courier.Name
		}
	}

	items, err := s.Repo.ListProductOrders(o.ID)
	if err != nil {
		return nil, err
	}
	dto.Products = make([]OrderProductDTO, 0, len(items))
	for _, it := range items {
		name := ""
		if p, err := s.ProductRepo.FindByID(it.ProductID); err == nil {
			name = p.Name
		}
		lineTotal := it.ProductUnitCost * int64(it.ProductQuantity)
		dto.Products = append(dto.Products, OrderProductDTO{
			ID:        it.ProductID,
			Name:      name,
			Quantity:  it.ProductQuantity,
			UnitCost:  it.ProductUnitCost,
			TotalCost: lineTotal,
		})
		dto.TotalCost += lineTotal
	}
	return &dto, nil
}

func (s *OrderService) publish(event string, payload any) {
	if err := s.Events.Publish(event, payload); err != nil {
		log.Printf("failed to publish %s: %v", event, err)
	}
}
