package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"rocketfood/configs"
	"rocketfood/entity"
	"rocketfood/repository"
	"rocketfood/services"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedStatuses(db))
	return db
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewCourierRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewProductRepository(db),
		repository.NewAddressRepository(db),
		nil,
	)
}

func newRestaurantService(db *gorm.DB) *services.RestaurantService {
	return services.NewRestaurantService(
		db,
		repository.NewRestaurantRepository(db),
		repository.NewAddressRepository(db),
		repository.NewUserRepository(db),
		repository.NewProductRepository(db),
		repository.NewEmployeeRepository(db),
	)
}

// ----- fixtures -----

func seedAddress(t *testing.T, db *gorm.DB) *entity.Address {
	t.Helper()
	a := entity.Address{StreetAddress: "123 Main St", City: "Montreal", PostalCode: "H1A 1A1"}
	require.NoError(t, db.Create(&a).Error)
	return &a
}

func seedUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()
	u := entity.User{Name: "Test User", Email: email, Password: "secret"}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) *entity.Customer {
	t.Helper()
	u := seedUser(t, db, email)
	a := seedAddress(t, db)
	c := entity.Customer{UserID: u.ID, AddressID: a.ID, Name: "Alice Martin", Phone: "555-0101", Email: email, Active: true}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedCourier(t *testing.T, db *gorm.DB, email string) *entity.Courier {
	t.Helper()
	u := seedUser(t, db, email)
	a := seedAddress(t, db)
	c := entity.Courier{UserID: u.ID, AddressID: a.ID, Name: "Bob Pedal", Phone: "555-0102", Email: email, Active: true}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

func seedRestaurant(t *testing.T, db *gorm.DB, email string) *entity.Restaurant {
	t.Helper()
	u := seedUser(t, db, email)
	a := seedAddress(t, db)
	r := entity.Restaurant{Name: "Chez Test", PriceRange: 2, Phone: "555-0100", Email: email, UserID: u.ID, AddressID: a.ID}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func seedProduct(t *testing.T, db *gorm.DB, restaurantID uint, name string, unitCost int64) *entity.Product {
	t.Helper()
	p := entity.Product{RestaurantID: restaurantID, Name: name, Description: "tasty", UnitCost: unitCost}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func seedRatedOrder(t *testing.T, db *gorm.DB, customerID, restaurantID uint, rating *int) *entity.Order {
	t.Helper()
	var status entity.OrderStatus
	require.NoError(t, db.Where("name = ?", entity.StatusDelivered).First(&status).Error)
	o := entity.Order{CustomerID: customerID, RestaurantID: restaurantID, OrderStatusID: status.ID, RestaurantRating: rating}
	require.NoError(t, db.Create(&o).Error)
	return &o
}

func intPtr(v int) *int { return &v }
