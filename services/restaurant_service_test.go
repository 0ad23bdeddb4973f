package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketfood/entity"
	"rocketfood/pkg/apperr"
	"rocketfood/services"
)

func TestRestaurantService_RatingZeroWithoutOrders(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	rest := seedRestaurant(t, db, "resto@example.com")

	got, err := svc.Get(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Rating)
}

func TestRestaurantService_RatingIsCeilingOfMean(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	cust := seedCustomer(t, db, "alice@example.com")
	restA := seedRestaurant(t, db, "a@example.com")
	restB := seedRestaurant(t, db, "b@example.com")

	// restA: ratings [4,5], mean 4.5 -> 5. An unrated order must not count.
	seedRatedOrder(t, db, cust.ID, restA.ID, intPtr(4))
	seedRatedOrder(t, db, cust.ID, restA.ID, intPtr(5))
	seedRatedOrder(t, db, cust.ID, restA.ID, nil)

	// restB: ratings [3,3,4], mean 3.33 -> 4.
	seedRatedOrder(t, db, cust.ID, restB.ID, intPtr(3))
	seedRatedOrder(t, db, cust.ID, restB.ID, intPtr(3))
	seedRatedOrder(t, db, cust.ID, restB.ID, intPtr(4))

	a, err := svc.Get(restA.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Rating)

	b, err := svc.Get(restB.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Rating)
}

func TestRestaurantService_ListFilters(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	cust := seedCustomer(t, db, "alice@example.com")

	cheap := seedRestaurant(t, db, "cheap@example.com")
	require.NoError(t, db.Model(&entity.Restaurant{}).Where("id = ?", cheap.ID).Update("price_range", 1).Error)
	fancy := seedRestaurant(t, db, "fancy@example.com")
	require.NoError(t, db.Model(&entity.Restaurant{}).Where("id = ?", fancy.ID).Update("price_range", 3).Error)

	seedRatedOrder(t, db, cust.ID, cheap.ID, intPtr(5))
	seedRatedOrder(t, db, cust.ID, fancy.ID, intPtr(3))

	// No filters: everything, id ascending, annotated with ratings.
	all, err := svc.List(nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, cheap.ID, all[0].ID)
	assert.Equal(t, 5, all[0].Rating)

	// Price filter only.
	got, err := svc.List(nil, intPtr(3))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fancy.ID, got[0].ID)

	// Rating filter matches the displayed (ceiling) rating.
	got, err = svc.List(intPtr(5), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, cheap.ID, got[0].ID)

	// Both filters, no match.
	got, err = svc.List(intPtr(5), intPtr(3))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRestaurantService_GetUnknown(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	_, err := svc.Get(404)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRestaurantService_Create(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	owner := seedUser(t, db, "owner@example.com")

	created, err := svc.Create(&services.CreateRestaurantReq{
		UserID:     owner.ID,
		Name:       "Villa Wellington",
		PriceRange: 2,
		Phone:      "555-0199",
		Email:      "villa@example.com",
		Address: &services.AddressIn{
			StreetAddress: "123 Wellington St",
			City:          "Montreal",
			PostalCode:    "H3B 2C9",
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 0, created.Rating)
	require.NotNil(t, created.Address)
	assert.Equal(t, "123 Wellington St", created.Address.StreetAddress)

	var rest entity.Restaurant
	require.NoError(t, db.First(&rest, created.ID).Error)
	assert.Equal(t, owner.ID, rest.UserID)
	assert.NotZero(t, rest.AddressID)
}

func TestRestaurantService_CreateWithoutAddress(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	owner := seedUser(t, db, "owner@example.com")

	_, err := svc.Create(&services.CreateRestaurantReq{
		UserID:     owner.ID,
		Name:       "No Address",
		PriceRange: 1,
		Phone:      "555-0000",
		Email:      "na@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Nothing persisted, no orphaned rows.
	var restaurants, addresses int64
	require.NoError(t, db.Model(&entity.Restaurant{}).Count(&restaurants).Error)
	require.NoError(t, db.Model(&entity.Address{}).Count(&addresses).Error)
	assert.Zero(t, restaurants)
	assert.Zero(t, addresses)
}

func TestRestaurantService_CreateUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	_, err := svc.Create(&services.CreateRestaurantReq{
		UserID:     999,
		Name:       "Ghost Owner",
		PriceRange: 1,
		Phone:      "555-0000",
		Email:      "ghost@example.com",
		Address:    &services.AddressIn{StreetAddress: "1 Nowhere", City: "Void", PostalCode: "00000"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestRestaurantService_Update(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	rest := seedRestaurant(t, db, "resto@example.com")
	newOwner := seedUser(t, db, "newowner@example.com")

	updated, err := svc.Update(rest.ID, &services.CreateRestaurantReq{
		UserID:     newOwner.ID,
		Name:       "Renamed",
		PriceRange: 3,
		Phone:      "555-0111",
		Email:      "renamed@example.com",
		Address:    &services.AddressIn{StreetAddress: "9 New Rd", City: "Laval", PostalCode: "H7A 0A1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 3, updated.PriceRange)
	assert.Equal(t, "9 New Rd", updated.Address.StreetAddress)

	var stored entity.Restaurant
	require.NoError(t, db.First(&stored, rest.ID).Error)
	assert.Equal(t, newOwner.ID, stored.UserID)
	assert.Equal(t, "555-0111", stored.Phone)
}

func TestRestaurantService_UpdateUnknown(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	_, err := svc.Update(404, &services.CreateRestaurantReq{
		UserID:     1,
		Name:       "Nope",
		PriceRange: 1,
		Phone:      "555",
		Email:      "n@example.com",
		Address:    &services.AddressIn{StreetAddress: "1", City: "C", PostalCode: "P"},
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRestaurantService_DeleteCascades(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	rest := seedRestaurant(t, db, "resto@example.com")
	seedProduct(t, db, rest.ID, "Pizza", 100)
	seedProduct(t, db, rest.ID, "Salad", 150)

	staff := seedUser(t, db, "staff@example.com")
	addr := seedAddress(t, db)
	require.NoError(t, db.Create(&entity.Employee{
		UserID: staff.ID, AddressID: addr.ID, RestaurantID: rest.ID,
		Phone: "555-0122", Email: "staff@example.com",
	}).Error)

	_, err := svc.Delete(rest.ID)
	require.NoError(t, err)

	var products, employees int64
	require.NoError(t, db.Model(&entity.Product{}).Where("restaurant_id = ?", rest.ID).Count(&products).Error)
	require.NoError(t, db.Model(&entity.Employee{}).Where("restaurant_id = ?", rest.ID).Count(&employees).Error)
	assert.Zero(t, products)
	assert.Zero(t, employees)

	_, err = svc.Get(rest.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestRestaurantService_DeleteUnknown(t *testing.T) {
	db := setupDB(t)
	svc := newRestaurantService(db)

	_, err := svc.Delete(404)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
