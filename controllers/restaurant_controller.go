package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rocketfood/pkg/resp"
	"rocketfood/services"
)

type RestaurantController struct {
	Service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Service: s}
}

// GET /api/restaurants?rating=&price_range=
func (ctl *RestaurantController) List(c *gin.Context) {
	rating, ok := optionalIntQuery(c, "rating")
	if !ok {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}
	priceRange, ok := optionalIntQuery(c, "price_range")
	if !ok {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	restaurants, err := ctl.Service.List(rating, priceRange)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, restaurants)
}

// GET /api/restaurants/:id
func (ctl *RestaurantController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	restaurant, err := ctl.Service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// POST /api/restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Validation failed")
		return
	}

	restaurant, err := ctl.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, restaurant)
}

// PUT /api/restaurants/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	var req services.CreateRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Validation failed")
		return
	}

	restaurant, err := ctl.Service.Update(uint(id), &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// DELETE /api/restaurants/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	restaurant, err := ctl.Service.Delete(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, restaurant)
}

// optionalIntQuery parses an optional integer query parameter. ok is false
// only when the parameter is present but not an integer.
func optionalIntQuery(c *gin.Context, name string) (*int, bool) {
	raw, exists := c.GetQuery(name)
	if !exists || raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, false
	}
	return &v, true
}
