package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rocketfood/pkg/resp"
	"rocketfood/services"
)

type ProductController struct {
	Service *services.ProductService
}

func NewProductController(s *services.ProductService) *ProductController {
	return &ProductController{Service: s}
}

// GET /api/products?restaurant=
func (ctl *ProductController) List(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Query("restaurant"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	products, err := ctl.Service.ListByRestaurant(uint(restaurantID))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, products)
}
