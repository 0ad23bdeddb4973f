package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rocketfood/pkg/apperr"
	"rocketfood/pkg/resp"
	"rocketfood/services"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Service: s}
}

// POST /api/orders
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	order, err := ctl.Service.Create(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /api/orders?type=&id=
func (ctl *OrderController) List(c *gin.Context) {
	orderType := c.Query("type")
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		resp.Error(c, apperr.InvalidArgument("Invalid or missing parameters"))
		return
	}

	orders, err := ctl.Service.ListByType(orderType, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

type changeStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// POST /api/orders/:order_id/status
func (ctl *OrderController) ChangeStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("order_id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	var req changeStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	newStatus, err := ctl.Service.ChangeStatus(uint(orderID), req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": newStatus})
}
