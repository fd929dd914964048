package controllers

import (
	"foodie/middlewares"
	"foodie/pkg/resp"
	"foodie/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Orders *services.OrderService
	Auth   *middlewares.CustomerAuth
}

func NewOrderController(orders *services.OrderService, auth *middlewares.CustomerAuth) *OrderController {
	return &OrderController{Orders: orders, Auth: auth}
}

type OrderLineRequest struct {
	MenuItemID string  `json:"_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Price      float64 `json:"price" binding:"gte=0"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone" binding:"required"`
	Address      string             `json:"address" binding:"required"`
	Note         string             `json:"note"`
	Items        []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
}

// POST /api/orders (public; a valid customer token attaches identity,
// anything else falls back to a guest order)
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	in := &services.CreateOrderInput{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Note:         req.Note,
		Customer:     ctl.Auth.TryResolve(c),
	}
	for _, line := range req.Items {
		in.Items = append(in.Items, services.OrderLineIn{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
		})
	}

	order, err := ctl.Orders.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "", "Failed to create order")
		return
	}
	resp.Created(c, order)
}

// GET /api/orders (admin)
func (ctl *OrderController) List(c *gin.Context) {
	orders, err := ctl.Orders.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err, "", "Failed to fetch orders")
		return
	}
	resp.OK(c, orders)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/orders/:id/status (admin)
func (ctl *OrderController) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid status value.")
		return
	}

	order, err := ctl.Orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		fail(c, err, "Order not found.", "Failed to update order status")
		return
	}
	resp.OK(c, order)
}
