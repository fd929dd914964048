package controllers

import (
	"errors"

	"foodie/entity"
	"foodie/pkg/resp"
	"foodie/services"
	"foodie/utils"

	"github.com/gin-gonic/gin"
)

// AuthController serves the customer account endpoints under /api/users.
type AuthController struct {
	Auth   *services.AuthService
	Orders *services.OrderService
}

func NewAuthController(auth *services.AuthService, orders *services.OrderService) *AuthController {
	return &AuthController{Auth: auth, Orders: orders}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func customerProfile(u *entity.Customer) gin.H {
	return gin.H{
		"id": u.ID, "name": u.Name, "email": u.Email,
		"phone": u.Phone, "address": u.Address,
	}
}

// POST /api/users/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Name, email and password are required")
		return
	}

	token, customer, err := a.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Phone, req.Address)
	if err != nil {
		fail(c, err, "", "Registration failed")
		return
	}
	resp.Created(c, gin.H{"token": token, "user": customerProfile(customer)})
}

// POST /api/users/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Email and password required")
		return
	}

	token, customer, err := a.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.BadRequest(c, "Invalid credentials")
			return
		}
		fail(c, err, "", "Login failed")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": customerProfile(customer)})
}

// GET /api/users/profile
func (a *AuthController) Profile(c *gin.Context) {
	customer := utils.CurrentCustomer(c)
	if customer == nil {
		resp.Unauthorized(c, "Not authorized")
		return
	}
	resp.OK(c, customer)
}

// PUT /api/users/profile
func (a *AuthController) UpdateProfile(c *gin.Context) {
	customer := utils.CurrentCustomer(c)
	if customer == nil {
		resp.Unauthorized(c, "Not authorized")
		return
	}

	var patch entity.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updated, err := a.Auth.UpdateProfile(c.Request.Context(), customer.ID, &patch)
	if err != nil {
		fail(c, err, "User not found", "Failed to update profile")
		return
	}
	resp.OK(c, updated)
}

// GET /api/users/my-orders
func (a *AuthController) MyOrders(c *gin.Context) {
	customer := utils.CurrentCustomer(c)
	if customer == nil {
		resp.Unauthorized(c, "Not authorized")
		return
	}

	orders, err := a.Orders.ListForCustomer(c.Request.Context(), customer.ID)
	if err != nil {
		fail(c, err, "", "Failed to fetch orders")
		return
	}
	resp.OK(c, orders)
}
