package controllers

import (
	"errors"

	"foodie/pkg/resp"
	"foodie/services"

	"github.com/gin-gonic/gin"
)

// AdminController serves back-office login and registration.
type AdminController struct {
	Admins *services.AdminService
}

func NewAdminController(admins *services.AdminService) *AdminController {
	return &AdminController{Admins: admins}
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminRegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /api/admin/login
func (a *AdminController) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}

	token, admin, err := a.Admins.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, "Invalid email or password")
			return
		}
		fail(c, err, "", "Login failed")
		return
	}
	resp.OK(c, gin.H{
		"token": token,
		"admin": gin.H{"id": admin.ID, "email": admin.Email},
	})
}

// POST /api/admin/register
func (a *AdminController) Register(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Email and password are required")
		return
	}

	admin, err := a.Admins.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			resp.BadRequest(c, "Admin with this email already exists")
			return
		}
		fail(c, err, "", "Registration failed")
		return
	}
	resp.Created(c, gin.H{"id": admin.ID, "email": admin.Email})
}
