package controllers

import (
	"net/http"

	"foodie/entity"
	"foodie/pkg/resp"
	"foodie/services"

	"github.com/gin-gonic/gin"
)

type MenuController struct {
	Menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{Menus: menus}
}

// GET /api/menu?category=
func (ctl *MenuController) ListPublic(c *gin.Context) {
	items, err := ctl.Menus.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		fail(c, err, "", "Failed to fetch menu")
		return
	}
	// bare array, the storefront consumes it without the envelope
	c.JSON(http.StatusOK, items)
}

// GET /api/admin/menu
func (ctl *MenuController) ListAdmin(c *gin.Context) {
	items, err := ctl.Menus.ListAll(c.Request.Context())
	if err != nil {
		fail(c, err, "", "Failed to fetch menu items")
		return
	}
	resp.OK(c, items)
}

type CreateMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	IsVeg       *bool    `json:"isVeg"`
	IsAvailable *bool    `json:"isAvailable"`
}

// POST /api/admin/menu
func (ctl *MenuController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "name, description, price and category are required")
		return
	}

	in := &services.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		IsVeg:       true,
		IsAvailable: true,
	}
	if req.IsVeg != nil {
		in.IsVeg = *req.IsVeg
	}
	if req.IsAvailable != nil {
		in.IsAvailable = *req.IsAvailable
	}

	item, err := ctl.Menus.Create(c.Request.Context(), in)
	if err != nil {
		fail(c, err, "", "Failed to create menu item")
		return
	}
	resp.Created(c, item)
}

// PUT /api/admin/menu/:id
func (ctl *MenuController) Update(c *gin.Context) {
	var patch entity.MenuItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := ctl.Menus.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		fail(c, err, "Menu item not found", "Failed to update menu item")
		return
	}
	resp.OK(c, item)
}

// DELETE /api/admin/menu/:id
func (ctl *MenuController) Delete(c *gin.Context) {
	item, err := ctl.Menus.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Menu item not found", "Failed to delete menu item")
		return
	}
	resp.OK(c, item)
}

// PATCH /api/admin/menu/:id/toggle-availability
func (ctl *MenuController) ToggleAvailability(c *gin.Context) {
	item, err := ctl.Menus.ToggleAvailability(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err, "Menu item not found", "Failed to toggle availability")
		return
	}
	resp.OK(c, item)
}
