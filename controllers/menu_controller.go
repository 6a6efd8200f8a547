package controllers

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type CreateMenuRequest struct {
	StoreID      uint   `json:"store_id" binding:"required"`
	CategoryName string `json:"category_name" binding:"required"`
}

type UpdateMenuRequest struct {
	StoreID      uint    `json:"store_id" binding:"required"`
	MenuID       uint    `json:"menu_id" binding:"required"`
	CategoryName *string `json:"category_name"`
}

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(svc *services.MenuService) *MenuController {
	return &MenuController{Svc: svc}
}

func menuErr(c *gin.Context, err error) {
	switch err {
	case services.ErrRestaurantNotFound, services.ErrMenuNotFound, services.ErrMenuItemNotFound:
		resp.NotFound(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /restaurant/menu/?store_id=
func (ctl *MenuController) List(c *gin.Context) {
	storeID, ok := queryUint(c, "store_id")
	if !ok {
		resp.MissingParam(c, "store_id is required", "/?store_id=<int>")
		return
	}

	menus, err := ctl.Svc.List(storeID)
	if err != nil {
		menuErr(c, err)
		return
	}
	resp.OK(c, menus)
}

// POST /restaurant/menu/
func (ctl *MenuController) Create(c *gin.Context) {
	var req CreateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	menu := entity.Menu{CategoryName: req.CategoryName}
	if err := ctl.Svc.Create(req.StoreID, &menu); err != nil {
		menuErr(c, err)
		return
	}
	resp.Created(c, menu)
}

// PUT /restaurant/menu/
func (ctl *MenuController) Update(c *gin.Context) {
	var req UpdateMenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.CategoryName != nil {
		updates["category_name"] = *req.CategoryName
	}

	menu, err := ctl.Svc.Update(req.StoreID, req.MenuID, updates)
	if err != nil {
		menuErr(c, err)
		return
	}
	resp.OK(c, menu)
}

// DELETE /restaurant/menu/?store_id=&menu_id=
// Cascades the menu's items.
func (ctl *MenuController) Delete(c *gin.Context) {
	storeID, okStore := queryUint(c, "store_id")
	menuID, okMenu := queryUint(c, "menu_id")
	if !okStore || !okMenu {
		resp.MissingParam(c, "store_id and menu_id are required", "/?store_id=<int>&menu_id=<int>")
		return
	}

	if err := ctl.Svc.Delete(storeID, menuID); err != nil {
		menuErr(c, err)
		return
	}
	resp.NoContent(c)
}
