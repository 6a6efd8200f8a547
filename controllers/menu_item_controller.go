package controllers

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type CreateMenuItemRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
	MenuID  uint `json:"menu_id" binding:"required"`

	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`

	IsAvailable  *bool `json:"is_available"`
	IsVegetarian *bool `json:"is_vegetarian"`
}

type UpdateMenuItemRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
	MenuID  uint `json:"menu_id" binding:"required"`
	ItemID  uint `json:"item_id" binding:"required"`

	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url" binding:"omitempty,url"`

	IsAvailable  *bool `json:"is_available"`
	IsVegetarian *bool `json:"is_vegetarian"`
}

type MenuItemController struct {
	Svc *services.MenuService
}

func NewMenuItemController(svc *services.MenuService) *MenuItemController {
	return &MenuItemController{Svc: svc}
}

// GET /restaurant/menu/item/?store_id=&menu_id=
// 404 when the menu belongs to a different store than store_id.
func (ctl *MenuItemController) List(c *gin.Context) {
	storeID, okStore := queryUint(c, "store_id")
	menuID, okMenu := queryUint(c, "menu_id")
	if !okStore || !okMenu {
		resp.MissingParam(c, "store_id and menu_id are required", "/?store_id=<int>&menu_id=<int>")
		return
	}

	items, err := ctl.Svc.ListItems(storeID, menuID)
	if err != nil {
		menuErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /restaurant/menu/item/
func (ctl *MenuItemController) Create(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	item := entity.MenuItem{
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		ImageURL:     req.ImageURL,
		IsAvailable:  true,
		IsVegetarian: true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.IsVegetarian != nil {
		item.IsVegetarian = *req.IsVegetarian
	}

	if err := ctl.Svc.CreateItem(req.StoreID, req.MenuID, &item); err != nil {
		menuErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /restaurant/menu/item/
func (ctl *MenuItemController) Update(c *gin.Context) {
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.IsVegetarian != nil {
		updates["is_vegetarian"] = *req.IsVegetarian
	}

	item, err := ctl.Svc.UpdateItem(req.StoreID, req.MenuID, req.ItemID, updates)
	if err != nil {
		menuErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /restaurant/menu/item/?store_id=&menu_id=&item_id=
func (ctl *MenuItemController) Delete(c *gin.Context) {
	storeID, okStore := queryUint(c, "store_id")
	menuID, okMenu := queryUint(c, "menu_id")
	itemID, okItem := queryUint(c, "item_id")
	if !okStore || !okMenu || !okItem {
		resp.MissingParam(c, "store_id, menu_id and item_id are required", "/?store_id=<int>&menu_id=<int>&item_id=<int>")
		return
	}

	if err := ctl.Svc.DeleteItem(storeID, menuID, itemID); err != nil {
		menuErr(c, err)
		return
	}
	resp.NoContent(c)
}
