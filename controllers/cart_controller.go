package controllers

import (
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	StoreID uint `json:"store_id" binding:"required"`
	// ItemID is the MenuItem to add.
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity *int `json:"quantity" binding:"required,gte=1"`
}

type UpdateCartItemRequest struct {
	UserID     uint `json:"user_id" binding:"required"`
	CartItemID uint `json:"cart_item_id" binding:"required"`
	Quantity   *int `json:"quantity" binding:"omitempty,gte=1"`
}

type CartController struct {
	Svc *services.CartService
}

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

func cartErr(c *gin.Context, err error) {
	switch err {
	case services.ErrCartEmpty, services.ErrMenuItemNotFound, services.ErrCartItemNotFound:
		resp.NotFound(c, err.Error())
	case services.ErrInvalidUser:
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /restaurant/cart/?user_id=
func (ctl *CartController) List(c *gin.Context) {
	userID, ok := queryUint(c, "user_id")
	if !ok {
		resp.MissingParam(c, "user_id is required", "/?user_id=<int>")
		return
	}

	rows, err := ctl.Svc.List(userID)
	if err != nil {
		cartErr(c, err)
		return
	}
	resp.OK(c, rows)
}

// POST /restaurant/cart/
// Always inserts a new row; identical additions are not merged.
func (ctl *CartController) Add(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	row, err := ctl.Svc.Add(req.UserID, req.StoreID, req.ItemID, *req.Quantity)
	if err != nil {
		cartErr(c, err)
		return
	}
	resp.Created(c, row)
}

// PUT /restaurant/cart/
func (ctl *CartController) Update(c *gin.Context) {
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}

	row, err := ctl.Svc.Update(req.UserID, req.CartItemID, updates)
	if err != nil {
		cartErr(c, err)
		return
	}
	resp.OK(c, row)
}

// DELETE /restaurant/cart/?user_id=&cart_item_id=
func (ctl *CartController) Remove(c *gin.Context) {
	userID, okUser := queryUint(c, "user_id")
	cartItemID, okItem := queryUint(c, "cart_item_id")
	if !okUser || !okItem {
		resp.MissingParam(c, "user_id and cart_item_id are required", "/?user_id=<int>&cart_item_id=<int>")
		return
	}

	if err := ctl.Svc.Remove(userID, cartItemID); err != nil {
		cartErr(c, err)
		return
	}
	resp.NoContent(c)
}
