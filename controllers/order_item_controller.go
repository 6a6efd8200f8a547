package controllers

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type CreateOrderItemRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
	OrderID uint `json:"order_id" binding:"required"`
	// ItemID is the MenuItem being ordered.
	ItemID uint `json:"item_id" binding:"required"`

	Quantity *int     `json:"quantity" binding:"required,gte=1"`
	Price    *float64 `json:"price" binding:"required,gte=0"`

	SpecialInstructions string `json:"special_instructions"`
}

type UpdateOrderItemRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
	OrderID uint `json:"order_id" binding:"required"`
	// ItemID is the OrderItem row here, not the MenuItem.
	ItemID uint `json:"item_id" binding:"required"`

	Quantity *int     `json:"quantity" binding:"omitempty,gte=1"`
	Price    *float64 `json:"price" binding:"omitempty,gte=0"`

	SpecialInstructions *string `json:"special_instructions"`
}

type OrderItemController struct {
	Svc *services.OrderService
}

func NewOrderItemController(svc *services.OrderService) *OrderItemController {
	return &OrderItemController{Svc: svc}
}

// GET /restaurant/order/item/?store_id=&order_id=
func (ctl *OrderItemController) List(c *gin.Context) {
	storeID, okStore := queryUint(c, "store_id")
	orderID, okOrder := queryUint(c, "order_id")
	if !okStore || !okOrder {
		resp.MissingParam(c, "store_id and order_id are required", "/?store_id=<int>&order_id=<int>")
		return
	}

	items, err := ctl.Svc.ListItems(storeID, orderID)
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /restaurant/order/item/
// Price is taken from the request body, not from the menu item.
func (ctl *OrderItemController) Create(c *gin.Context) {
	var req CreateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	item := entity.OrderItem{
		Quantity:            *req.Quantity,
		Price:               *req.Price,
		SpecialInstructions: req.SpecialInstructions,
	}

	if err := ctl.Svc.CreateItem(req.StoreID, req.OrderID, req.ItemID, &item); err != nil {
		orderErr(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /restaurant/order/item/
func (ctl *OrderItemController) Update(c *gin.Context) {
	var req UpdateOrderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.SpecialInstructions != nil {
		updates["special_instructions"] = *req.SpecialInstructions
	}

	item, err := ctl.Svc.UpdateItem(req.StoreID, req.OrderID, req.ItemID, updates)
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /restaurant/order/item/?store_id=&order_id=&item_id=
func (ctl *OrderItemController) Delete(c *gin.Context) {
	storeID, okStore := queryUint(c, "store_id")
	orderID, okOrder := queryUint(c, "order_id")
	itemID, okItem := queryUint(c, "item_id")
	if !okStore || !okOrder || !okItem {
		resp.MissingParam(c, "store_id, order_id and item_id are required", "/?store_id=<int>&order_id=<int>&item_id=<int>")
		return
	}

	if err := ctl.Svc.DeleteItem(storeID, orderID, itemID); err != nil {
		orderErr(c, err)
		return
	}
	resp.NoContent(c)
}
