package controllers

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
	UserID  uint `json:"user_id" binding:"required"`

	DeliveryAddress string   `json:"delivery_address"`
	OrderStatus     string   `json:"order_status"`
	TotalAmount     *float64 `json:"total_amount" binding:"required,gt=0"`
	PaymentMethod   string   `json:"payment_method"`
}

type UpdateOrderRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
	OrderID uint `json:"order_id" binding:"required"`
	UserID  uint `json:"user_id" binding:"required"`

	DeliveryAddress *string  `json:"delivery_address"`
	OrderStatus     *string  `json:"order_status"`
	TotalAmount     *float64 `json:"total_amount" binding:"omitempty,gt=0"`
	PaymentMethod   *string  `json:"payment_method"`
}

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

func orderErr(c *gin.Context, err error) {
	switch err {
	case services.ErrRestaurantNotFound, services.ErrOrderNotFound,
		services.ErrOrderItemNotFound, services.ErrMenuItemNotFound:
		resp.NotFound(c, err.Error())
	case services.ErrInvalidUser, services.ErrInvalidOrderStatus:
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /restaurant/order/?store_id=&order_id=
func (ctl *OrderController) Get(c *gin.Context) {
	storeID, okStore := queryUint(c, "store_id")
	orderID, okOrder := queryUint(c, "order_id")
	if !okStore || !okOrder {
		resp.MissingParam(c, "store_id and order_id are required", "/?store_id=<int>&order_id=<int>")
		return
	}

	order, err := ctl.Svc.Get(storeID, orderID)
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /restaurant/order/
// total_amount and order_status are persisted as submitted.
func (ctl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	order := entity.Order{
		DeliveryAddress: req.DeliveryAddress,
		OrderStatus:     req.OrderStatus,
		TotalAmount:     *req.TotalAmount,
		PaymentMethod:   req.PaymentMethod,
	}

	if err := ctl.Svc.Create(req.StoreID, req.UserID, &order); err != nil {
		orderErr(c, err)
		return
	}
	resp.Created(c, order)
}

// PUT /restaurant/order/
func (ctl *OrderController) Update(c *gin.Context) {
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.DeliveryAddress != nil {
		updates["delivery_address"] = *req.DeliveryAddress
	}
	if req.OrderStatus != nil {
		updates["order_status"] = *req.OrderStatus
	}
	if req.TotalAmount != nil {
		updates["total_amount"] = *req.TotalAmount
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}

	order, err := ctl.Svc.Update(req.StoreID, req.OrderID, req.UserID, updates)
	if err != nil {
		orderErr(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /restaurant/order/?store_id=&order_id=&user_id=
// Cascades the order's items.
func (ctl *OrderController) Delete(c *gin.Context) {
	storeID, okStore := queryUint(c, "store_id")
	orderID, okOrder := queryUint(c, "order_id")
	userID, okUser := queryUint(c, "user_id")
	if !okStore || !okOrder || !okUser {
		resp.MissingParam(c, "store_id, order_id and user_id are required", "/?store_id=<int>&order_id=<int>&user_id=<int>")
		return
	}

	if err := ctl.Svc.Delete(storeID, orderID, userID); err != nil {
		orderErr(c, err)
		return
	}
	resp.NoContent(c)
}
