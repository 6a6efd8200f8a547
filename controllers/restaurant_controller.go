package controllers

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type CreateRestaurantRequest struct {
	StoreID     uint   `json:"store_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`

	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Pincode string `json:"pincode" binding:"required"`

	Phone string `json:"phone"`
	Email string `json:"email" binding:"omitempty,email"`

	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
}

type UpdateRestaurantRequest struct {
	StoreID     uint    `json:"store_id" binding:"required"`
	Name        *string `json:"name"`
	Description *string `json:"description"`

	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Pincode *string `json:"pincode"`

	Phone *string `json:"phone"`
	Email *string `json:"email" binding:"omitempty,email"`

	OpeningTime *string `json:"opening_time"`
	ClosingTime *string `json:"closing_time"`

	IsActive *bool `json:"is_active"`
}

type RestaurantController struct {
	Svc *services.RestaurantService
}

func NewRestaurantController(svc *services.RestaurantService) *RestaurantController {
	return &RestaurantController{Svc: svc}
}

func restaurantErr(c *gin.Context, err error) {
	switch err {
	case services.ErrStoreNotFound, services.ErrRestaurantNotFound:
		resp.NotFound(c, err.Error())
	case services.ErrRestaurantExists, services.ErrRestaurantNameTaken:
		resp.BadRequest(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}

// GET /restaurant/info/?store_id=
func (ctl *RestaurantController) Get(c *gin.Context) {
	storeID, ok := queryUint(c, "store_id")
	if !ok {
		resp.MissingParam(c, "store_id is required", "/?store_id=<int>")
		return
	}

	rest, err := ctl.Svc.GetByStore(storeID)
	if err != nil {
		restaurantErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /restaurant/info/
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	rest := entity.Restaurant{
		StoreID:     req.StoreID,
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Phone:       req.Phone,
		Email:       req.Email,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		IsActive:    true,
	}

	if err := ctl.Svc.Create(&rest); err != nil {
		restaurantErr(c, err)
		return
	}
	resp.Created(c, rest)
}

// PUT /restaurant/info/ (partial update)
func (ctl *RestaurantController) Update(c *gin.Context) {
	var req UpdateRestaurantRequest
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
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.Pincode != nil {
		updates["pincode"] = *req.Pincode
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.OpeningTime != nil {
		updates["opening_time"] = *req.OpeningTime
	}
	if req.ClosingTime != nil {
		updates["closing_time"] = *req.ClosingTime
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	rest, err := ctl.Svc.Update(req.StoreID, updates)
	if err != nil {
		restaurantErr(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurant/info/?store_id=
// Cascades menus and menu items.
func (ctl *RestaurantController) Delete(c *gin.Context) {
	storeID, ok := queryUint(c, "store_id")
	if !ok {
		resp.MissingParam(c, "store_id is required", "/?store_id=<int>")
		return
	}

	if err := ctl.Svc.Delete(storeID); err != nil {
		restaurantErr(c, err)
		return
	}
	resp.NoContent(c)
}
