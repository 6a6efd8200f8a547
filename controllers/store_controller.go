package controllers

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type CreateStoreRequest struct {
	OwnerID     uint   `json:"owner_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

type UpdateStoreRequest struct {
	StoreID     uint    `json:"store_id" binding:"required"`
	Name        *string `json:"name"`
	Type        *string `json:"type"`
	Description *string `json:"description"`
}

type StoreController struct {
	Svc *services.StoreService
}

func NewStoreController(svc *services.StoreService) *StoreController {
	return &StoreController{Svc: svc}
}

// GET /store/?store_id=
func (ctl *StoreController) Get(c *gin.Context) {
	storeID, ok := queryUint(c, "store_id")
	if !ok {
		resp.MissingParam(c, "store_id is required", "/?store_id=<int>")
		return
	}

	store, err := ctl.Svc.Get(storeID)
	if err != nil {
		if err == services.ErrStoreNotFound {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, store)
}

// POST /store/
func (ctl *StoreController) Create(c *gin.Context) {
	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	store := entity.Store{
		OwnerID:     req.OwnerID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
	}
	if store.Type == "" {
		store.Type = entity.StoreTypeOther
	}

	if err := ctl.Svc.Create(&store); err != nil {
		switch err {
		case services.ErrInvalidOwner, services.ErrOwnerNotShopOwner,
			services.ErrInvalidStoreType, services.ErrStoreNameTaken:
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, store)
}

// PUT /store/
func (ctl *StoreController) Update(c *gin.Context) {
	var req UpdateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	store, err := ctl.Svc.Update(req.StoreID, updates)
	if err != nil {
		switch err {
		case services.ErrStoreNotFound:
			resp.NotFound(c, err.Error())
		case services.ErrInvalidStoreType, services.ErrStoreNameTaken:
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, store)
}

// DELETE /store/?store_id=
// Cascades the restaurant chain and the store's cart rows.
func (ctl *StoreController) Delete(c *gin.Context) {
	storeID, ok := queryUint(c, "store_id")
	if !ok {
		resp.MissingParam(c, "store_id is required", "/?store_id=<int>")
		return
	}

	if err := ctl.Svc.Delete(storeID); err != nil {
		if err == services.ErrStoreNotFound {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
