package controllers

import (
	"github.com/Priyans1727C/backend/entity"
	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"
	"github.com/Priyans1727C/backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Pincode   string `json:"pincode"`
}

type ProfileController struct {
	Svc *services.AuthService
}

func NewProfileController(svc *services.AuthService) *ProfileController {
	return &ProfileController{Svc: svc}
}

// GET /accounts/profile/
// Falls back to basic user info when no profile row exists yet.
func (p *ProfileController) Get(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	profile, err := p.Svc.GetProfile(userID)
	if err == gorm.ErrRecordNotFound {
		user, uerr := p.Svc.GetUser(userID)
		if uerr != nil {
			resp.NotFound(c, "user not found")
			return
		}
		resp.OK(c, gin.H{
			"id":      user.ID,
			"user":    user.Username,
			"message": "UserProfile not found. Returning basic user info.",
		})
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, profile)
}

// PUT /accounts/profile/
func (p *ProfileController) Update(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	profile, err := p.Svc.UpdateProfile(utils.CurrentUserID(c), &entity.UserProfile{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
	})
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, profile)
}

// DELETE /accounts/profile/
func (p *ProfileController) Delete(c *gin.Context) {
	if err := p.Svc.DeleteProfile(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.NoContent(c)
}
