package controllers

import (
	"net/http"

	"github.com/Priyans1727C/backend/pkg/resp"
	"github.com/Priyans1727C/backend/services"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Email    string `json:"email" binding:"omitempty,email"`
}

type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	UID         string `json:"uid" binding:"required"`
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type AuthController struct {
	Svc          *services.AuthService
	PasswordSvc  *services.PasswordService
	CookieSecure bool
	CookieMaxAge int
}

func NewAuthController(svc *services.AuthService, pwSvc *services.PasswordService, cookieSecure bool, cookieMaxAge int) *AuthController {
	return &AuthController{Svc: svc, PasswordSvc: pwSvc, CookieSecure: cookieSecure, CookieMaxAge: cookieMaxAge}
}

// The refresh token travels only in this cookie, never in a response body.
func (a *AuthController) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("refresh_token", token, a.CookieMaxAge, "/", "", a.CookieSecure, true)
}

func (a *AuthController) clearRefreshCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("refresh_token", "", -1, "/", "", a.CookieSecure, true)
}

// POST /accounts/register/
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	user, pair, err := a.Svc.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case services.ErrUsernameTaken, services.ErrEmailTaken:
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	a.setRefreshCookie(c, pair.Refresh)
	resp.Created(c, gin.H{
		"access": pair.Access,
		"user": gin.H{
			"id":       user.ID,
			"email":    user.Email,
			"username": user.Username,
		},
	})
}

// POST /accounts/login/
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	_, pair, err := a.Svc.Login(req.Identifier, req.Password)
	if err != nil {
		resp.Unauthorized(c, services.ErrInvalidLogin.Error())
		return
	}

	a.setRefreshCookie(c, pair.Refresh)
	resp.OK(c, gin.H{"access": pair.Access})
}

// POST /accounts/refresh-token/
// Reads the token from the body, falling back to the refresh_token cookie.
func (a *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	_ = c.ShouldBindJSON(&req)

	token := req.Refresh
	if token == "" {
		token, _ = c.Cookie("refresh_token")
	}
	if token == "" {
		resp.Unauthorized(c, "refresh token is required")
		return
	}

	pair, err := a.Svc.Refresh(token)
	if err != nil {
		resp.Unauthorized(c, "invalid or expired refresh token")
		return
	}

	a.setRefreshCookie(c, pair.Refresh)
	resp.OK(c, gin.H{"access": pair.Access})
}

// POST /accounts/logout/
func (a *AuthController) Logout(c *gin.Context) {
	a.clearRefreshCookie(c)
	c.Status(http.StatusResetContent)
}

// POST /accounts/forgot-password/
// Always answers with the same body, whether or not the email exists.
func (a *AuthController) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	a.PasswordSvc.Forgot(req.Email)

	resp.OK(c, gin.H{"detail": "If an account with that email exists, a password reset link has been sent."})
}

// POST /accounts/reset-password/
func (a *AuthController) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.ValidationError(c, err)
		return
	}

	if err := a.PasswordSvc.Reset(req.UID, req.Token, req.NewPassword); err != nil {
		switch err {
		case services.ErrInvalidUID, services.ErrInvalidResetToken:
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"detail": "Password has been reset successfully."})
}
