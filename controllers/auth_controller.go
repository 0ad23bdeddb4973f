package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"rocketfood/pkg/resp"
	"rocketfood/services"
)

type AuthController struct {
	Service *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Service: s}
}

type registerReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	user, err := ctl.Service.Register(req.Name, req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "email": user.Email})
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "Invalid or missing parameters")
		return
	}

	token, user, err := ctl.Service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrBadCredentials) {
			resp.Unauthorized(c, "Authentication failed. Please check your credentials.")
			return
		}
		resp.Error(c, err)
		return
	}

	resp.OK(c, gin.H{
		"access_token": token,
		"user_id":      user.ID,
		"email":        user.Email,
	})
}
