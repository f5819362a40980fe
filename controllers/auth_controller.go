package controllers

import (
	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ===== customers =====

type registerUserReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req registerUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Auth.RegisterUser(req.Name, req.Email, req.Password, req.Phone, req.Address)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, user)
}

func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Auth.LoginUser(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.Auth.UserProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// ===== restaurants =====

type registerRestaurantReq struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone" binding:"required"`
	Address     string `json:"address" binding:"required"`
	CuisineType string `json:"cuisineType"`
}

func (ac *AuthController) RegisterRestaurant(c *gin.Context) {
	var req registerRestaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rest, err := ac.Auth.RegisterRestaurant(req.Name, req.Email, req.Password, req.Phone, req.Address, req.CuisineType)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, rest)
}

func (ac *AuthController) LoginRestaurant(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, rest, err := ac.Auth.LoginRestaurant(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "restaurant": rest})
}

// ===== riders =====

type registerRiderReq struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Phone         string `json:"phone" binding:"required"`
	VehicleNumber string `json:"vehicleNumber"`
}

func (ac *AuthController) RegisterRider(c *gin.Context) {
	var req registerRiderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rider, err := ac.Auth.RegisterRider(req.Name, req.Email, req.Password, req.Phone, req.VehicleNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, rider)
}

func (ac *AuthController) LoginRider(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, rider, err := ac.Auth.LoginRider(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "rider": rider})
}

func (ac *AuthController) RiderMe(c *gin.Context) {
	rider, err := ac.Auth.RiderProfile(utils.CurrentRiderID(c))
	if err != nil {
		resp.NotFound(c, "rider not found")
		return
	}
	resp.OK(c, rider)
}
