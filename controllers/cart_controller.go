package controllers

import (
	"strconv"

	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	Cart *services.CartService
}

func NewCartController(cart *services.CartService) *CartController {
	return &CartController{Cart: cart}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	view, err := cc.Cart.Get(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, view)
}

type addCartItemReq struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

// POST /cart
func (cc *CartController) Add(c *gin.Context) {
	var req addCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	created, err := cc.Cart.Add(utils.CurrentUserID(c), req.MenuItemID, req.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	action := "updated"
	if created {
		action = "added"
	}
	resp.OK(c, gin.H{"action": action})
}

type updateCartItemReq struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PUT /cart/:id
func (cc *CartController) UpdateQuantity(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req updateCartItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := cc.Cart.UpdateQuantity(utils.CurrentUserID(c), uint(id), req.Quantity); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/:id
func (cc *CartController) Remove(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := cc.Cart.Remove(utils.CurrentUserID(c), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	if err := cc.Cart.Clear(utils.CurrentUserID(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
