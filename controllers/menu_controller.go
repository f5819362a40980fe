package controllers

import (
	"strconv"

	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"github.com/gin-gonic/gin"
)

// MenuController is the owner panel's menu management.
type MenuController struct {
	Menu *services.MenuService
}

func NewMenuController(menu *services.MenuService) *MenuController {
	return &MenuController{Menu: menu}
}

// GET /restaurant/menu
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Menu.ListOwn(utils.CurrentRestaurantID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// POST /restaurant/menu
func (mc *MenuController) Create(c *gin.Context) {
	var req services.MenuItemInput
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := mc.Menu.Create(c.Request.Context(), utils.CurrentRestaurantID(c), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /restaurant/menu/:id
func (mc *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req services.MenuItemUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := mc.Menu.Update(c.Request.Context(), utils.CurrentRestaurantID(c), uint(id), &req); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}
