package controllers

import (
	"strconv"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"github.com/gin-gonic/gin"
)

// RestaurantOrderController is the restaurant panel's order queue and
// its side of the status machine.
type RestaurantOrderController struct {
	Orders *services.OrderService
}

func NewRestaurantOrderController(orders *services.OrderService) *RestaurantOrderController {
	return &RestaurantOrderController{Orders: orders}
}

// GET /restaurant/orders?status=
func (rc *RestaurantOrderController) List(c *gin.Context) {
	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "invalid status filter")
			return
		}
		status = &st
	}

	items, err := rc.Orders.ListForRestaurant(utils.CurrentRestaurantID(c), status)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// GET /restaurant/orders/:id
func (rc *RestaurantOrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := rc.Orders.DetailForRestaurant(utils.CurrentRestaurantID(c), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// PUT /restaurant/orders/:id/status
func (rc *RestaurantOrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := rc.Orders.RestaurantSetStatus(utils.CurrentRestaurantID(c), uint(id), entity.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}
