package controllers

import (
	"strconv"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"github.com/gin-gonic/gin"
)

// RiderOrderController is the rider app's job board: available work,
// assigned deliveries, history and earnings.
type RiderOrderController struct {
	Orders *services.RiderOrderService
}

func NewRiderOrderController(orders *services.RiderOrderService) *RiderOrderController {
	return &RiderOrderController{Orders: orders}
}

// GET /rider/orders/available
func (rc *RiderOrderController) Available(c *gin.Context) {
	items, err := rc.Orders.ListAvailable()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// GET /rider/orders/assigned
func (rc *RiderOrderController) Assigned(c *gin.Context) {
	items, err := rc.Orders.ListAssigned(utils.CurrentRiderID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// GET /rider/orders/history
func (rc *RiderOrderController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := rc.Orders.History(utils.CurrentRiderID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// POST /rider/orders/:id/accept
func (rc *RiderOrderController) Accept(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := rc.Orders.AcceptOrder(utils.CurrentRiderID(c), uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"accepted": true})
}

// PUT /rider/orders/:id/status
func (rc *RiderOrderController) SetStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := rc.Orders.SetStatus(utils.CurrentRiderID(c), uint(id), entity.OrderStatus(req.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": req.Status})
}

// GET /rider/earnings
func (rc *RiderOrderController) Earnings(c *gin.Context) {
	summary, err := rc.Orders.Earnings(utils.CurrentRiderID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"summary": summary})
}
