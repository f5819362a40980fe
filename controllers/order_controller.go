package controllers

import (
	"strconv"

	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/MilindByte/food-delivery-app-test/utils"
	"github.com/gin-gonic/gin"
)

// OrderController is the customer side of the order lifecycle:
// checkout and reads of own orders.
type OrderController struct {
	Orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{Orders: orders}
}

type placeOrderReq struct {
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	PaymentMethod   string `json:"paymentMethod" binding:"required"`
}

// POST /orders
func (oc *OrderController) Place(c *gin.Context) {
	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	result, err := oc.Orders.PlaceOrder(utils.CurrentUserID(c), req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.Created(c, result)
}

// GET /orders
func (oc *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := oc.Orders.ListForUser(utils.CurrentUserID(c), limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}

// GET /orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Orders.DetailForUser(utils.CurrentUserID(c), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, detail)
}
