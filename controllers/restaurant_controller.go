package controllers

import (
	"strconv"

	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/gin-gonic/gin"
)

// RestaurantController is the public catalog surface browsed by the
// customer app.
type RestaurantController struct {
	Catalog *services.CatalogService
}

func NewRestaurantController(catalog *services.CatalogService) *RestaurantController {
	return &RestaurantController{Catalog: catalog}
}

// GET /restaurants?cuisine=&search=
func (rc *RestaurantController) List(c *gin.Context) {
	restaurants, err := rc.Catalog.ListRestaurants(c.Request.Context(), c.Query("cuisine"), c.Query("search"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": restaurants, "count": len(restaurants)})
}

// GET /restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	rest, err := rc.Catalog.GetRestaurant(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, rest)
}

// GET /restaurants/:id/menu
func (rc *RestaurantController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	items, err := rc.Catalog.MenuForRestaurant(c.Request.Context(), uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "count": len(items)})
}
