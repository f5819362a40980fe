package controllers

import (
	"errors"

	"github.com/MilindByte/food-delivery-app-test/pkg/resp"
	"github.com/MilindByte/food-delivery-app-test/services"
	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto the HTTP surface:
// validation and illegal transitions are 400, missing or not-owned
// entities 404, assignment races 409. Anything unrecognized is a store
// failure.
func respondServiceError(c *gin.Context, err error) {
	var te *services.TransitionError
	switch {
	case errors.As(err, &te):
		resp.BadRequest(c, te.Error())
	case errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMixedRestaurant),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrNotAvailable),
		errors.Is(err, services.ErrMenuItemUnavailable):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCartItemNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrRestaurantNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyAssigned),
		errors.Is(err, services.ErrEmailTaken):
		resp.Conflict(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		resp.Unauthorized(c, err.Error())
	default:
		resp.ServerError(c, err)
	}
}
