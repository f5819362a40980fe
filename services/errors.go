package services

import (
	"errors"
	"fmt"

	"github.com/MilindByte/food-delivery-app-test/entity"
)

// Errors surfaced by the services. Controllers map them onto status
// codes: validation/transition -> 400, not-found/ownership -> 404,
// conflicts -> 409; anything else is a store failure (500).
var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMixedRestaurant = errors.New("all items must be from the same restaurant")

	ErrOrderNotFound   = errors.New("order not found")
	ErrAlreadyAssigned = errors.New("order already assigned to another rider")
	ErrNotAvailable    = errors.New("order is not available for pickup")
	ErrInvalidStatus   = errors.New("invalid status")

	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrRestaurantNotFound = errors.New("restaurant not found")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// TransitionError reports an illegal status change with both ends, so
// the caller sees exactly which move was refused.
type TransitionError struct {
	From entity.OrderStatus
	To   entity.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: cannot change from '%s' to '%s'", e.From, e.To)
}
