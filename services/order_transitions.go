package services

import (
	"github.com/MilindByte/food-delivery-app-test/entity"
)

// Two authorities move the same status field, each under its own table.
// Both transition functions are total: every (from, to) pair gets
// either nil or a typed error.

// restaurantTransitions is the restaurant-side adjacency table.
// ready -> on_the_way is deliberately absent: only a rider moves an
// order out the door. delivered and cancelled are terminal for everyone.
var restaurantTransitions = map[entity.OrderStatus][]entity.OrderStatus{
	entity.StatusPending:   {entity.StatusConfirmed, entity.StatusCancelled},
	entity.StatusConfirmed: {entity.StatusPreparing, entity.StatusCancelled},
	entity.StatusPreparing: {entity.StatusReady, entity.StatusCancelled},
	entity.StatusReady:     {entity.StatusCancelled},
	entity.StatusOnTheWay:  {},
	entity.StatusDelivered: {},
	entity.StatusCancelled: {},
}

// restaurantSettable is the set of statuses a restaurant may name at
// all; on_the_way and delivered belong to the rider.
var restaurantSettable = map[entity.OrderStatus]bool{
	entity.StatusPending:   true,
	entity.StatusConfirmed: true,
	entity.StatusPreparing: true,
	entity.StatusReady:     true,
	entity.StatusCancelled: true,
}

// RestaurantTransition validates a restaurant-driven status change.
// Resubmitting the current status is an idempotent no-op success.
func RestaurantTransition(from, to entity.OrderStatus) error {
	if !restaurantSettable[to] {
		return ErrInvalidStatus
	}
	if from == to {
		return nil
	}
	for _, allowed := range restaurantTransitions[from] {
		if to == allowed {
			return nil
		}
	}
	return &TransitionError{From: from, To: to}
}

// riderSettable is every status a rider may write on an order assigned
// to them. There is no adjacency table on purpose: rider progression
// is only gated by ownership, matching the marketplace's behavior.
var riderSettable = map[entity.OrderStatus]bool{
	entity.StatusPreparing: true,
	entity.StatusReady:     true,
	entity.StatusOnTheWay:  true,
	entity.StatusDelivered: true,
}

// RiderTransition validates a rider-driven status change.
func RiderTransition(_, to entity.OrderStatus) error {
	if !riderSettable[to] {
		return ErrInvalidStatus
	}
	return nil
}

// acceptTarget is the status an order lands in when a rider accepts
// it: an order already ready stays ready, a confirmed one moves to
// preparing.
func acceptTarget(current entity.OrderStatus) (entity.OrderStatus, bool) {
	switch current {
	case entity.StatusReady:
		return entity.StatusReady, true
	case entity.StatusConfirmed:
		return entity.StatusPreparing, true
	default:
		return current, false
	}
}
