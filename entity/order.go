package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is an immutable snapshot of a checkout. RestaurantID is fixed at
// creation; TotalAmount is frozen from the cart prices and never
// recomputed. Only Status and RiderID change afterwards, and RiderID is
// set at most once.
type Order struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	RiderID *uint  `gorm:"index" json:"riderId"`
	Rider   *Rider `json:"-"`

	TotalAmount decimal.Decimal `gorm:"type:numeric" json:"totalAmount"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric" json:"deliveryFee"`

	DeliveryAddress string      `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          OrderStatus `gorm:"type:varchar(20);index" json:"status"`

	Items []OrderItem `json:"-"`
}
