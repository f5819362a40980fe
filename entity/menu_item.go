package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric" json:"price"`
	ImageURL    string          `json:"imageUrl"`
	IsVeg       bool            `json:"isVeg"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`

	RestaurantID uint       `gorm:"index" json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
