package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem freezes the menu price at order time; later menu price
// changes never touch it.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `gorm:"type:numeric" json:"price"`
}
