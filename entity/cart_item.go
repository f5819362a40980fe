package entity

import (
	"gorm.io/gorm"
)

// CartItem is one pending-order line. One row per (user, menu item);
// re-adding the same item merges into the existing row's quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"index" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity int `json:"quantity"`
}
