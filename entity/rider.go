package entity

import (
	"gorm.io/gorm"
)

type Rider struct {
	gorm.Model
	Name          string `json:"name"`
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	Password      string `json:"-"`
	Phone         string `json:"phone"`
	VehicleNumber string `json:"vehicleNumber"`
	IsAvailable   bool   `gorm:"default:true" json:"isAvailable"`

	// lifetime counter, bumped on every delivered transition
	TotalDeliveries int64 `json:"totalDeliveries"`

	Orders []Order `json:"-"`
}
