package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string  `json:"name"`
	Email       string  `gorm:"uniqueIndex;not null" json:"email"`
	Password    string  `json:"-"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	CuisineType string  `json:"cuisineType"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"`
	IsOpen      bool    `gorm:"default:true" json:"isOpen"`

	MenuItems []MenuItem `json:"-"`
	Orders    []Order    `json:"-"`
}
