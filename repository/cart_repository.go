package repository

import (
	"errors"

	"github.com/MilindByte/food-delivery-app-test/entity"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// CartLine is a cart row joined with the live menu price and the
// owning restaurant. Order assembly freezes Price from here.
type CartLine struct {
	CartItemID   uint            `json:"cartItemId"`
	MenuItemID   uint            `json:"menuItemId"`
	MenuName     string          `json:"menuName"`
	IsVeg        bool            `json:"isVeg"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	RestaurantID uint            `json:"restaurantId"`
}

// LinesWithPrices reads the user's cart in insertion order. Pass the
// open transaction when the read must be consistent with later writes.
func (r *CartRepository) LinesWithPrices(tx *gorm.DB, userID uint) ([]CartLine, error) {
	if tx == nil {
		tx = r.DB
	}
	var lines []CartLine
	err := tx.Table("cart_items AS c").
		Select("c.id AS cart_item_id, c.menu_item_id, m.name AS menu_name, m.is_veg, c.quantity, m.price, m.restaurant_id").
		Joins("JOIN menu_items m ON m.id = c.menu_item_id AND m.deleted_at IS NULL").
		Where("c.user_id = ? AND c.deleted_at IS NULL", userID).
		Order("c.created_at ASC, c.id ASC").
		Scan(&lines).Error
	return lines, err
}

// AddItem merges quantity into an existing line for the same menu item,
// otherwise inserts a new one. Returns true when a new line was created.
func (r *CartRepository) AddItem(userID, menuItemID uint, qty int) (bool, error) {
	var exist entity.CartItem
	err := r.DB.Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		First(&exist).Error
	if err == nil {
		return false, r.DB.Model(&exist).Update("quantity", exist.Quantity+qty).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	item := entity.CartItem{UserID: userID, MenuItemID: menuItemID, Quantity: qty}
	return true, r.DB.Create(&item).Error
}

func (r *CartRepository) UpdateQuantity(userID, cartItemID uint, qty int) (int64, error) {
	res := r.DB.Model(&entity.CartItem{}).
		Where("id = ? AND user_id = ?", cartItemID, userID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

func (r *CartRepository) RemoveItem(userID, cartItemID uint) (int64, error) {
	res := r.DB.Where("id = ? AND user_id = ?", cartItemID, userID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID uint) error {
	if tx == nil {
		tx = r.DB
	}
	return tx.Where("user_id = ?", userID).Delete(&entity.CartItem{}).Error
}
