package repository

import (
	"github.com/MilindByte/food-delivery-app-test/entity"
	"gorm.io/gorm"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) FindByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// ListForRestaurant returns the public menu; unavailable items are
// kept out unless includeUnavailable (the owner panel wants them).
func (r *MenuRepository) ListForRestaurant(restaurantID uint, includeUnavailable bool) ([]entity.MenuItem, error) {
	q := r.DB.Where("restaurant_id = ?", restaurantID)
	if !includeUnavailable {
		q = q.Where("is_available = ?", true)
	}

	var items []entity.MenuItem
	err := q.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

// UpdateOwned updates a menu item only when it belongs to the
// restaurant; RowsAffected 0 means not found or not owned.
func (r *MenuRepository) UpdateOwned(restaurantID, menuItemID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.MenuItem{}).
		Where("id = ? AND restaurant_id = ?", menuItemID, restaurantID).
		Updates(updates)
	return res.RowsAffected, res.Error
}
