package repository

import (
	"github.com/MilindByte/food-delivery-app-test/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) FindByEmail(email string) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Where("email = ?", email).First(&rest).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

// List returns open-for-listing restaurants, optionally filtered by
// cuisine or a name search.
func (r *RestaurantRepository) List(cuisine, search string) ([]entity.Restaurant, error) {
	q := r.DB.Model(&entity.Restaurant{})
	if cuisine != "" {
		q = q.Where("cuisine_type = ?", cuisine)
	}
	if search != "" {
		q = q.Where("name LIKE ?", "%"+search+"%")
	}

	var out []entity.Restaurant
	err := q.Order("rating DESC, name ASC").Find(&out).Error
	return out, err
}
