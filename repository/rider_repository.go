package repository

import (
	"github.com/MilindByte/food-delivery-app-test/entity"
	"gorm.io/gorm"
)

type RiderRepository struct{ DB *gorm.DB }

func NewRiderRepository(db *gorm.DB) *RiderRepository { return &RiderRepository{DB: db} }

func (r *RiderRepository) FindByEmail(email string) (*entity.Rider, error) {
	var rd entity.Rider
	if err := r.DB.Where("email = ?", email).First(&rd).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *RiderRepository) FindByID(id uint) (*entity.Rider, error) {
	var rd entity.Rider
	if err := r.DB.First(&rd, id).Error; err != nil {
		return nil, err
	}
	return &rd, nil
}

func (r *RiderRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.Rider{}).Where("email = ?", email).Count(&count).Error
	return count, err
}

func (r *RiderRepository) Create(rd *entity.Rider) error {
	return r.DB.Create(rd).Error
}

// IncrementDeliveries bumps the lifetime counter; called once per
// delivered transition, in the same transaction as the status update.
func (r *RiderRepository) IncrementDeliveries(tx *gorm.DB, riderID uint) error {
	return tx.Model(&entity.Rider{}).Where("id = ?", riderID).
		UpdateColumn("total_deliveries", gorm.Expr("total_deliveries + 1")).Error
}
