package repository

import (
	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

type RestaurantRepository struct{ DB *gorm.DB }

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.DB.Create(rest).Error
}

func (r *RestaurantRepository) Save(rest *entity.Restaurant) error {
	return r.DB.Save(rest).Error
}

func (r *RestaurantRepository) GetByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

// ListActive is the public storefront listing.
func (r *RestaurantRepository) ListActive() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Where("is_active = ?", true).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) ListAll() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id DESC").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) IsOwnedBy(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Restaurant{}).
		Where("id = ? AND owner_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// UpdateRating stores the rolled-up review average.
func (r *RestaurantRepository) UpdateRating(tx *gorm.DB, restID uint, rating float64) error {
	return tx.Model(&entity.Restaurant{}).Where("id = ?", restID).
		Update("rating", rating).Error
}
