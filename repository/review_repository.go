package repository

import (
	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

type ReviewRepository struct{ DB *gorm.DB }

func NewReviewRepository(db *gorm.DB) *ReviewRepository { return &ReviewRepository{DB: db} }

func (r *ReviewRepository) Create(tx *gorm.DB, rev *entity.Review) error {
	return tx.Create(rev).Error
}

func (r *ReviewRepository) ListForRestaurant(restID uint) ([]entity.Review, error) {
	var out []entity.Review
	err := r.DB.Where("restaurant_id = ?", restID).Order("id DESC").Find(&out).Error
	return out, err
}

func (r *ReviewRepository) ExistsForUser(restID, userID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Review{}).
		Where("restaurant_id = ? AND user_id = ?", restID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}

// AverageRating computes the mean review rating within tx.
func (r *ReviewRepository) AverageRating(tx *gorm.DB, restID uint) (float64, error) {
	var row struct{ Avg float64 }
	err := tx.Model(&entity.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg").
		Where("restaurant_id = ?", restID).
		Scan(&row).Error
	return row.Avg, err
}
