package repository

import (
	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) Create(m *entity.MenuItem) error {
	return r.DB.Create(m).Error
}

func (r *MenuRepository) Save(m *entity.MenuItem) error {
	return r.DB.Save(m).Error
}

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.MenuItem{}, id).Error
}

func (r *MenuRepository) GetByID(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetAvailable loads a menu item only if it is currently orderable.
func (r *MenuRepository) GetAvailable(id uint) (*entity.MenuItem, error) {
	var m entity.MenuItem
	if err := r.DB.Where("id = ? AND is_available = ?", id, true).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns menu items, optionally filtered by restaurant.
func (r *MenuRepository) List(restaurantID uint) ([]entity.MenuItem, error) {
	q := r.DB.Order("id DESC")
	if restaurantID != 0 {
		q = q.Where("restaurant_id = ?", restaurantID)
	}
	var out []entity.MenuItem
	err := q.Find(&out).Error
	return out, err
}

// ListAvailableForRestaurant is the public restaurant menu view.
func (r *MenuRepository) ListAvailableForRestaurant(restaurantID uint) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	err := r.DB.Where("restaurant_id = ? AND is_available = ?", restaurantID, true).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *MenuRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *MenuRepository) CreateCategory(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}
