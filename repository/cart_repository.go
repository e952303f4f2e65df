package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// GetOrCreate returns the user's cart, creating an empty one on first access.
func (r *CartRepository) GetOrCreate(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// GetWithItems returns the cart without creating one, or ErrRecordNotFound.
func (r *CartRepository) GetWithItems(userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.MenuItem").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// FindLine returns an existing (cart, menu item) line, or ErrRecordNotFound.
func (r *CartRepository) FindLine(cartID, menuItemID uint) (*entity.CartItem, error) {
	var line entity.CartItem
	err := r.DB.Where("cart_id = ? AND menu_item_id = ?", cartID, menuItemID).
		First(&line).Error
	if err != nil {
		return nil, err
	}
	return &line, nil
}

func (r *CartRepository) CreateItem(line *entity.CartItem) error {
	return r.DB.Create(line).Error
}

func (r *CartRepository) SaveItem(line *entity.CartItem) error {
	return r.DB.Save(line).Error
}

// UpdateQuantity replaces the quantity of a line owned by the user's cart.
// Returns rows affected so the caller can distinguish a miss.
func (r *CartRepository) UpdateQuantity(userID, itemID uint, qty int) (int64, error) {
	res := r.DB.Model(&entity.CartItem{}).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Update("quantity", qty)
	return res.RowsAffected, res.Error
}

// RemoveItem deletes a line owned by the user's cart. Lines are scratch data
// and are removed for real, keeping the (cart, menu item) unique index clean.
func (r *CartRepository) RemoveItem(userID, itemID uint) (int64, error) {
	res := r.DB.Unscoped().
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}

// ClearItems empties the cart's item set inside tx. The cart row survives.
func (r *CartRepository) ClearItems(tx *gorm.DB, cartID uint) error {
	return tx.Unscoped().Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error
}
