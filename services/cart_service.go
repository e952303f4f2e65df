package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

type CartService struct {
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{CartRepo: cr, MenuRepo: mr}
}

// CartView is a cart plus its totals, recomputed on every read.
type CartView struct {
	Cart     *entity.Cart `json:"cart"`
	Subtotal entity.Money `json:"subtotal"`
	Tax      entity.Money `json:"tax"`
	Total    entity.Money `json:"total"`
}

func view(c *entity.Cart) *CartView {
	return &CartView{Cart: c, Subtotal: c.Subtotal(), Tax: c.Tax(), Total: c.Total()}
}

// Get returns the user's cart, creating an empty one on first access.
func (s *CartService) Get(userID uint) (*CartView, error) {
	c, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	return view(c), nil
}

// Add puts quantity units of a menu item into the cart. An existing line for
// the same item gains quantity; its price snapshot stays as first captured.
func (s *CartService) Add(userID, menuItemID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, apperr.InvalidInput("quantity must be at least 1")
	}

	item, err := s.MenuRepo.GetAvailable(menuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found or unavailable")
		}
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	line, err := s.CartRepo.FindLine(cart.ID, item.ID)
	switch {
	case err == nil:
		line.Quantity += quantity
		if err := s.CartRepo.SaveItem(line); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		line = &entity.CartItem{
			CartID:        cart.ID,
			MenuItemID:    item.ID,
			Quantity:      quantity,
			PriceSnapshot: item.Price,
		}
		if err := s.CartRepo.CreateItem(line); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.Get(userID)
}

// Remove deletes a cart line owned by the user.
func (s *CartService) Remove(userID, cartItemID uint) (*CartView, error) {
	rows, err := s.CartRepo.RemoveItem(userID, cartItemID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.NotFound("cart item not found")
	}
	return s.Get(userID)
}

// UpdateQuantity replaces a line's quantity. Quantities below 1 are rejected;
// removal has its own endpoint.
func (s *CartService) UpdateQuantity(userID, cartItemID uint, quantity int) (*CartView, error) {
	if quantity < 1 {
		return nil, apperr.InvalidInput("quantity must be at least 1")
	}
	rows, err := s.CartRepo.UpdateQuantity(userID, cartItemID, quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.NotFound("cart item not found")
	}
	return s.Get(userID)
}
