package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	CartRepo *repository.CartRepository
	RestRepo *repository.RestaurantRepository
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	restRepo *repository.RestaurantRepository,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, CartRepo: cartRepo, RestRepo: restRepo}
}

type CreateOrderReq struct {
	PaymentMethod   entity.PaymentMethod `json:"paymentMethod" binding:"required"`
	DeliveryAddress string               `json:"deliveryAddress" binding:"required"`
	Notes           string               `json:"notes"`
}

// CreateFromCart converts the user's cart into an order in one transaction:
// order + items are written and the cart's items deleted, or none of it is.
func (s *OrderService) CreateFromCart(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if !req.PaymentMethod.Valid() {
		return nil, apperr.InvalidInput("payment method must be cod or online")
	}
	if req.DeliveryAddress == "" {
		return nil, apperr.InvalidInput("delivery address is required")
	}

	cart, err := s.CartRepo.GetWithItems(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.EmptyCart("cart is empty")
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperr.EmptyCart("cart is empty")
	}

	restaurantID := cart.Items[0].MenuItem.RestaurantID
	for _, it := range cart.Items {
		if it.MenuItem.RestaurantID != restaurantID {
			return nil, apperr.MixedRestaurant("all items must be from the same restaurant")
		}
	}

	order := entity.Order{
		UserID:          userID,
		RestaurantID:    restaurantID,
		TotalAmount:     cart.Total(),
		PaymentMethod:   req.PaymentMethod,
		Status:          entity.StatusPlaced,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for _, it := range cart.Items {
			oi := entity.OrderItem{
				OrderID:    order.ID,
				MenuItemID: it.MenuItemID,
				Quantity:   it.Quantity,
				Price:      it.PriceSnapshot,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
			order.Items = append(order.Items, oi)
		}
		return s.CartRepo.ClearItems(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// ListFor applies the role visibility filter: customers see their own orders,
// owners their restaurants', agents their assignments, admins everything.
func (s *OrderService) ListFor(user *entity.User) ([]entity.Order, error) {
	switch user.Role {
	case entity.RoleCustomer:
		return s.Repo.ListForUser(user.ID)
	case entity.RoleOwner:
		return s.Repo.ListForOwner(user.ID)
	case entity.RoleAgent:
		return s.Repo.ListForAgent(user.ID)
	case entity.RoleAdmin:
		return s.Repo.ListAll()
	}
	return []entity.Order{}, nil
}

// GetFor loads one order if the user's role visibility covers it.
func (s *OrderService) GetFor(user *entity.User, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	switch user.Role {
	case entity.RoleAdmin:
		return o, nil
	case entity.RoleCustomer:
		if o.UserID == user.ID {
			return o, nil
		}
	case entity.RoleOwner:
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, user.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			return o, nil
		}
	case entity.RoleAgent:
		if o.AssignedAgentID != nil && *o.AssignedAgentID == user.ID {
			return o, nil
		}
	}
	return nil, apperr.NotFound("order not found")
}

// UpdateStatus sets an order's status on behalf of an owner or admin. Owners
// must own the order's restaurant; terminal orders refuse further updates.
func (s *OrderService) UpdateStatus(actor *entity.User, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperr.InvalidStatus("invalid status: " + status.String())
	}

	o, err := s.Repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	switch actor.Role {
	case entity.RoleAdmin:
	case entity.RoleOwner:
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, actor.ID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.Forbidden("you do not own this order's restaurant")
		}
	default:
		return nil, apperr.Forbidden("only owners and admins may update order status")
	}

	rows, err := s.Repo.UpdateStatusGuard(o.ID, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// report the status the guard actually saw, not the pre-update read
		cur, rerr := s.Repo.GetByID(o.ID)
		if rerr != nil {
			return nil, apperr.InvalidStatus("order is in a terminal state")
		}
		return nil, apperr.InvalidStatus("order is already " + cur.Status.String())
	}
	o.Status = status
	return o, nil
}
