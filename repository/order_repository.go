package repository

import (
	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetByID(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ---------------- role-scoped listings ----------------

func (r *OrderRepository) ListForUser(userID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForOwner(ownerID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("restaurant_id IN (SELECT id FROM restaurants WHERE owner_id = ?)", ownerID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForAgent(agentID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("assigned_agent_id = ?", agentID).
		Order("id DESC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").Order("id DESC").Find(&out).Error
	return out, err
}

// ListClaimable returns unassigned orders in the claimable status pool.
func (r *OrderRepository) ListClaimable() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("assigned_agent_id IS NULL AND status IN ?", entity.ClaimableStatuses).
		Order("id DESC").Find(&out).Error
	return out, err
}

// ---------------- guarded mutations ----------------

// UpdateStatusGuard sets the status only while the order is non-terminal.
// Returns rows affected; 0 means the order was already terminal or missing.
func (r *OrderRepository) UpdateStatusGuard(orderID uint, status entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND status NOT IN ?", orderID,
			[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// Claim assigns the agent only if nobody holds the order. The single guarded
// UPDATE is the compare-and-set that keeps concurrent claims to one winner.
func (r *OrderRepository) Claim(orderID, agentID uint) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND assigned_agent_id IS NULL", orderID).
		Update("assigned_agent_id", agentID)
	return res.RowsAffected, res.Error
}

// GetForAgent loads an order only if it is assigned to this agent.
func (r *OrderRepository) GetForAgent(orderID, agentID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Where("id = ? AND assigned_agent_id = ?", orderID, agentID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusForAgent sets the status only on the agent's own assignment,
// and only while the order is non-terminal.
func (r *OrderRepository) UpdateStatusForAgent(orderID, agentID uint, status entity.OrderStatus) (int64, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("id = ? AND assigned_agent_id = ? AND status NOT IN ?", orderID, agentID,
			[]entity.OrderStatus{entity.StatusDelivered, entity.StatusCancelled}).
		Update("status", status)
	return res.RowsAffected, res.Error
}
