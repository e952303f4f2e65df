package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

// DeliveryService is the agents' restricted view over orders: their
// assignments, the claimable pool, first-wins claims, and the two statuses
// agents may set.
type DeliveryService struct {
	Repo *repository.OrderRepository
}

func NewDeliveryService(repo *repository.OrderRepository) *DeliveryService {
	return &DeliveryService{Repo: repo}
}

func (s *DeliveryService) ListAssigned(agentID uint) ([]entity.Order, error) {
	return s.Repo.ListForAgent(agentID)
}

func (s *DeliveryService) ListAvailable() ([]entity.Order, error) {
	return s.Repo.ListClaimable()
}

// Accept claims an unassigned order for the agent. The claim is a guarded
// UPDATE against a null assignment, so two concurrent accepts cannot both win.
func (s *DeliveryService) Accept(agentID, orderID uint) (*entity.Order, error) {
	if _, err := s.Repo.GetByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found")
		}
		return nil, err
	}

	rows, err := s.Repo.Claim(orderID, agentID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, apperr.AlreadyAssigned("order already assigned to an agent")
	}
	return s.Repo.GetByID(orderID)
}

// UpdateDeliveryStatus moves the agent's own assignment to out_for_delivery
// or delivered.
func (s *DeliveryService) UpdateDeliveryStatus(agentID, orderID uint, status entity.OrderStatus) (*entity.Order, error) {
	o, err := s.Repo.GetForAgent(orderID, agentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("order not found or not assigned to you")
		}
		return nil, err
	}

	if !status.AgentSettable() {
		return nil, apperr.InvalidStatus("agents can only set: out_for_delivery, delivered")
	}

	rows, err := s.Repo.UpdateStatusForAgent(o.ID, agentID, status)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// assignment checked above, so a miss means the order went terminal
		cur, rerr := s.Repo.GetForAgent(o.ID, agentID)
		if rerr != nil {
			return nil, apperr.NotFound("order not found or not assigned to you")
		}
		return nil, apperr.InvalidStatus("order is already " + cur.Status.String())
	}
	o.Status = status
	return o, nil
}
