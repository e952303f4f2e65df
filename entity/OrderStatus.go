package entity

// OrderStatus is the order state machine's closed value set:
// placed → accepted → cooking → out_for_delivery → delivered, with cancelled
// reachable from any non-terminal state.
type OrderStatus string

const (
	StatusPlaced         OrderStatus = "placed"
	StatusAccepted       OrderStatus = "accepted"
	StatusCooking        OrderStatus = "cooking"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusAccepted, StatusCooking,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal statuses accept no further updates.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// AgentSettable reports whether a delivery agent may set this status.
func (s OrderStatus) AgentSettable() bool {
	return s == StatusOutForDelivery || s == StatusDelivered
}

func (s OrderStatus) String() string { return string(s) }

// ClaimableStatuses is the pool an unassigned order must be in for an agent
// to pick it up.
var ClaimableStatuses = []OrderStatus{StatusAccepted, StatusCooking, StatusOutForDelivery}
