package services

import (
	"testing"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
)

func TestAcceptUnknownOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newDeliveryService(db)
	agent := seedUser(t, db, entity.RoleAgent)

	if _, err := svc.Accept(agent.ID, 9999); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("got %v, want NotFound", err)
	}
}

func TestAcceptFirstClaimWins(t *testing.T) {
	db := newTestDB(t)
	svc := newDeliveryService(db)

	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	agentA := seedUser(t, db, entity.RoleAgent)
	agentB := seedUser(t, db, entity.RoleAgent)
	rest := seedRestaurant(t, db, owner)
	order := placeOrder(t, db, customer, rest)

	claimed, err := svc.Accept(agentA.ID, order.ID)
	if err != nil {
		t.Fatalf("first claim: %v", err)
	}
	if claimed.AssignedAgentID == nil || *claimed.AssignedAgentID != agentA.ID {
		t.Fatal("claim did not assign agent A")
	}

	// the losing claim observes AlreadyAssigned; the assignment keeps its
	// first winner. The claim itself is a single guarded UPDATE against a
	// null assignment, so an interleaved pair can never both pass the guard.
	if _, err := svc.Accept(agentB.ID, order.ID); !apperr.Is(err, apperr.KindAlreadyAssigned) {
		t.Fatalf("second claim: got %v, want AlreadyAssigned", err)
	}

	// re-accept by the winner is also refused
	if _, err := svc.Accept(agentA.ID, order.ID); !apperr.Is(err, apperr.KindAlreadyAssigned) {
		t.Fatalf("re-claim: got %v, want AlreadyAssigned", err)
	}

	var got entity.Order
	if err := db.First(&got, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.AssignedAgentID == nil || *got.AssignedAgentID != agentA.ID {
		t.Fatal("assignment changed after losing claims")
	}
}

func TestListAvailablePool(t *testing.T) {
	db := newTestDB(t)
	svc := newDeliveryService(db)
	orderSvc := newOrderService(db)

	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	agent := seedUser(t, db, entity.RoleAgent)
	admin := seedUser(t, db, entity.RoleAdmin)
	rest := seedRestaurant(t, db, owner)

	placed := placeOrder(t, db, customer, rest)
	accepted := placeOrder(t, db, customer, rest)
	claimedOrder := placeOrder(t, db, customer, rest)

	if _, err := orderSvc.UpdateStatus(admin, accepted.ID, entity.StatusAccepted); err != nil {
		t.Fatal(err)
	}
	if _, err := orderSvc.UpdateStatus(admin, claimedOrder.ID, entity.StatusCooking); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Accept(agent.ID, claimedOrder.ID); err != nil {
		t.Fatal(err)
	}

	pool, err := svc.ListAvailable()
	if err != nil {
		t.Fatal(err)
	}
	if len(pool) != 1 || pool[0].ID != accepted.ID {
		t.Fatalf("pool = %v, want just the unassigned accepted order", ids(pool))
	}
	// placed orders are not claimable yet
	for _, o := range pool {
		if o.ID == placed.ID {
			t.Fatal("placed order must not be claimable")
		}
	}

	mine, err := svc.ListAssigned(agent.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 1 || mine[0].ID != claimedOrder.ID {
		t.Fatalf("assigned = %v, want the claimed order", ids(mine))
	}
}

func TestUpdateDeliveryStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newDeliveryService(db)

	customer := seedUser(t, db, entity.RoleCustomer)
	owner := seedUser(t, db, entity.RoleOwner)
	agent := seedUser(t, db, entity.RoleAgent)
	stranger := seedUser(t, db, entity.RoleAgent)
	rest := seedRestaurant(t, db, owner)
	order := placeOrder(t, db, customer, rest)

	// not assigned to anyone yet: NotFound even though the order exists
	if _, err := svc.UpdateDeliveryStatus(agent.ID, order.ID, entity.StatusDelivered); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("unassigned: got %v, want NotFound", err)
	}

	if _, err := svc.Accept(agent.ID, order.ID); err != nil {
		t.Fatal(err)
	}

	// someone else's assignment stays invisible
	if _, err := svc.UpdateDeliveryStatus(stranger.ID, order.ID, entity.StatusDelivered); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("stranger: got %v, want NotFound", err)
	}

	// agents cannot set kitchen statuses
	if _, err := svc.UpdateDeliveryStatus(agent.ID, order.ID, entity.StatusCooking); !apperr.Is(err, apperr.KindInvalidStatus) {
		t.Fatalf("cooking: got %v, want InvalidStatus", err)
	}

	out, err := svc.UpdateDeliveryStatus(agent.ID, order.ID, entity.StatusOutForDelivery)
	if err != nil {
		t.Fatalf("out_for_delivery: %v", err)
	}
	if out.Status != entity.StatusOutForDelivery {
		t.Fatalf("status = %s, want out_for_delivery", out.Status)
	}

	done, err := svc.UpdateDeliveryStatus(agent.ID, order.ID, entity.StatusDelivered)
	if err != nil {
		t.Fatalf("delivered: %v", err)
	}
	if done.Status != entity.StatusDelivered {
		t.Fatalf("status = %s, want delivered", done.Status)
	}

	// delivered is terminal even for the assigned agent
	if _, err := svc.UpdateDeliveryStatus(agent.ID, order.ID, entity.StatusOutForDelivery); !apperr.Is(err, apperr.KindInvalidStatus) {
		t.Fatalf("reopen delivered: got %v, want InvalidStatus", err)
	}
	var stored entity.Order
	if err := db.First(&stored, order.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.Status != entity.StatusDelivered {
		t.Fatalf("stored status = %s, want delivered", stored.Status)
	}
}

func ids(orders []entity.Order) []uint {
	out := make([]uint, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
