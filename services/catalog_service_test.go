package services

import (
	"testing"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

// An explicit false on create must survive the insert; a column default
// would swallow it.
func TestCreateRestaurantInactive(t *testing.T) {
	db := newTestDB(t)
	svc := newRestaurantService(db)
	owner := seedUser(t, db, entity.RoleOwner)

	inactive := false
	created, err := svc.Create(owner.ID, &RestaurantIn{
		Name:     "Closed For Now",
		Address:  "2 Shut St",
		IsActive: &inactive,
	})
	if err != nil {
		t.Fatal(err)
	}

	var stored entity.Restaurant
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.IsActive {
		t.Fatal("restaurant created inactive but stored active")
	}

	listed, err := svc.List()
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range listed {
		if r.ID == created.ID {
			t.Fatal("inactive restaurant shows in the public list")
		}
	}
}

func TestCreateMenuItemUnavailable(t *testing.T) {
	db := newTestDB(t)
	svc := newMenuService(db)
	owner := seedUser(t, db, entity.RoleOwner)
	rest := seedRestaurant(t, db, owner)

	price, err := entity.NewMoneyFromString("75.00")
	if err != nil {
		t.Fatal(err)
	}
	unavailable := false
	created, err := svc.Create(owner, &MenuItemIn{
		RestaurantID: rest.ID,
		Name:         "Secret Dish",
		Price:        price,
		IsAvailable:  &unavailable,
	})
	if err != nil {
		t.Fatal(err)
	}

	var stored entity.MenuItem
	if err := db.First(&stored, created.ID).Error; err != nil {
		t.Fatal(err)
	}
	if stored.IsAvailable {
		t.Fatal("menu item created unavailable but stored available")
	}

	menu, err := newRestaurantService(db).Menu(rest.ID)
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range menu {
		if m.ID == created.ID {
			t.Fatal("unavailable item shows on the public menu")
		}
	}

	// omitted flag still means available
	available, err := svc.Create(owner, &MenuItemIn{
		RestaurantID: rest.ID,
		Name:         "House Special",
		Price:        price,
	})
	if err != nil {
		t.Fatal(err)
	}
	var storedDefault entity.MenuItem
	if err := db.First(&storedDefault, available.ID).Error; err != nil {
		t.Fatal(err)
	}
	if !storedDefault.IsAvailable {
		t.Fatal("menu item created without a flag should default to available")
	}
}
