package services

import (
	"testing"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

func TestReviewRatingRollup(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, repository.NewReviewRepository(db), repository.NewRestaurantRepository(db))

	owner := seedUser(t, db, entity.RoleOwner)
	alice := seedUser(t, db, entity.RoleCustomer)
	bob := seedUser(t, db, entity.RoleCustomer)
	rest := seedRestaurant(t, db, owner)

	if _, err := svc.Create(alice.ID, rest.ID, 5, "great"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(bob.ID, rest.ID, 2, "meh"); err != nil {
		t.Fatal(err)
	}

	var got entity.Restaurant
	if err := db.First(&got, rest.ID).Error; err != nil {
		t.Fatal(err)
	}
	if got.Rating != 3.5 {
		t.Fatalf("rating = %v, want 3.5", got.Rating)
	}
}

func TestReviewRejections(t *testing.T) {
	db := newTestDB(t)
	svc := NewReviewService(db, repository.NewReviewRepository(db), repository.NewRestaurantRepository(db))

	owner := seedUser(t, db, entity.RoleOwner)
	user := seedUser(t, db, entity.RoleCustomer)
	rest := seedRestaurant(t, db, owner)

	if _, err := svc.Create(user.ID, rest.ID, 6, ""); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("rating 6: got %v, want InvalidInput", err)
	}
	if _, err := svc.Create(user.ID, 9999, 4, ""); !apperr.Is(err, apperr.KindNotFound) {
		t.Fatalf("missing restaurant: got %v, want NotFound", err)
	}

	if _, err := svc.Create(user.ID, rest.ID, 4, "ok"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(user.ID, rest.ID, 5, "again"); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("duplicate review: got %v, want Conflict", err)
	}
}
