package services

import (
	"testing"
	"time"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

func newAuthService(t *testing.T) *AuthService {
	db := newTestDB(t)
	return NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)

	user, err := svc.Register("Ada", "ADA@Example.com ", "hunter22", "")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != entity.RoleCustomer {
		t.Fatalf("role = %s, want customer default", user.Role)
	}
	if user.Email != "ada@example.com" {
		t.Fatalf("email = %q, want normalized", user.Email)
	}

	token, logged, err := svc.Login("ada@example.com", "hunter22")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || logged.ID != user.ID {
		t.Fatal("expected a token for the registered user")
	}

	if _, _, err := svc.Login("ada@example.com", "wrong"); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("bad password: got %v, want Unauthorized", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "x"); !apperr.Is(err, apperr.KindUnauthorized) {
		t.Fatalf("unknown email: got %v, want Unauthorized", err)
	}
}

func TestRegisterRejections(t *testing.T) {
	svc := newAuthService(t)

	if _, err := svc.Register("Eve", "eve@example.com", "pw123456", entity.RoleAdmin); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("admin self-register: got %v, want InvalidInput", err)
	}
	if _, err := svc.Register("Eve", "eve@example.com", "pw123456", "superuser"); !apperr.Is(err, apperr.KindInvalidInput) {
		t.Fatalf("unknown role: got %v, want InvalidInput", err)
	}

	if _, err := svc.Register("Eve", "eve@example.com", "pw123456", entity.RoleAgent); err != nil {
		t.Fatalf("register agent: %v", err)
	}
	if _, err := svc.Register("Eve 2", "eve@example.com", "pw123456", ""); !apperr.Is(err, apperr.KindConflict) {
		t.Fatalf("duplicate email: got %v, want Conflict", err)
	}
}
