package services

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.Restaurant{}, &entity.MenuItem{},
		&entity.Review{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, role entity.Role) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    fmt.Sprintf("%s-%d@example.com", role, seq(db)),
		Password: "x",
		Name:     "Test " + string(role),
		Role:     role,
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedRestaurant(t *testing.T, db *gorm.DB, owner *entity.User) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: "Testaurant", Address: "1 Test St", OwnerID: owner.ID, IsActive: true}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	return r
}

func seedMenuItem(t *testing.T, db *gorm.DB, rest *entity.Restaurant, price string, available bool) *entity.MenuItem {
	t.Helper()
	p, err := entity.NewMoneyFromString(price)
	if err != nil {
		t.Fatalf("price %q: %v", price, err)
	}
	m := &entity.MenuItem{
		Name:         "Dish",
		Price:        p,
		IsAvailable:  available,
		RestaurantID: rest.ID,
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed menu item: %v", err)
	}
	return m
}

func seq(db *gorm.DB) int64 {
	var n int64
	db.Model(&entity.User{}).Count(&n)
	return n
}

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(repository.NewCartRepository(db), repository.NewMenuRepository(db))
}

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewRestaurantRepository(db))
}

func newDeliveryService(db *gorm.DB) *DeliveryService {
	return NewDeliveryService(repository.NewOrderRepository(db))
}

func newRestaurantService(db *gorm.DB) *RestaurantService {
	return NewRestaurantService(repository.NewRestaurantRepository(db), repository.NewMenuRepository(db))
}

func newMenuService(db *gorm.DB) *MenuService {
	return NewMenuService(repository.NewMenuRepository(db), repository.NewRestaurantRepository(db))
}
