package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
)

// SeedAdmin creates the first admin account from env, once.
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     entity.RoleAdmin,
	}
	return db.Create(&admin).Error
}

// SeedLookups inserts the default menu categories.
func SeedLookups() error {
	db := DB()
	for _, name := range []string{"Starters", "Mains", "Drinks", "Desserts"} {
		if err := db.FirstOrCreate(&entity.Category{}, entity.Category{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
