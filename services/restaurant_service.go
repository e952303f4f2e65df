package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

type RestaurantService struct {
	Repo     *repository.RestaurantRepository
	MenuRepo *repository.MenuRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository, menuRepo *repository.MenuRepository) *RestaurantService {
	return &RestaurantService{Repo: repo, MenuRepo: menuRepo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.Repo.ListActive()
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	r, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}
	return r, nil
}

// Menu is the public menu view: available items only.
func (s *RestaurantService) Menu(restID uint) ([]entity.MenuItem, error) {
	if _, err := s.Detail(restID); err != nil {
		return nil, err
	}
	return s.MenuRepo.ListAvailableForRestaurant(restID)
}

type RestaurantIn struct {
	Name     string `json:"name" binding:"required"`
	Address  string `json:"address" binding:"required"`
	IsActive *bool  `json:"isActive"`
}

func (s *RestaurantService) Create(ownerID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	r := &entity.Restaurant{
		Name:     in.Name,
		Address:  in.Address,
		OwnerID:  ownerID,
		IsActive: true,
	}
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	if err := s.Repo.Create(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Update lets the owner edit their restaurant; admins may edit any.
func (s *RestaurantService) Update(actor *entity.User, restID uint, in *RestaurantIn) (*entity.Restaurant, error) {
	r, err := s.Detail(restID)
	if err != nil {
		return nil, err
	}
	if actor.Role != entity.RoleAdmin && r.OwnerID != actor.ID {
		return nil, apperr.Forbidden("not your restaurant")
	}

	r.Name = in.Name
	r.Address = in.Address
	if in.IsActive != nil {
		r.IsActive = *in.IsActive
	}
	if err := s.Repo.Save(r); err != nil {
		return nil, err
	}
	return r, nil
}
