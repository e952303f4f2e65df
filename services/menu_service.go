package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

type MenuService struct {
	Repo     *repository.MenuRepository
	RestRepo *repository.RestaurantRepository
}

func NewMenuService(repo *repository.MenuRepository, restRepo *repository.RestaurantRepository) *MenuService {
	return &MenuService{Repo: repo, RestRepo: restRepo}
}

func (s *MenuService) List(restaurantID uint) ([]entity.MenuItem, error) {
	return s.Repo.List(restaurantID)
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	return s.Repo.ListCategories()
}

func (s *MenuService) CreateCategory(name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperr.InvalidInput("name is required")
	}
	cat := &entity.Category{Name: name}
	if err := s.Repo.CreateCategory(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

type MenuItemIn struct {
	RestaurantID uint         `json:"restaurantId" binding:"required"`
	CategoryID   *uint        `json:"categoryId"`
	Name         string       `json:"name" binding:"required"`
	Description  string       `json:"description"`
	Price        entity.Money `json:"price"`
	IsAvailable  *bool        `json:"isAvailable"`
}

func (s *MenuService) ownsOrAdmin(actor *entity.User, restID uint) error {
	if actor.Role == entity.RoleAdmin {
		return nil
	}
	ok, err := s.RestRepo.IsOwnedBy(restID, actor.ID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Forbidden("not your restaurant")
	}
	return nil
}

func (s *MenuService) Create(actor *entity.User, in *MenuItemIn) (*entity.MenuItem, error) {
	if err := s.ownsOrAdmin(actor, in.RestaurantID); err != nil {
		return nil, err
	}
	m := &entity.MenuItem{
		RestaurantID: in.RestaurantID,
		CategoryID:   in.CategoryID,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		IsAvailable:  true,
	}
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Update edits a menu item. Price changes affect future cart additions only;
// existing snapshots keep their captured price.
func (s *MenuService) Update(actor *entity.User, id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("menu item not found")
		}
		return nil, err
	}
	if err := s.ownsOrAdmin(actor, m.RestaurantID); err != nil {
		return nil, err
	}

	m.Name = in.Name
	m.Description = in.Description
	m.Price = in.Price
	m.CategoryID = in.CategoryID
	if in.IsAvailable != nil {
		m.IsAvailable = *in.IsAvailable
	}
	if err := s.Repo.Save(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MenuService) Delete(actor *entity.User, id uint) error {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("menu item not found")
		}
		return err
	}
	if err := s.ownsOrAdmin(actor, m.RestaurantID); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
