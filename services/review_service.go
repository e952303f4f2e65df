package services

import (
	"errors"
	"math"

	"gorm.io/gorm"

	"github.com/mohanwork1803-cell/Foodie-Express/entity"
	"github.com/mohanwork1803-cell/Foodie-Express/pkg/apperr"
	"github.com/mohanwork1803-cell/Foodie-Express/repository"
)

type ReviewService struct {
	DB       *gorm.DB
	Repo     *repository.ReviewRepository
	RestRepo *repository.RestaurantRepository
}

func NewReviewService(db *gorm.DB, repo *repository.ReviewRepository, restRepo *repository.RestaurantRepository) *ReviewService {
	return &ReviewService{DB: db, Repo: repo, RestRepo: restRepo}
}

func (s *ReviewService) ListForRestaurant(restID uint) ([]entity.Review, error) {
	return s.Repo.ListForRestaurant(restID)
}

// Create stores one review per (user, restaurant) and rolls the restaurant's
// average rating up in the same transaction.
func (s *ReviewService) Create(userID, restID uint, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperr.InvalidInput("rating must be between 1 and 5")
	}

	if _, err := s.RestRepo.GetByID(restID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("restaurant not found")
		}
		return nil, err
	}

	exists, err := s.Repo.ExistsForUser(restID, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("you already reviewed this restaurant")
	}

	rev := &entity.Review{
		UserID:       userID,
		RestaurantID: restID,
		Rating:       rating,
		Comment:      comment,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, rev); err != nil {
			return err
		}
		avg, err := s.Repo.AverageRating(tx, restID)
		if err != nil {
			return err
		}
		return s.RestRepo.UpdateRating(tx, restID, math.Round(avg*100)/100)
	})
	if err != nil {
		return nil, err
	}
	return rev, nil
}
