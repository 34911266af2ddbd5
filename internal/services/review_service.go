package services

import (
	"errors"

	"github.com/justsurfingit/jobjournal/internal/dtos"
	"github.com/justsurfingit/jobjournal/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// ListAll returns every review; the listing is public and needs no auth.
func (s *ReviewService) ListAll() ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) ListByUser(userID uint) ([]models.Review, error) {
	var reviews []models.Review
	if err := s.DB.Where("user_id = ?", userID).Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (s *ReviewService) Create(userID uint, req *dtos.ReviewCreationRequest) (*models.Review, error) {
	rounds := models.StringList(req.Rounds)
	if rounds == nil {
		rounds = models.StringList{}
	}
	review := &models.Review{
		UserID:  userID,
		Company: req.Company,
		Review:  req.Review,
		Rating:  req.Rating,
		Salary:  req.Salary,
		Rounds:  rounds,
		Role:    req.Role,
	}
	if err := s.DB.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// Delete is owner-scoped: a review that exists but belongs to someone else
// reports the same error as a missing one.
func (s *ReviewService) Delete(reviewID, userID uint) error {
	var review models.Review
	err := s.DB.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	return s.DB.Delete(&review).Error
}
