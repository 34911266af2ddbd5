package services

import (
	"errors"
	"time"

	"github.com/justsurfingit/jobjournal/internal/auth"
	"github.com/justsurfingit/jobjournal/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 10

type UserService struct {
	DB            *gorm.DB
	JWTSecret     []byte
	TokenValidity time.Duration
}

func NewUserService(db *gorm.DB, jwtSecret []byte, tokenValidity time.Duration) *UserService {
	return &UserService{
		DB:            db,
		JWTSecret:     jwtSecret,
		TokenValidity: tokenValidity,
	}
}

// Signup creates the account and mints a token so the client is logged in
// right away. Email uniqueness is the only conflict case.
func (s *UserService) Signup(firstName, lastName, email, password string) (*models.User, string, error) {
	var existing models.User
	err := s.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, "", ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashed),
	}
	if err := s.DB.Create(user).Error; err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.JWTSecret, s.TokenValidity)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) Login(email, password string) (*models.User, string, error) {
	user, err := s.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, "", ErrInvalidPassword
	}
	token, err := auth.GenerateToken(user.ID, user.Email, s.JWTSecret, s.TokenValidity)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResetPassword overwrites the stored hash for the account. It trusts that
// an OTP validation for this email just happened; there is no server-side
// binding between the two calls. See DESIGN.md before tightening this.
func (s *UserService) ResetPassword(email, newPassword string) error {
	user, err := s.GetByEmail(email)
	if err != nil {
		return err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.DB.Save(user).Error
}

func (s *UserService) UpdateBio(userID uint, bio string) (*models.User, error) {
	user, err := s.GetByID(userID)
	if err != nil {
		return nil, err
	}
	user.Bio = bio
	if err := s.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByID(userID uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// DeleteAccount removes the user together with every job and review they
// own, in one transaction.
func (s *UserService) DeleteAccount(userID uint) error {
	user, err := s.GetByID(userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Job{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}
