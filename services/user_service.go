package services

import (
	"errors"
	"fmt"

	"github.com/Ipannazim/Calorie-Tracker/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// LoginOrRegister looks the matric number up and creates the account on
// first sight. Identity is trusted as given; there is no password.
func (s *UserService) LoginOrRegister(matric, name string) (*models.User, bool, error) {
	var user models.User
	err := s.db.First(&user, "id = ?", matric).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	user = models.User{ID: matric, Name: name, DailyGoal: DefaultDailyGoal}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, false, err
	}
	return &user, true, nil
}

func (s *UserService) GetProfile(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateName(userID, name string) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("name", name).Error
}
