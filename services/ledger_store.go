package services

import (
	"errors"

	"github.com/Ipannazim/Calorie-Tracker/models"

	"gorm.io/gorm"
)

// DefaultDailyGoal is the calorie goal a user has before ever setting one.
const DefaultDailyGoal = 2200

// LedgerStore is the durable side of the ledger: entries keyed by user and
// date, plus the standing daily goal. The DailyLedger never touches the
// database directly, only this interface, so tests run against a fake.
type LedgerStore interface {
	// CreateEntry persists e and fills in its assigned ID.
	CreateEntry(e *models.Entry) error
	ListEntries(userID, date string) ([]models.Entry, error)
	DeleteEntry(id uint) error
	GetGoal(userID string) (int, error)
	SetGoal(userID string, goal int) error
}

// GormLedgerStore backs the ledger with the users/entries tables.
type GormLedgerStore struct {
	db *gorm.DB
}

func NewGormLedgerStore(db *gorm.DB) *GormLedgerStore {
	return &GormLedgerStore{db: db}
}

func (s *GormLedgerStore) CreateEntry(e *models.Entry) error {
	return s.db.Create(e).Error
}

func (s *GormLedgerStore) ListEntries(userID, date string) ([]models.Entry, error) {
	var entries []models.Entry
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("timestamp ASC").
		Find(&entries).Error
	return entries, err
}

func (s *GormLedgerStore) DeleteEntry(id uint) error {
	return s.db.Delete(&models.Entry{}, id).Error
}

func (s *GormLedgerStore) GetGoal(userID string) (int, error) {
	var user models.User
	err := s.db.Select("daily_goal").First(&user, "id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DefaultDailyGoal, nil
		}
		return 0, err
	}
	return user.DailyGoal, nil
}

func (s *GormLedgerStore) SetGoal(userID string, goal int) error {
	return s.db.Model(&models.User{}).
		Where("id = ?", userID).
		Update("daily_goal", goal).Error
}
