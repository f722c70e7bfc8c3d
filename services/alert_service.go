package services

import (
	"fmt"
	"time"

	"github.com/Ipannazim/Calorie-Tracker/models"

	"gorm.io/gorm"
)

// AlertService records goal-related alerts and pushes them over the hub.
type AlertService struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewAlertService(db *gorm.DB, hub *RealtimeHub) *AlertService {
	return &AlertService{db: db, hub: hub}
}

// EmitGoalExceeded fires when a mutation pushes the daily total past the
// goal. Callers decide the crossing; this just records and broadcasts.
func (a *AlertService) EmitGoalExceeded(userID string, total float64, goal int) {
	alert := &models.Alert{
		UserID:    userID,
		Type:      "warning",
		Message:   fmt.Sprintf("Daily goal exceeded: %.0f of %d kcal", total, goal),
		CreatedAt: time.Now(),
	}
	_ = a.db.Create(alert).Error

	if a.hub != nil {
		a.hub.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": alert,
		})
	}
}

func (a *AlertService) ListRecent(userID string, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := a.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&alerts).Error
	return alerts, err
}
