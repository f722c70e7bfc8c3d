package models

import "time"

// User is keyed by the student's matric number, which doubles as the
// login identifier. No password: identity is trusted as given.
type User struct {
	ID        string    `gorm:"primaryKey;size:50" json:"id"`
	Name      string    `gorm:"size:100" json:"name"`
	DailyGoal int       `gorm:"default:2200" json:"daily_goal"`
	CreatedAt time.Time `json:"created_at"`
}
