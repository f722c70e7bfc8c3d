package models

// Entry is one recorded instance of eating a catalog food. Name, unit and
// calories are snapshotted from the catalog at creation time, so later
// catalog edits never rewrite history. Cals is rounded once, when the row
// is written; everything downstream trusts the stored value.
type Entry struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    string  `gorm:"size:50;index:idx_entries_user_date" json:"user_id"`
	Name      string  `gorm:"size:100" json:"name"`
	Unit      string  `gorm:"size:20" json:"unit"`
	Amount    float64 `json:"amount"`
	Cals      float64 `gorm:"column:cals" json:"cals"`
	Date      string  `gorm:"size:10;index:idx_entries_user_date" json:"date"` // YYYY-MM-DD, local
	Timestamp int64   `json:"timestamp"`                                       // unix millis at creation
}
