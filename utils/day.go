package utils

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey formats t as the calendar-date key entries are bucketed by,
// in local time.
func DayKey(t time.Time) string {
	return t.In(time.Local).Format(dayKeyLayout)
}

func TodayKey() string {
	return DayKey(time.Now())
}
