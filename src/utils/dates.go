package utils

import "time"

// TodayDate returns today's date in UTC as YYYY-MM-DD, the canonical
// day key used across checkins, meetings, and reports.
func TodayDate() string {
	return time.Now().UTC().Format("2006-01-02")
}
