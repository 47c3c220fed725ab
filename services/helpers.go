package services

import "time"

// parseDate accepts the date-only form used by the admin forms.
func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
