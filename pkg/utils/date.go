package utils

import "time"

// ParseDate aceita data simples (2006-01-02) ou RFC3339
func ParseDate(dateStr string) (time.Time, error) {
	if date, err := time.Parse(time.DateOnly, dateStr); err == nil {
		return date, nil
	}

	return time.Parse(time.RFC3339, dateStr)
}
