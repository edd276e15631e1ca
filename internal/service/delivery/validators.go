package delivery

import (
	"time"

	"courier-management/internal/entities"
)

func isValidDeliveryID(id int64) bool {
	return id > 0
}

func isValidCourierID(id int64) bool {
	return id > 0
}

func isValidStatus(status entities.DeliveryStatusType) bool {
	return status.IsValid()
}

// isValidScheduledDate - доменная политика: дата не раньше сегодняшней (UTC).
func isValidScheduledDate(date time.Time, now time.Time) bool {
	if date.IsZero() {
		return false
	}
	return !truncateToDate(date).Before(truncateToDate(now))
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
