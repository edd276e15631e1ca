package delivery

import "time"

type DeliveryDB struct {
	ID              int64
	CourierID       int64
	Status          string
	ScheduledDate   time.Time
	CreatedByUserID int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DeliveryModifyDB struct {
	ID              *int64
	CourierID       *int64
	Status          *string
	ScheduledDate   *time.Time
	CreatedByUserID *int64
}
