package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidScheduledDate  = errors.New("invalid scheduled date")
	ErrInvalidStatus         = errors.New("invalid delivery status")

	ErrDeliveryNotFound  = errors.New("delivery not found")
	ErrDeliveryExists    = errors.New("active delivery already exists for courier and date")
	ErrInvalidTransition = errors.New("invalid delivery status transition")
)
