package generation

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrEmptyDateRange        = errors.New("date range is required")
	ErrInvalidDateRange      = errors.New("date range start must not be after end")
	ErrEmptyCourierPool      = errors.New("courier pool is empty")
	ErrInvalidCourierID      = errors.New("invalid courier id in pool")
	ErrUnknownPattern        = errors.New("unknown generation pattern")
)
