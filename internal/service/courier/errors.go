package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("courier id and status are required")
	ErrUndefinedStatus       = errors.New("undefined courier status")
)
