package booking

import "errors"

var (
	ErrValidationFailed = errors.New("booking validation failed")
	ErrSlotUnavailable  = errors.New("slot unavailable")
	ErrNetwork          = errors.New("booking backend unreachable")
	ErrListingNotFound  = errors.New("listing not found")
	ErrNoSession        = errors.New("no open wizard for this client")
	ErrNotOnConfirmStep = errors.New("wizard is not on the confirmation step")
)
