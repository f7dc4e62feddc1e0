package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Field validation errors
	ErrInvalidPhone = fmt.Errorf("phone number must contain exactly 10 digits")
	ErrInvalidDate  = fmt.Errorf("invalid date format, use DD.MM.YYYY")
	ErrEmptyName    = fmt.Errorf("contact name must not be empty")

	// Lookup errors
	ErrPhoneNotFound   = fmt.Errorf("phone not found")
	ErrContactNotFound = fmt.Errorf("contact not found")

	// Command errors
	ErrMissingArguments = fmt.Errorf("not enough arguments")
	ErrUnknownCommand   = fmt.Errorf("unknown command")
	ErrInvalidFlag      = fmt.Errorf("invalid flag value")

	// Persistence errors
	ErrStoreUnavailable = fmt.Errorf("contact store unavailable")
)
