package shared

import "fmt"

var (
	// Network and API errors
	ErrNetwork            = fmt.Errorf("network request failed")
	ErrParse              = fmt.Errorf("malformed response body")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")

	// Local storage errors
	ErrStorage = fmt.Errorf("local storage failure")

	// Lookup errors
	ErrNotFound      = fmt.Errorf("not found")
	ErrTrackNotFound = fmt.Errorf("track not found")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
