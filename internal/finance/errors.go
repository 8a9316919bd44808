package finance

import (
	"errors"
	"fmt"
)

// Sentinel errors classifying every business-rule failure. Handlers map these
// onto HTTP status codes; anything unmatched is treated as an internal error.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// UnknownPhase reports a delivery role outside the fixed phase set.
func UnknownPhase(phase string) error {
	return validationError("unknown phase %q", phase)
}

// InvalidDate reports a delivery date that does not parse as YYYY-MM-DD.
func InvalidDate(value string) error {
	return validationError("invalid delivery date %q", value)
}

// MissingReference reports a delivery pointing at a project or contributor
// that does not exist.
func MissingReference(kind string) error {
	return validationError("%s not found", kind)
}
