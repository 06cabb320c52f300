package services

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a referenced client, product, supplier or sale
// does not exist. Callers match it with errors.Is.
var ErrNotFound = errors.New("not found")

// ValidationError rejects an operation with a human-readable reason and
// leaves persisted state unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
