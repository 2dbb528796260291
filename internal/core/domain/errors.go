package domain

import "errors"

// The closed set of store failure kinds. Operations wrap these with context
// via fmt.Errorf and %w; callers classify with errors.Is.
var (
	ErrValidation        = errors.New("invalid input")
	ErrNotFound          = errors.New("item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrIO                = errors.New("file access failed")
)

// Outcome maps an operation error to its journal result token. A nil error
// is "ok"; an error outside the closed set falls back to "error".
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation_error"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, ErrIO):
		return "io_error"
	default:
		return "error"
	}
}
