package domain

import "errors"

// Error kinds. Every operation error wraps exactly one of them,
// so the request boundary can map failures without knowing each operation.
var (
	ErrValidation    = errors.New("validation error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrForbidden     = errors.New("forbidden")
	ErrTemporal      = errors.New("temporal error")
	ErrPayment       = errors.New("payment error")
	ErrConfiguration = errors.New("configuration error")
)

// kindError is an operation error tagged with its kind
type kindError struct {
	kind error
	msg  string
}

// NewError creates an error that matches kind via errors.Is
func NewError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// KindOf returns the kind wrapped by err or nil if err carries none
func KindOf(err error) error {
	for _, kind := range []error{
		ErrValidation,
		ErrNotFound,
		ErrConflict,
		ErrForbidden,
		ErrTemporal,
		ErrPayment,
		ErrConfiguration,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
