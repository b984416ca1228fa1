package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound signals a user-scoped row lookup miss; handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials is returned by login so the handler can answer 401
// without inspecting the message.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError marks an error caused by user input. Handlers return its
// message with a 400; any other service error is treated as internal and
// never reaches the client verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// invalid builds a ValidationError. With no args the format string is used
// as-is, so messages containing % are safe.
func invalid(format string, args ...interface{}) error {
	if len(args) == 0 {
		return &ValidationError{Msg: format}
	}
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// notFound converts gorm's sentinel to the service-level one.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
