package driver

import (
	"errors"
	"fmt"
)

// ErrUnavailable is returned when a requested driver is not registered or
// cannot be created in the current build.
var ErrUnavailable = errors.New("driver: not available")

// UnavailableError names the driver that could not be opened.
type UnavailableError struct {
	Name string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("driver: %q not available", e.Name)
}

// Is reports whether target is ErrUnavailable.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
