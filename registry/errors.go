package registry

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownMethod      = errors.New("unknown method")
	ErrUnsupportedVersion = errors.New("unsupported daemon version")
)

// DecodeError is returned when a raw reply does not decode into the wire type
// of the selected release.
type DecodeError struct {
	Method  string
	Version int
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s reply of v%d: %v", e.Method, e.Version, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
