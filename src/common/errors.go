package common

import (
	"errors"
	"fmt"
)

// ErrInvalidFraction is returned when a crop fraction is outside (0, 1]
var ErrInvalidFraction = errors.New("crop fraction must be in (0, 1]")

// DecodeError reports a source image that is missing or cannot be decoded
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports an output that cannot be encoded or written
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
