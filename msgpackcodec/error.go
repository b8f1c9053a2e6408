package msgpackcodec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArrayLen is returned when the encoded array has a wrong length.
	ErrInvalidArrayLen = errors.New("invalid array length")
	// ErrInvalidInteger is returned when seq or kind is not an unsigned integer.
	ErrInvalidInteger = errors.New("expected unsigned integer")
	// ErrUnknownKind is returned when the kind field holds an unknown value.
	ErrUnknownKind = errors.New("unknown kind")
	// ErrTombstoneWithData is returned when a tombstone carries data.
	ErrTombstoneWithData = errors.New("tombstone must not carry data")
	// ErrMissingData is returned when a normal value has no data.
	ErrMissingData = errors.New("missing data")
	// ErrTrailingData is returned when bytes remain after the value.
	ErrTrailingData = errors.New("trailing data")
)

// DecodingError represents an error that occurs during decoding operations.
type DecodingError struct {
	Field string
	Err   error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	return fmt.Sprintf("failed to decode %s: %s", e.Field, e.Err)
}

func (e DecodingError) Unwrap() error {
	return e.Err
}

func newDecodingError(field string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{Field: field, Err: err}
}

// EncodingError represents an error that occurs during encoding operations.
type EncodingError struct {
	Field string
	Err   error
}

// Error returns the error message.
func (e EncodingError) Error() string {
	return fmt.Sprintf("failed to encode %s: %s", e.Field, e.Err)
}

func (e EncodingError) Unwrap() error {
	return e.Err
}

func newEncodingError(field string, err error) error {
	if err == nil {
		return nil
	}

	return EncodingError{Field: field, Err: err}
}
