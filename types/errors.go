package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLength = errors.New("invalid length")
	ErrInvalidChar   = errors.New("invalid character")
	ErrTooPrecise    = errors.New("too many decimal places")
	ErrNegative      = errors.New("negative amount")
	ErrTooBig        = errors.New("amount exceeds max money")
	ErrTrailingData  = errors.New("trailing data after end of structure")
)

// FieldFailed renders the message shared by every conversion error variant.
func FieldFailed(field string, err error) string {
	if err == nil {
		return fmt.Sprintf("conversion of the `%s` field failed", field)
	}
	return fmt.Sprintf("conversion of the `%s` field failed: %v", field, err)
}

// NumericFailed renders the message of a Numeric error variant. The wrapped
// NumericError already carries the field name.
func NumericFailed(err error) string {
	return fmt.Sprintf("conversion of a numeric field failed: %v", err)
}

// HexError is returned when a fixed-length identifier or a hex encoded byte
// string cannot be parsed.
type HexError struct {
	Expected int // expected number of hex characters, 0 for variable length
	Got      int
	Err      error // ErrInvalidLength or ErrInvalidChar
}

func (e *HexError) Error() string {
	if errors.Is(e.Err, ErrInvalidLength) {
		if e.Expected == 0 {
			return fmt.Sprintf("odd hex string length %d", e.Got)
		}
		return fmt.Sprintf("invalid hex string length %d (expected %d)", e.Got, e.Expected)
	}
	return fmt.Sprintf("invalid hex character at position %d", e.Got)
}

func (e *HexError) Unwrap() error { return e.Err }

// AmountError is returned when a monetary amount cannot be parsed.
type AmountError struct {
	Input string
	Err   error
}

func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %v", e.Input, e.Err)
}

func (e *AmountError) Unwrap() error { return e.Err }

// NumericError is returned when a wide integer does not fit the narrower type
// used by the model.
type NumericError struct {
	Field  string
	Value  string
	Target string
}

func (e *NumericError) Error() string {
	return fmt.Sprintf("invalid `%s`: %s is out of range for %s", e.Field, e.Value, e.Target)
}

// EnumError is returned when a string does not name a known value of a
// structured enumeration.
type EnumError struct {
	Type  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Type, e.Value)
}

// AddressError is returned when an address string is not valid on any of the
// supported networks.
type AddressError struct {
	Input string
	Err   error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid address %q: %v", e.Input, e.Err)
}

func (e *AddressError) Unwrap() error { return e.Err }

// DecodeError is returned when a hex or base64 encoded structure (transaction,
// PSBT, public key) fails to decode.
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DuplicateKeyError is returned when two keys of a wire mapping parse to the
// same model key.
type DuplicateKeyError struct {
	Key string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %s", e.Key)
}
