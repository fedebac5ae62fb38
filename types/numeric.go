package types

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// ToUint32 narrows v to uint32, field names the wire field for the error.
func ToUint32[V constraints.Integer](v V, field string) (uint32, error) {
	return narrow[uint32](v, field, "uint32")
}

// ToUint16 narrows v to uint16.
func ToUint16[V constraints.Integer](v V, field string) (uint16, error) {
	return narrow[uint16](v, field, "uint16")
}

// ToUint8 narrows v to uint8.
func ToUint8[V constraints.Integer](v V, field string) (uint8, error) {
	return narrow[uint8](v, field, "uint8")
}

// OptUint32 narrows an optional value, nil stays nil.
func OptUint32[V constraints.Integer](v *V, field string) (*uint32, error) {
	if v == nil {
		return nil, nil
	}
	n, err := ToUint32(*v, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func narrow[T constraints.Unsigned, V constraints.Integer](v V, field, target string) (T, error) {
	if v < 0 || uint64(v) > uint64(^T(0)) {
		return 0, &NumericError{Field: field, Value: fmt.Sprint(v), Target: target}
	}
	return T(v), nil
}

// OptUint8 narrows an optional value to uint8, nil stays nil.
func OptUint8[V constraints.Integer](v *V, field string) (*uint8, error) {
	if v == nil {
		return nil, nil
	}
	n, err := ToUint8(*v, field)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
