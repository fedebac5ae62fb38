package v17

import "github.com/DOIDFoundation/corerpc/types"

// GetNetworkInfoErrorKind names the field of GetNetworkInfo that failed.
type GetNetworkInfoErrorKind int

const (
	GetNetworkInfoErrNumeric GetNetworkInfoErrorKind = iota
	GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses
)

var getNetworkInfoFields = [...]string{
	GetNetworkInfoErrNumeric:        "numeric",
	GetNetworkInfoErrLocalServices:  "localservices",
	GetNetworkInfoErrRelayFee:       "relayfee",
	GetNetworkInfoErrIncrementalFee: "incrementalfee",
	GetNetworkInfoErrLocalAddresses: "localaddresses",
}

func (k GetNetworkInfoErrorKind) String() string { return getNetworkInfoFields[k] }

// GetNetworkInfoError is returned when converting a GetNetworkInfo into the
// model type.
type GetNetworkInfoError struct {
	Kind GetNetworkInfoErrorKind
	Err  error
}

func (e *GetNetworkInfoError) Error() string {
	if e.Kind == GetNetworkInfoErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetNetworkInfoError) Unwrap() error { return e.Err }

// GetNetworkInfoAddressError is returned when converting a
// GetNetworkInfoAddress into the model type. Port and score are its only
// fallible fields, both numeric.
type GetNetworkInfoAddressError struct {
	Err error
}

func (e *GetNetworkInfoAddressError) Error() string { return types.NumericFailed(e.Err) }

func (e *GetNetworkInfoAddressError) Unwrap() error { return e.Err }
