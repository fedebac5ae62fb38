package v21

import "github.com/DOIDFoundation/corerpc/types"

// PsbtBumpFeeErrorKind names the field of PsbtBumpFee that failed.
type PsbtBumpFeeErrorKind int

const (
	PsbtBumpFeeErrPsbt PsbtBumpFeeErrorKind = iota
	PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee
)

var psbtBumpFeeFields = [...]string{
	PsbtBumpFeeErrPsbt:        "psbt",
	PsbtBumpFeeErrOriginalFee: "original_fee",
	PsbtBumpFeeErrFee:         "fee",
}

func (k PsbtBumpFeeErrorKind) String() string { return psbtBumpFeeFields[k] }

// PsbtBumpFeeError is returned when converting a PsbtBumpFee into the model
// type.
type PsbtBumpFeeError struct {
	Kind PsbtBumpFeeErrorKind
	Err  error
}

func (e *PsbtBumpFeeError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *PsbtBumpFeeError) Unwrap() error { return e.Err }

// SendErrorKind names the field of Send that failed.
type SendErrorKind int

const (
	SendErrTxid SendErrorKind = iota
	SendErrHex
	SendErrPsbt
)

var sendFields = [...]string{
	SendErrTxid: "txid",
	SendErrHex:  "hex",
	SendErrPsbt: "psbt",
}

func (k SendErrorKind) String() string { return sendFields[k] }

// SendError is returned when converting a Send into the model type.
type SendError struct {
	Kind SendErrorKind
	Err  error
}

func (e *SendError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *SendError) Unwrap() error { return e.Err }
