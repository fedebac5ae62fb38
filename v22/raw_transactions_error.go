package v22

import "github.com/DOIDFoundation/corerpc/types"

// MempoolAcceptanceErrorKind names the field of MempoolAcceptance that failed.
type MempoolAcceptanceErrorKind int

const (
	MempoolAcceptanceErrNumeric MempoolAcceptanceErrorKind = iota
	MempoolAcceptanceErrTxid
	MempoolAcceptanceErrWtxid
	MempoolAcceptanceErrBase
)

var mempoolAcceptanceFields = [...]string{
	MempoolAcceptanceErrNumeric: "numeric",
	MempoolAcceptanceErrTxid:    "txid",
	MempoolAcceptanceErrWtxid:   "wtxid",
	MempoolAcceptanceErrBase:    "base",
}

func (k MempoolAcceptanceErrorKind) String() string { return mempoolAcceptanceFields[k] }

// MempoolAcceptanceError is returned when converting a MempoolAcceptance into
// the model type.
type MempoolAcceptanceError struct {
	Kind MempoolAcceptanceErrorKind
	Err  error
}

func (e *MempoolAcceptanceError) Error() string {
	if e.Kind == MempoolAcceptanceErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *MempoolAcceptanceError) Unwrap() error { return e.Err }
