package v17

import "github.com/DOIDFoundation/corerpc/types"

// TestMempoolAcceptError is returned when converting a TestMempoolAccept into
// the model type. It wraps the error of the first result that failed.
type TestMempoolAcceptError struct {
	Err error
}

func (e *TestMempoolAcceptError) Error() string { return types.FieldFailed("results", e.Err) }

func (e *TestMempoolAcceptError) Unwrap() error { return e.Err }

// MempoolAcceptanceErrorKind names the field of MempoolAcceptance that failed.
type MempoolAcceptanceErrorKind int

const (
	MempoolAcceptanceErrTxid MempoolAcceptanceErrorKind = iota
)

var mempoolAcceptanceFields = [...]string{
	MempoolAcceptanceErrTxid: "txid",
}

func (k MempoolAcceptanceErrorKind) String() string { return mempoolAcceptanceFields[k] }

// MempoolAcceptanceError is returned when converting a MempoolAcceptance into
// the model type.
type MempoolAcceptanceError struct {
	Kind MempoolAcceptanceErrorKind
	Err  error
}

func (e *MempoolAcceptanceError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *MempoolAcceptanceError) Unwrap() error { return e.Err }
