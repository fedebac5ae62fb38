package v24

import "github.com/DOIDFoundation/corerpc/types"

// GetMempoolInfoErrorKind names the field of GetMempoolInfo that failed.
type GetMempoolInfoErrorKind int

const (
	GetMempoolInfoErrNumeric GetMempoolInfoErrorKind = iota
	GetMempoolInfoErrTotalFee
	GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee
	GetMempoolInfoErrIncrementalRelayFee
)

var getMempoolInfoFields = [...]string{
	GetMempoolInfoErrNumeric:             "numeric",
	GetMempoolInfoErrTotalFee:            "total_fee",
	GetMempoolInfoErrMempoolMinFee:       "mempoolminfee",
	GetMempoolInfoErrMinRelayTxFee:       "minrelaytxfee",
	GetMempoolInfoErrIncrementalRelayFee: "incrementalrelayfee",
}

func (k GetMempoolInfoErrorKind) String() string { return getMempoolInfoFields[k] }

// GetMempoolInfoError is returned when converting a GetMempoolInfo into the
// model type.
type GetMempoolInfoError struct {
	Kind GetMempoolInfoErrorKind
	Err  error
}

func (e *GetMempoolInfoError) Error() string {
	if e.Kind == GetMempoolInfoErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetMempoolInfoError) Unwrap() error { return e.Err }

// GetTxSpendingPrevoutErrorKind names the field of GetTxSpendingPrevoutItem
// that failed.
type GetTxSpendingPrevoutErrorKind int

const (
	GetTxSpendingPrevoutErrNumeric GetTxSpendingPrevoutErrorKind = iota
	// The txid of the queried outpoint.
	GetTxSpendingPrevoutErrTxid
	GetTxSpendingPrevoutErrSpendingTxid
)

var getTxSpendingPrevoutFields = [...]string{
	GetTxSpendingPrevoutErrNumeric:      "numeric",
	GetTxSpendingPrevoutErrTxid:         "outpoint",
	GetTxSpendingPrevoutErrSpendingTxid: "spending_txid",
}

func (k GetTxSpendingPrevoutErrorKind) String() string { return getTxSpendingPrevoutFields[k] }

// GetTxSpendingPrevoutError is returned when converting a
// GetTxSpendingPrevoutItem into the model type. GetTxSpendingPrevout returns
// the error of its first failing item as is.
type GetTxSpendingPrevoutError struct {
	Kind GetTxSpendingPrevoutErrorKind
	Err  error
}

func (e *GetTxSpendingPrevoutError) Error() string {
	if e.Kind == GetTxSpendingPrevoutErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetTxSpendingPrevoutError) Unwrap() error { return e.Err }
