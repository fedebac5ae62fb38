package v17

import "github.com/DOIDFoundation/corerpc/types"

// GetBlockchainInfoErrorKind names the field of GetBlockchainInfo that failed.
type GetBlockchainInfoErrorKind int

const (
	GetBlockchainInfoErrNumeric GetBlockchainInfoErrorKind = iota
	GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork
)

var getBlockchainInfoFields = [...]string{
	GetBlockchainInfoErrNumeric:       "numeric",
	GetBlockchainInfoErrChain:         "chain",
	GetBlockchainInfoErrBestBlockHash: "bestblockhash",
	GetBlockchainInfoErrChainWork:     "chainwork",
}

func (k GetBlockchainInfoErrorKind) String() string { return getBlockchainInfoFields[k] }

// GetBlockchainInfoError is returned when converting a GetBlockchainInfo into
// the model type.
type GetBlockchainInfoError struct {
	Kind GetBlockchainInfoErrorKind
	Err  error
}

func (e *GetBlockchainInfoError) Error() string {
	if e.Kind == GetBlockchainInfoErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetBlockchainInfoError) Unwrap() error { return e.Err }

// GetMempoolInfoErrorKind names the field of GetMempoolInfo that failed.
type GetMempoolInfoErrorKind int

const (
	GetMempoolInfoErrNumeric GetMempoolInfoErrorKind = iota
	GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee
)

var getMempoolInfoFields = [...]string{
	GetMempoolInfoErrNumeric:       "numeric",
	GetMempoolInfoErrMempoolMinFee: "mempoolminfee",
	GetMempoolInfoErrMinRelayTxFee: "minrelaytxfee",
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

// MempoolEntryErrorKind names the field of MempoolEntry that failed.
type MempoolEntryErrorKind int

const (
	MempoolEntryErrNumeric MempoolEntryErrorKind = iota
	MempoolEntryErrWtxid
	MempoolEntryErrFees
	MempoolEntryErrDepends
	MempoolEntryErrSpentBy
)

var mempoolEntryFields = [...]string{
	MempoolEntryErrNumeric: "numeric",
	MempoolEntryErrWtxid:   "wtxid",
	MempoolEntryErrFees:    "fees",
	MempoolEntryErrDepends: "depends",
	MempoolEntryErrSpentBy: "spentby",
}

func (k MempoolEntryErrorKind) String() string { return mempoolEntryFields[k] }

// MempoolEntryError is returned when converting a MempoolEntry into the model
// type.
type MempoolEntryError struct {
	Kind MempoolEntryErrorKind
	Err  error
}

func (e *MempoolEntryError) Error() string {
	if e.Kind == MempoolEntryErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *MempoolEntryError) Unwrap() error { return e.Err }

// MempoolEntryFeesErrorKind names the field of MempoolEntryFees that failed.
type MempoolEntryFeesErrorKind int

const (
	MempoolEntryFeesErrBase MempoolEntryFeesErrorKind = iota
	MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant
)

var mempoolEntryFeesFields = [...]string{
	MempoolEntryFeesErrBase:       "base",
	MempoolEntryFeesErrModified:   "modified",
	MempoolEntryFeesErrAncestor:   "ancestor",
	MempoolEntryFeesErrDescendant: "descendant",
}

func (k MempoolEntryFeesErrorKind) String() string { return mempoolEntryFeesFields[k] }

// MempoolEntryFeesError is returned when converting a MempoolEntryFees into
// the model type.
type MempoolEntryFeesError struct {
	Kind MempoolEntryFeesErrorKind
	Err  error
}

func (e *MempoolEntryFeesError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *MempoolEntryFeesError) Unwrap() error { return e.Err }

// MapMempoolEntryErrorKind names the part of a verbose mempool map that failed.
type MapMempoolEntryErrorKind int

const (
	MapMempoolEntryErrTxid MapMempoolEntryErrorKind = iota
	MapMempoolEntryErrMempoolEntry
)

var mapMempoolEntryFields = [...]string{
	MapMempoolEntryErrTxid:         "txid",
	MapMempoolEntryErrMempoolEntry: "mempool_entry",
}

func (k MapMempoolEntryErrorKind) String() string { return mapMempoolEntryFields[k] }

// MapMempoolEntryError is returned when converting one of the verbose mempool
// maps (getrawmempool, getmempoolancestors, getmempooldescendants) into the
// model type. The txid variant covers malformed and duplicate keys.
type MapMempoolEntryError struct {
	Kind MapMempoolEntryErrorKind
	Err  error
}

func (e *MapMempoolEntryError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *MapMempoolEntryError) Unwrap() error { return e.Err }
