package v26

import "github.com/DOIDFoundation/corerpc/types"

// LastProcessedBlockErrorKind names the field of LastProcessedBlock that
// failed.
type LastProcessedBlockErrorKind int

const (
	LastProcessedBlockErrHash LastProcessedBlockErrorKind = iota
	LastProcessedBlockErrHeight
)

var lastProcessedBlockFields = [...]string{
	LastProcessedBlockErrHash:   "hash",
	LastProcessedBlockErrHeight: "height",
}

func (k LastProcessedBlockErrorKind) String() string { return lastProcessedBlockFields[k] }

// LastProcessedBlockError is returned when converting a LastProcessedBlock
// into the model type.
type LastProcessedBlockError struct {
	Kind LastProcessedBlockErrorKind
	Err  error
}

func (e *LastProcessedBlockError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *LastProcessedBlockError) Unwrap() error { return e.Err }

// GetBalancesErrorKind names the field of GetBalances that failed.
type GetBalancesErrorKind int

const (
	GetBalancesErrMine GetBalancesErrorKind = iota
	GetBalancesErrWatchOnly
	GetBalancesErrLastProcessedBlock
)

var getBalancesFields = [...]string{
	GetBalancesErrMine:               "mine",
	GetBalancesErrWatchOnly:          "watch_only",
	GetBalancesErrLastProcessedBlock: "last_processed_block",
}

func (k GetBalancesErrorKind) String() string { return getBalancesFields[k] }

// GetBalancesError is returned when converting a GetBalances into the model
// type.
type GetBalancesError struct {
	Kind GetBalancesErrorKind
	Err  error
}

func (e *GetBalancesError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *GetBalancesError) Unwrap() error { return e.Err }

// GetTransactionErrorKind names the field of GetTransaction that failed.
type GetTransactionErrorKind int

const (
	GetTransactionErrNumeric GetTransactionErrorKind = iota
	GetTransactionErrAmount
	GetTransactionErrFee
	GetTransactionErrBlockHash
	GetTransactionErrTxid
	GetTransactionErrWtxid
	GetTransactionErrWalletConflicts
	GetTransactionErrReplacedByTxid
	GetTransactionErrReplacesTxid
	GetTransactionErrMempoolConflicts
	GetTransactionErrBip125Replaceable
	GetTransactionErrDetails
	GetTransactionErrTx
	GetTransactionErrLastProcessedBlock
)

var getTransactionFields = [...]string{
	GetTransactionErrNumeric:            "numeric",
	GetTransactionErrAmount:             "amount",
	GetTransactionErrFee:                "fee",
	GetTransactionErrBlockHash:          "block_hash",
	GetTransactionErrTxid:               "txid",
	GetTransactionErrWtxid:              "wtxid",
	GetTransactionErrWalletConflicts:    "wallet_conflicts",
	GetTransactionErrReplacedByTxid:     "replaced_by_txid",
	GetTransactionErrReplacesTxid:       "replaces_txid",
	GetTransactionErrMempoolConflicts:   "mempool_conflicts",
	GetTransactionErrBip125Replaceable:  "bip125_replaceable",
	GetTransactionErrDetails:            "details",
	GetTransactionErrTx:                 "tx",
	GetTransactionErrLastProcessedBlock: "last_processed_block",
}

func (k GetTransactionErrorKind) String() string { return getTransactionFields[k] }

// GetTransactionError is returned when converting a GetTransaction into the
// model type.
type GetTransactionError struct {
	Kind GetTransactionErrorKind
	Err  error
}

func (e *GetTransactionError) Error() string {
	if e.Kind == GetTransactionErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetTransactionError) Unwrap() error { return e.Err }

// GetWalletInfoErrorKind names the field of GetWalletInfo that failed.
type GetWalletInfoErrorKind int

const (
	GetWalletInfoErrNumeric GetWalletInfoErrorKind = iota
	GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID
	GetWalletInfoErrLastProcessedBlock
)

var getWalletInfoFields = [...]string{
	GetWalletInfoErrNumeric:            "numeric",
	GetWalletInfoErrBalance:            "balance",
	GetWalletInfoErrUnconfirmedBalance: "unconfirmed_balance",
	GetWalletInfoErrImmatureBalance:    "immature_balance",
	GetWalletInfoErrPayTxFee:           "pay_tx_fee",
	GetWalletInfoErrHdSeedID:           "hd_seed_id",
	GetWalletInfoErrLastProcessedBlock: "last_processed_block",
}

func (k GetWalletInfoErrorKind) String() string { return getWalletInfoFields[k] }

// GetWalletInfoError is returned when converting a GetWalletInfo into the
// model type.
type GetWalletInfoError struct {
	Kind GetWalletInfoErrorKind
	Err  error
}

func (e *GetWalletInfoError) Error() string {
	if e.Kind == GetWalletInfoErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetWalletInfoError) Unwrap() error { return e.Err }

// WalletProcessPsbtErrorKind names the field of WalletProcessPsbt that failed.
type WalletProcessPsbtErrorKind int

const (
	WalletProcessPsbtErrPsbt WalletProcessPsbtErrorKind = iota
	WalletProcessPsbtErrHex
)

var walletProcessPsbtFields = [...]string{
	WalletProcessPsbtErrPsbt: "psbt",
	WalletProcessPsbtErrHex:  "hex",
}

func (k WalletProcessPsbtErrorKind) String() string { return walletProcessPsbtFields[k] }

// WalletProcessPsbtError is returned when converting a WalletProcessPsbt into
// the model type.
type WalletProcessPsbtError struct {
	Kind WalletProcessPsbtErrorKind
	Err  error
}

func (e *WalletProcessPsbtError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *WalletProcessPsbtError) Unwrap() error { return e.Err }
