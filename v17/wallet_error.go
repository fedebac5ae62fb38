package v17

import "github.com/DOIDFoundation/corerpc/types"

// GetAddressesByLabelErrorKind names the part of GetAddressesByLabel that
// failed.
type GetAddressesByLabelErrorKind int

const (
	GetAddressesByLabelErrAddress GetAddressesByLabelErrorKind = iota
	GetAddressesByLabelErrPurpose
)

var getAddressesByLabelFields = [...]string{
	GetAddressesByLabelErrAddress: "address",
	GetAddressesByLabelErrPurpose: "purpose",
}

func (k GetAddressesByLabelErrorKind) String() string { return getAddressesByLabelFields[k] }

// GetAddressesByLabelError is returned when converting a GetAddressesByLabel
// into the model type. The address variant covers malformed and duplicate keys.
type GetAddressesByLabelError struct {
	Kind GetAddressesByLabelErrorKind
	Err  error
}

func (e *GetAddressesByLabelError) Error() string {
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetAddressesByLabelError) Unwrap() error { return e.Err }

// GetAddressInfoErrorKind names the field of GetAddressInfo that failed.
type GetAddressInfoErrorKind int

const (
	GetAddressInfoErrNumeric GetAddressInfoErrorKind = iota
	GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript
	GetAddressInfoErrHex
	GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID
	GetAddressInfoErrHdMasterKeyID
	GetAddressInfoErrLabels
)

var getAddressInfoFields = [...]string{
	GetAddressInfoErrNumeric:        "numeric",
	GetAddressInfoErrAddress:        "address",
	GetAddressInfoErrScriptPubKey:   "script_pubkey",
	GetAddressInfoErrWitnessProgram: "witness_program",
	GetAddressInfoErrScript:         "script",
	GetAddressInfoErrHex:            "hex",
	GetAddressInfoErrPubKeys:        "pubkeys",
	GetAddressInfoErrPubKey:         "pubkey",
	GetAddressInfoErrEmbedded:       "embedded",
	GetAddressInfoErrHdSeedID:       "hd_seed_id",
	GetAddressInfoErrHdMasterKeyID:  "hd_master_key_id",
	GetAddressInfoErrLabels:         "labels",
}

func (k GetAddressInfoErrorKind) String() string { return getAddressInfoFields[k] }

// GetAddressInfoError is returned when converting a GetAddressInfo into the
// model type.
type GetAddressInfoError struct {
	Kind GetAddressInfoErrorKind
	Err  error
}

func (e *GetAddressInfoError) Error() string {
	if e.Kind == GetAddressInfoErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetAddressInfoError) Unwrap() error { return e.Err }

// GetAddressInfoEmbeddedErrorKind names the field of GetAddressInfoEmbedded
// that failed.
type GetAddressInfoEmbeddedErrorKind int

const (
	GetAddressInfoEmbeddedErrNumeric GetAddressInfoEmbeddedErrorKind = iota
	GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey
	GetAddressInfoEmbeddedErrLabels
)

var getAddressInfoEmbeddedFields = [...]string{
	GetAddressInfoEmbeddedErrNumeric:        "numeric",
	GetAddressInfoEmbeddedErrAddress:        "address",
	GetAddressInfoEmbeddedErrScriptPubKey:   "script_pubkey",
	GetAddressInfoEmbeddedErrWitnessProgram: "witness_program",
	GetAddressInfoEmbeddedErrScript:         "script",
	GetAddressInfoEmbeddedErrHex:            "hex",
	GetAddressInfoEmbeddedErrPubKeys:        "pubkeys",
	GetAddressInfoEmbeddedErrPubKey:         "pubkey",
	GetAddressInfoEmbeddedErrLabels:         "labels",
}

func (k GetAddressInfoEmbeddedErrorKind) String() string { return getAddressInfoEmbeddedFields[k] }

// GetAddressInfoEmbeddedError is returned when converting a
// GetAddressInfoEmbedded into the model type.
type GetAddressInfoEmbeddedError struct {
	Kind GetAddressInfoEmbeddedErrorKind
	Err  error
}

func (e *GetAddressInfoEmbeddedError) Error() string {
	if e.Kind == GetAddressInfoEmbeddedErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetAddressInfoEmbeddedError) Unwrap() error { return e.Err }

// GetTransactionErrorKind names the field of GetTransaction that failed.
type GetTransactionErrorKind int

const (
	GetTransactionErrNumeric GetTransactionErrorKind = iota
	GetTransactionErrAmount
	GetTransactionErrFee
	GetTransactionErrBlockHash
	GetTransactionErrTxid
	GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable
	GetTransactionErrDetails
	GetTransactionErrTx
)

var getTransactionFields = [...]string{
	GetTransactionErrNumeric:           "numeric",
	GetTransactionErrAmount:            "amount",
	GetTransactionErrFee:               "fee",
	GetTransactionErrBlockHash:         "block_hash",
	GetTransactionErrTxid:              "txid",
	GetTransactionErrWalletConflicts:   "wallet_conflicts",
	GetTransactionErrBip125Replaceable: "bip125_replaceable",
	GetTransactionErrDetails:           "details",
	GetTransactionErrTx:                "tx",
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

// GetTransactionDetailErrorKind names the field of GetTransactionDetail that
// failed.
type GetTransactionDetailErrorKind int

const (
	GetTransactionDetailErrNumeric GetTransactionDetailErrorKind = iota
	GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount
	GetTransactionDetailErrFee
)

var getTransactionDetailFields = [...]string{
	GetTransactionDetailErrNumeric:  "numeric",
	GetTransactionDetailErrAddress:  "address",
	GetTransactionDetailErrCategory: "category",
	GetTransactionDetailErrAmount:   "amount",
	GetTransactionDetailErrFee:      "fee",
}

func (k GetTransactionDetailErrorKind) String() string { return getTransactionDetailFields[k] }

// GetTransactionDetailError is returned when converting a GetTransactionDetail
// into the model type.
type GetTransactionDetailError struct {
	Kind GetTransactionDetailErrorKind
	Err  error
}

func (e *GetTransactionDetailError) Error() string {
	if e.Kind == GetTransactionDetailErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *GetTransactionDetailError) Unwrap() error { return e.Err }

// GetWalletInfoErrorKind names the field of GetWalletInfo that failed.
type GetWalletInfoErrorKind int

const (
	GetWalletInfoErrNumeric GetWalletInfoErrorKind = iota
	GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID
)

var getWalletInfoFields = [...]string{
	GetWalletInfoErrNumeric:            "numeric",
	GetWalletInfoErrBalance:            "balance",
	GetWalletInfoErrUnconfirmedBalance: "unconfirmed_balance",
	GetWalletInfoErrImmatureBalance:    "immature_balance",
	GetWalletInfoErrPayTxFee:           "pay_tx_fee",
	GetWalletInfoErrHdSeedID:           "hd_seed_id",
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

// BumpFeeErrorKind names the field of BumpFee that failed.
type BumpFeeErrorKind int

const (
	BumpFeeErrTxid BumpFeeErrorKind = iota
	BumpFeeErrOriginalFee
	BumpFeeErrFee
)

var bumpFeeFields = [...]string{
	BumpFeeErrTxid:        "txid",
	BumpFeeErrOriginalFee: "original_fee",
	BumpFeeErrFee:         "fee",
}

func (k BumpFeeErrorKind) String() string { return bumpFeeFields[k] }

// BumpFeeError is returned when converting a BumpFee into the model type.
type BumpFeeError struct {
	Kind BumpFeeErrorKind
	Err  error
}

func (e *BumpFeeError) Error() string { return types.FieldFailed(e.Kind.String(), e.Err) }

func (e *BumpFeeError) Unwrap() error { return e.Err }

// WalletProcessPsbtError is returned when converting a WalletProcessPsbt into
// the model type. The psbt is the only fallible field of this release.
type WalletProcessPsbtError struct {
	Err error
}

func (e *WalletProcessPsbtError) Error() string { return types.FieldFailed("psbt", e.Err) }

func (e *WalletProcessPsbtError) Unwrap() error { return e.Err }

// ListUnspentItemErrorKind names the field of ListUnspentItem that failed.
type ListUnspentItemErrorKind int

const (
	ListUnspentItemErrNumeric ListUnspentItemErrorKind = iota
	ListUnspentItemErrTxid
	ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript
)

var listUnspentItemFields = [...]string{
	ListUnspentItemErrNumeric:      "numeric",
	ListUnspentItemErrTxid:         "txid",
	ListUnspentItemErrAddress:      "address",
	ListUnspentItemErrScriptPubKey: "script_pubkey",
	ListUnspentItemErrAmount:       "amount",
	ListUnspentItemErrRedeemScript: "redeem_script",
}

func (k ListUnspentItemErrorKind) String() string { return listUnspentItemFields[k] }

// ListUnspentItemError is returned when converting a ListUnspentItem into the
// model type. ListUnspent returns the error of its first failing item as is.
type ListUnspentItemError struct {
	Kind ListUnspentItemErrorKind
	Err  error
}

func (e *ListUnspentItemError) Error() string {
	if e.Kind == ListUnspentItemErrNumeric {
		return types.NumericFailed(e.Err)
	}
	return types.FieldFailed(e.Kind.String(), e.Err)
}

func (e *ListUnspentItemError) Unwrap() error { return e.Err }
