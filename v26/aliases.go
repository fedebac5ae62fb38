package v26

import "github.com/DOIDFoundation/corerpc/v25"

// Replies unchanged since v25.
type (
	GetBestBlockHash                = v25.GetBestBlockHash
	GetBlockCount                   = v25.GetBlockCount
	GetBlockHash                    = v25.GetBlockHash
	GetBlockchainInfo               = v25.GetBlockchainInfo
	MempoolEntryFees                = v25.MempoolEntryFees
	GetMempoolAncestors             = v25.GetMempoolAncestors
	GetMempoolDescendants           = v25.GetMempoolDescendants
	GetRawMempool                   = v25.GetRawMempool
	GetBlockchainInfoErrorKind      = v25.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v25.GetBlockchainInfoError
	MempoolEntryErrorKind           = v25.MempoolEntryErrorKind
	MempoolEntryError               = v25.MempoolEntryError
	MempoolEntryFeesErrorKind       = v25.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v25.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v25.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v25.MapMempoolEntryError
	GetMiningInfo                   = v25.GetMiningInfo
	GenerateToAddress               = v25.GenerateToAddress
	GetNetworkInfoNetwork           = v25.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v25.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v25.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v25.GetNetworkInfoError
	GetNetworkInfoAddressError      = v25.GetNetworkInfoAddressError
	GetRawTransaction               = v25.GetRawTransaction
	SendRawTransaction              = v25.SendRawTransaction
	TestMempoolAcceptError          = v25.TestMempoolAcceptError
	GetBalance                      = v25.GetBalance
	GetUnconfirmedBalance           = v25.GetUnconfirmedBalance
	GetReceivedByAddress            = v25.GetReceivedByAddress
	GetNewAddress                   = v25.GetNewAddress
	GetRawChangeAddress             = v25.GetRawChangeAddress
	GetAddressesByLabel             = v25.GetAddressesByLabel
	AddressInformation              = v25.AddressInformation
	BumpFee                         = v25.BumpFee
	SendToAddress                   = v25.SendToAddress
	SendMany                        = v25.SendMany
	ListUnspent                     = v25.ListUnspent
	ListUnspentItem                 = v25.ListUnspentItem
	RescanBlockchain                = v25.RescanBlockchain
	GetAddressesByLabelErrorKind    = v25.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v25.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v25.GetAddressInfoErrorKind
	GetAddressInfoError             = v25.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v25.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v25.GetAddressInfoEmbeddedError
	GetTransactionDetailErrorKind   = v25.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v25.GetTransactionDetailError
	BumpFeeErrorKind                = v25.BumpFeeErrorKind
	BumpFeeError                    = v25.BumpFeeError
	ListUnspentItemErrorKind        = v25.ListUnspentItemErrorKind
	ListUnspentItemError            = v25.ListUnspentItemError
	GetAddressInfo                  = v25.GetAddressInfo
	GetAddressInfoEmbedded          = v25.GetAddressInfoEmbedded
	GetBalancesMine                 = v25.GetBalancesMine
	GetBalancesWatchOnly            = v25.GetBalancesWatchOnly
	BalanceErrorKind                = v25.BalanceErrorKind
	BalanceError                    = v25.BalanceError
	MempoolEntry                    = v25.MempoolEntry
	GetMempoolEntry                 = v25.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v25.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v25.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v25.GetRawMempoolVerbose
	GetNetworkInfo                  = v25.GetNetworkInfo
	MempoolAcceptanceFees           = v25.MempoolAcceptanceFees
	PsbtBumpFee                     = v25.PsbtBumpFee
	Send                            = v25.Send
	PsbtBumpFeeErrorKind            = v25.PsbtBumpFeeErrorKind
	PsbtBumpFeeError                = v25.PsbtBumpFeeError
	SendErrorKind                   = v25.SendErrorKind
	SendError                       = v25.SendError
	TestMempoolAccept               = v25.TestMempoolAccept
	MempoolAcceptance               = v25.MempoolAcceptance
	MempoolAcceptanceErrorKind      = v25.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v25.MempoolAcceptanceError
	GetMempoolInfo                  = v25.GetMempoolInfo
	GetTxSpendingPrevout            = v25.GetTxSpendingPrevout
	GetTxSpendingPrevoutItem        = v25.GetTxSpendingPrevoutItem
	GetMempoolInfoErrorKind         = v25.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v25.GetMempoolInfoError
	GetTxSpendingPrevoutErrorKind   = v25.GetTxSpendingPrevoutErrorKind
	GetTxSpendingPrevoutError       = v25.GetTxSpendingPrevoutError
)

const (
	GetBlockchainInfoErrNumeric             = v25.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v25.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v25.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v25.GetBlockchainInfoErrChainWork
	MempoolEntryErrNumeric                  = v25.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v25.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v25.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v25.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v25.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v25.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v25.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v25.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v25.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v25.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v25.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v25.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v25.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v25.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v25.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v25.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v25.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v25.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v25.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v25.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v25.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v25.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v25.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v25.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v25.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v25.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v25.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v25.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v25.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v25.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v25.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v25.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v25.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v25.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v25.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v25.GetAddressInfoEmbeddedErrPubKey
	GetTransactionDetailErrNumeric          = v25.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v25.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v25.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v25.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v25.GetTransactionDetailErrFee
	BumpFeeErrTxid                          = v25.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v25.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v25.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v25.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v25.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v25.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v25.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v25.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v25.ListUnspentItemErrRedeemScript
	BalanceErrTrusted                       = v25.BalanceErrTrusted
	BalanceErrUntrustedPending              = v25.BalanceErrUntrustedPending
	BalanceErrImmature                      = v25.BalanceErrImmature
	BalanceErrUsed                          = v25.BalanceErrUsed
	PsbtBumpFeeErrPsbt                      = v25.PsbtBumpFeeErrPsbt
	PsbtBumpFeeErrOriginalFee               = v25.PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee                       = v25.PsbtBumpFeeErrFee
	SendErrTxid                             = v25.SendErrTxid
	SendErrHex                              = v25.SendErrHex
	SendErrPsbt                             = v25.SendErrPsbt
	MempoolAcceptanceErrNumeric             = v25.MempoolAcceptanceErrNumeric
	MempoolAcceptanceErrTxid                = v25.MempoolAcceptanceErrTxid
	MempoolAcceptanceErrWtxid               = v25.MempoolAcceptanceErrWtxid
	MempoolAcceptanceErrBase                = v25.MempoolAcceptanceErrBase
	GetMempoolInfoErrNumeric                = v25.GetMempoolInfoErrNumeric
	GetMempoolInfoErrTotalFee               = v25.GetMempoolInfoErrTotalFee
	GetMempoolInfoErrMempoolMinFee          = v25.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v25.GetMempoolInfoErrMinRelayTxFee
	GetMempoolInfoErrIncrementalRelayFee    = v25.GetMempoolInfoErrIncrementalRelayFee
	GetTxSpendingPrevoutErrNumeric          = v25.GetTxSpendingPrevoutErrNumeric
	GetTxSpendingPrevoutErrTxid             = v25.GetTxSpendingPrevoutErrTxid
	GetTxSpendingPrevoutErrSpendingTxid     = v25.GetTxSpendingPrevoutErrSpendingTxid
)
