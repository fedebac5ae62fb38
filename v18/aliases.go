package v18

import "github.com/DOIDFoundation/corerpc/v17"

// Replies unchanged since v17.
type (
	GetBestBlockHash                = v17.GetBestBlockHash
	GetBlockCount                   = v17.GetBlockCount
	GetBlockHash                    = v17.GetBlockHash
	GetBlockchainInfo               = v17.GetBlockchainInfo
	GetMempoolInfo                  = v17.GetMempoolInfo
	MempoolEntry                    = v17.MempoolEntry
	MempoolEntryFees                = v17.MempoolEntryFees
	GetMempoolEntry                 = v17.GetMempoolEntry
	GetMempoolAncestors             = v17.GetMempoolAncestors
	GetMempoolAncestorsVerbose      = v17.GetMempoolAncestorsVerbose
	GetMempoolDescendants           = v17.GetMempoolDescendants
	GetMempoolDescendantsVerbose    = v17.GetMempoolDescendantsVerbose
	GetRawMempool                   = v17.GetRawMempool
	GetRawMempoolVerbose            = v17.GetRawMempoolVerbose
	GetBlockchainInfoErrorKind      = v17.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v17.GetBlockchainInfoError
	GetMempoolInfoErrorKind         = v17.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v17.GetMempoolInfoError
	MempoolEntryErrorKind           = v17.MempoolEntryErrorKind
	MempoolEntryError               = v17.MempoolEntryError
	MempoolEntryFeesErrorKind       = v17.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v17.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v17.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v17.MapMempoolEntryError
	GetMiningInfo                   = v17.GetMiningInfo
	GenerateToAddress               = v17.GenerateToAddress
	GetNetworkInfo                  = v17.GetNetworkInfo
	GetNetworkInfoNetwork           = v17.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v17.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v17.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v17.GetNetworkInfoError
	GetNetworkInfoAddressError      = v17.GetNetworkInfoAddressError
	GetRawTransaction               = v17.GetRawTransaction
	SendRawTransaction              = v17.SendRawTransaction
	TestMempoolAccept               = v17.TestMempoolAccept
	MempoolAcceptance               = v17.MempoolAcceptance
	TestMempoolAcceptError          = v17.TestMempoolAcceptError
	MempoolAcceptanceErrorKind      = v17.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v17.MempoolAcceptanceError
	GetBalance                      = v17.GetBalance
	GetUnconfirmedBalance           = v17.GetUnconfirmedBalance
	GetReceivedByAddress            = v17.GetReceivedByAddress
	GetNewAddress                   = v17.GetNewAddress
	GetRawChangeAddress             = v17.GetRawChangeAddress
	GetAddressesByLabel             = v17.GetAddressesByLabel
	AddressInformation              = v17.AddressInformation
	GetTransaction                  = v17.GetTransaction
	GetTransactionDetail            = v17.GetTransactionDetail
	GetWalletInfo                   = v17.GetWalletInfo
	BumpFee                         = v17.BumpFee
	WalletProcessPsbt               = v17.WalletProcessPsbt
	SendToAddress                   = v17.SendToAddress
	SendMany                        = v17.SendMany
	ListUnspent                     = v17.ListUnspent
	ListUnspentItem                 = v17.ListUnspentItem
	RescanBlockchain                = v17.RescanBlockchain
	GetAddressesByLabelErrorKind    = v17.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v17.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v17.GetAddressInfoErrorKind
	GetAddressInfoError             = v17.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v17.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v17.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v17.GetTransactionErrorKind
	GetTransactionError             = v17.GetTransactionError
	GetTransactionDetailErrorKind   = v17.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v17.GetTransactionDetailError
	GetWalletInfoErrorKind          = v17.GetWalletInfoErrorKind
	GetWalletInfoError              = v17.GetWalletInfoError
	BumpFeeErrorKind                = v17.BumpFeeErrorKind
	BumpFeeError                    = v17.BumpFeeError
	WalletProcessPsbtError          = v17.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v17.ListUnspentItemErrorKind
	ListUnspentItemError            = v17.ListUnspentItemError
)

const (
	GetBlockchainInfoErrNumeric             = v17.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v17.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v17.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v17.GetBlockchainInfoErrChainWork
	GetMempoolInfoErrNumeric                = v17.GetMempoolInfoErrNumeric
	GetMempoolInfoErrMempoolMinFee          = v17.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v17.GetMempoolInfoErrMinRelayTxFee
	MempoolEntryErrNumeric                  = v17.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v17.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v17.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v17.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v17.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v17.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v17.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v17.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v17.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v17.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v17.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v17.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v17.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v17.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v17.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v17.GetNetworkInfoErrLocalAddresses
	MempoolAcceptanceErrTxid                = v17.MempoolAcceptanceErrTxid
	GetAddressesByLabelErrAddress           = v17.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v17.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v17.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v17.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v17.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v17.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v17.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v17.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v17.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v17.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v17.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v17.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v17.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v17.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v17.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v17.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v17.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v17.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v17.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v17.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v17.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v17.GetTransactionErrAmount
	GetTransactionErrFee                    = v17.GetTransactionErrFee
	GetTransactionErrBlockHash              = v17.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v17.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v17.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v17.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v17.GetTransactionErrDetails
	GetTransactionErrTx                     = v17.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v17.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v17.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v17.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v17.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v17.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v17.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v17.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v17.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v17.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v17.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v17.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v17.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v17.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v17.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v17.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v17.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v17.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v17.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v17.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v17.ListUnspentItemErrRedeemScript
)
