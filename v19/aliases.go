package v19

import "github.com/DOIDFoundation/corerpc/v18"

// Replies unchanged since v18.
type (
	GetBestBlockHash                = v18.GetBestBlockHash
	GetBlockCount                   = v18.GetBlockCount
	GetBlockHash                    = v18.GetBlockHash
	GetBlockchainInfo               = v18.GetBlockchainInfo
	GetMempoolInfo                  = v18.GetMempoolInfo
	MempoolEntryFees                = v18.MempoolEntryFees
	GetMempoolAncestors             = v18.GetMempoolAncestors
	GetMempoolDescendants           = v18.GetMempoolDescendants
	GetRawMempool                   = v18.GetRawMempool
	GetBlockchainInfoErrorKind      = v18.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v18.GetBlockchainInfoError
	GetMempoolInfoErrorKind         = v18.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v18.GetMempoolInfoError
	MempoolEntryErrorKind           = v18.MempoolEntryErrorKind
	MempoolEntryError               = v18.MempoolEntryError
	MempoolEntryFeesErrorKind       = v18.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v18.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v18.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v18.MapMempoolEntryError
	GetMiningInfo                   = v18.GetMiningInfo
	GenerateToAddress               = v18.GenerateToAddress
	GetNetworkInfo                  = v18.GetNetworkInfo
	GetNetworkInfoNetwork           = v18.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v18.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v18.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v18.GetNetworkInfoError
	GetNetworkInfoAddressError      = v18.GetNetworkInfoAddressError
	GetRawTransaction               = v18.GetRawTransaction
	SendRawTransaction              = v18.SendRawTransaction
	TestMempoolAccept               = v18.TestMempoolAccept
	MempoolAcceptance               = v18.MempoolAcceptance
	TestMempoolAcceptError          = v18.TestMempoolAcceptError
	MempoolAcceptanceErrorKind      = v18.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v18.MempoolAcceptanceError
	GetBalance                      = v18.GetBalance
	GetUnconfirmedBalance           = v18.GetUnconfirmedBalance
	GetReceivedByAddress            = v18.GetReceivedByAddress
	GetNewAddress                   = v18.GetNewAddress
	GetRawChangeAddress             = v18.GetRawChangeAddress
	GetAddressesByLabel             = v18.GetAddressesByLabel
	AddressInformation              = v18.AddressInformation
	GetTransaction                  = v18.GetTransaction
	GetTransactionDetail            = v18.GetTransactionDetail
	GetWalletInfo                   = v18.GetWalletInfo
	BumpFee                         = v18.BumpFee
	WalletProcessPsbt               = v18.WalletProcessPsbt
	SendToAddress                   = v18.SendToAddress
	SendMany                        = v18.SendMany
	ListUnspent                     = v18.ListUnspent
	ListUnspentItem                 = v18.ListUnspentItem
	RescanBlockchain                = v18.RescanBlockchain
	GetAddressesByLabelErrorKind    = v18.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v18.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v18.GetAddressInfoErrorKind
	GetAddressInfoError             = v18.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v18.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v18.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v18.GetTransactionErrorKind
	GetTransactionError             = v18.GetTransactionError
	GetTransactionDetailErrorKind   = v18.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v18.GetTransactionDetailError
	GetWalletInfoErrorKind          = v18.GetWalletInfoErrorKind
	GetWalletInfoError              = v18.GetWalletInfoError
	BumpFeeErrorKind                = v18.BumpFeeErrorKind
	BumpFeeError                    = v18.BumpFeeError
	WalletProcessPsbtError          = v18.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v18.ListUnspentItemErrorKind
	ListUnspentItemError            = v18.ListUnspentItemError
	GetAddressInfo                  = v18.GetAddressInfo
	GetAddressInfoEmbedded          = v18.GetAddressInfoEmbedded
)

const (
	GetBlockchainInfoErrNumeric             = v18.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v18.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v18.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v18.GetBlockchainInfoErrChainWork
	GetMempoolInfoErrNumeric                = v18.GetMempoolInfoErrNumeric
	GetMempoolInfoErrMempoolMinFee          = v18.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v18.GetMempoolInfoErrMinRelayTxFee
	MempoolEntryErrNumeric                  = v18.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v18.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v18.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v18.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v18.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v18.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v18.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v18.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v18.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v18.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v18.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v18.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v18.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v18.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v18.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v18.GetNetworkInfoErrLocalAddresses
	MempoolAcceptanceErrTxid                = v18.MempoolAcceptanceErrTxid
	GetAddressesByLabelErrAddress           = v18.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v18.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v18.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v18.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v18.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v18.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v18.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v18.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v18.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v18.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v18.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v18.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v18.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v18.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v18.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v18.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v18.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v18.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v18.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v18.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v18.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v18.GetTransactionErrAmount
	GetTransactionErrFee                    = v18.GetTransactionErrFee
	GetTransactionErrBlockHash              = v18.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v18.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v18.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v18.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v18.GetTransactionErrDetails
	GetTransactionErrTx                     = v18.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v18.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v18.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v18.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v18.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v18.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v18.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v18.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v18.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v18.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v18.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v18.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v18.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v18.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v18.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v18.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v18.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v18.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v18.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v18.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v18.ListUnspentItemErrRedeemScript
)
