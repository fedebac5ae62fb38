package v20

import "github.com/DOIDFoundation/corerpc/v19"

// Replies unchanged since v19.
type (
	GetBestBlockHash                = v19.GetBestBlockHash
	GetBlockCount                   = v19.GetBlockCount
	GetBlockHash                    = v19.GetBlockHash
	GetBlockchainInfo               = v19.GetBlockchainInfo
	GetMempoolInfo                  = v19.GetMempoolInfo
	MempoolEntryFees                = v19.MempoolEntryFees
	GetMempoolAncestors             = v19.GetMempoolAncestors
	GetMempoolDescendants           = v19.GetMempoolDescendants
	GetRawMempool                   = v19.GetRawMempool
	GetBlockchainInfoErrorKind      = v19.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v19.GetBlockchainInfoError
	GetMempoolInfoErrorKind         = v19.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v19.GetMempoolInfoError
	MempoolEntryErrorKind           = v19.MempoolEntryErrorKind
	MempoolEntryError               = v19.MempoolEntryError
	MempoolEntryFeesErrorKind       = v19.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v19.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v19.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v19.MapMempoolEntryError
	GetMiningInfo                   = v19.GetMiningInfo
	GenerateToAddress               = v19.GenerateToAddress
	GetNetworkInfo                  = v19.GetNetworkInfo
	GetNetworkInfoNetwork           = v19.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v19.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v19.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v19.GetNetworkInfoError
	GetNetworkInfoAddressError      = v19.GetNetworkInfoAddressError
	GetRawTransaction               = v19.GetRawTransaction
	SendRawTransaction              = v19.SendRawTransaction
	TestMempoolAccept               = v19.TestMempoolAccept
	MempoolAcceptance               = v19.MempoolAcceptance
	TestMempoolAcceptError          = v19.TestMempoolAcceptError
	MempoolAcceptanceErrorKind      = v19.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v19.MempoolAcceptanceError
	GetBalance                      = v19.GetBalance
	GetUnconfirmedBalance           = v19.GetUnconfirmedBalance
	GetReceivedByAddress            = v19.GetReceivedByAddress
	GetNewAddress                   = v19.GetNewAddress
	GetRawChangeAddress             = v19.GetRawChangeAddress
	GetAddressesByLabel             = v19.GetAddressesByLabel
	AddressInformation              = v19.AddressInformation
	GetTransaction                  = v19.GetTransaction
	GetTransactionDetail            = v19.GetTransactionDetail
	GetWalletInfo                   = v19.GetWalletInfo
	BumpFee                         = v19.BumpFee
	WalletProcessPsbt               = v19.WalletProcessPsbt
	SendToAddress                   = v19.SendToAddress
	SendMany                        = v19.SendMany
	ListUnspent                     = v19.ListUnspent
	ListUnspentItem                 = v19.ListUnspentItem
	RescanBlockchain                = v19.RescanBlockchain
	GetAddressesByLabelErrorKind    = v19.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v19.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v19.GetAddressInfoErrorKind
	GetAddressInfoError             = v19.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v19.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v19.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v19.GetTransactionErrorKind
	GetTransactionError             = v19.GetTransactionError
	GetTransactionDetailErrorKind   = v19.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v19.GetTransactionDetailError
	GetWalletInfoErrorKind          = v19.GetWalletInfoErrorKind
	GetWalletInfoError              = v19.GetWalletInfoError
	BumpFeeErrorKind                = v19.BumpFeeErrorKind
	BumpFeeError                    = v19.BumpFeeError
	WalletProcessPsbtError          = v19.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v19.ListUnspentItemErrorKind
	ListUnspentItemError            = v19.ListUnspentItemError
	GetAddressInfo                  = v19.GetAddressInfo
	GetAddressInfoEmbedded          = v19.GetAddressInfoEmbedded
	MempoolEntry                    = v19.MempoolEntry
	GetMempoolEntry                 = v19.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v19.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v19.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v19.GetRawMempoolVerbose
	GetBalances                     = v19.GetBalances
	GetBalancesMine                 = v19.GetBalancesMine
	GetBalancesWatchOnly            = v19.GetBalancesWatchOnly
	GetBalancesErrorKind            = v19.GetBalancesErrorKind
	GetBalancesError                = v19.GetBalancesError
	BalanceErrorKind                = v19.BalanceErrorKind
	BalanceError                    = v19.BalanceError
)

const (
	GetBlockchainInfoErrNumeric             = v19.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v19.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v19.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v19.GetBlockchainInfoErrChainWork
	GetMempoolInfoErrNumeric                = v19.GetMempoolInfoErrNumeric
	GetMempoolInfoErrMempoolMinFee          = v19.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v19.GetMempoolInfoErrMinRelayTxFee
	MempoolEntryErrNumeric                  = v19.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v19.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v19.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v19.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v19.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v19.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v19.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v19.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v19.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v19.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v19.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v19.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v19.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v19.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v19.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v19.GetNetworkInfoErrLocalAddresses
	MempoolAcceptanceErrTxid                = v19.MempoolAcceptanceErrTxid
	GetAddressesByLabelErrAddress           = v19.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v19.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v19.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v19.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v19.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v19.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v19.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v19.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v19.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v19.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v19.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v19.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v19.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v19.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v19.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v19.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v19.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v19.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v19.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v19.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v19.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v19.GetTransactionErrAmount
	GetTransactionErrFee                    = v19.GetTransactionErrFee
	GetTransactionErrBlockHash              = v19.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v19.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v19.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v19.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v19.GetTransactionErrDetails
	GetTransactionErrTx                     = v19.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v19.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v19.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v19.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v19.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v19.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v19.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v19.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v19.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v19.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v19.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v19.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v19.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v19.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v19.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v19.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v19.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v19.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v19.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v19.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v19.ListUnspentItemErrRedeemScript
	GetBalancesErrMine                      = v19.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v19.GetBalancesErrWatchOnly
	BalanceErrTrusted                       = v19.BalanceErrTrusted
	BalanceErrUntrustedPending              = v19.BalanceErrUntrustedPending
	BalanceErrImmature                      = v19.BalanceErrImmature
	BalanceErrUsed                          = v19.BalanceErrUsed
)
