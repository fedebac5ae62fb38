package v21

import "github.com/DOIDFoundation/corerpc/v20"

// Replies unchanged since v20.
type (
	GetBestBlockHash                = v20.GetBestBlockHash
	GetBlockCount                   = v20.GetBlockCount
	GetBlockHash                    = v20.GetBlockHash
	GetBlockchainInfo               = v20.GetBlockchainInfo
	GetMempoolInfo                  = v20.GetMempoolInfo
	MempoolEntryFees                = v20.MempoolEntryFees
	GetMempoolAncestors             = v20.GetMempoolAncestors
	GetMempoolDescendants           = v20.GetMempoolDescendants
	GetRawMempool                   = v20.GetRawMempool
	GetBlockchainInfoErrorKind      = v20.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v20.GetBlockchainInfoError
	GetMempoolInfoErrorKind         = v20.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v20.GetMempoolInfoError
	MempoolEntryErrorKind           = v20.MempoolEntryErrorKind
	MempoolEntryError               = v20.MempoolEntryError
	MempoolEntryFeesErrorKind       = v20.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v20.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v20.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v20.MapMempoolEntryError
	GetMiningInfo                   = v20.GetMiningInfo
	GenerateToAddress               = v20.GenerateToAddress
	GetNetworkInfoNetwork           = v20.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v20.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v20.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v20.GetNetworkInfoError
	GetNetworkInfoAddressError      = v20.GetNetworkInfoAddressError
	GetRawTransaction               = v20.GetRawTransaction
	SendRawTransaction              = v20.SendRawTransaction
	TestMempoolAcceptError          = v20.TestMempoolAcceptError
	GetBalance                      = v20.GetBalance
	GetUnconfirmedBalance           = v20.GetUnconfirmedBalance
	GetReceivedByAddress            = v20.GetReceivedByAddress
	GetNewAddress                   = v20.GetNewAddress
	GetRawChangeAddress             = v20.GetRawChangeAddress
	GetAddressesByLabel             = v20.GetAddressesByLabel
	AddressInformation              = v20.AddressInformation
	GetTransaction                  = v20.GetTransaction
	GetTransactionDetail            = v20.GetTransactionDetail
	GetWalletInfo                   = v20.GetWalletInfo
	BumpFee                         = v20.BumpFee
	WalletProcessPsbt               = v20.WalletProcessPsbt
	SendToAddress                   = v20.SendToAddress
	SendMany                        = v20.SendMany
	ListUnspent                     = v20.ListUnspent
	ListUnspentItem                 = v20.ListUnspentItem
	RescanBlockchain                = v20.RescanBlockchain
	GetAddressesByLabelErrorKind    = v20.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v20.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v20.GetAddressInfoErrorKind
	GetAddressInfoError             = v20.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v20.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v20.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v20.GetTransactionErrorKind
	GetTransactionError             = v20.GetTransactionError
	GetTransactionDetailErrorKind   = v20.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v20.GetTransactionDetailError
	GetWalletInfoErrorKind          = v20.GetWalletInfoErrorKind
	GetWalletInfoError              = v20.GetWalletInfoError
	BumpFeeErrorKind                = v20.BumpFeeErrorKind
	BumpFeeError                    = v20.BumpFeeError
	WalletProcessPsbtError          = v20.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v20.ListUnspentItemErrorKind
	ListUnspentItemError            = v20.ListUnspentItemError
	GetAddressInfo                  = v20.GetAddressInfo
	GetAddressInfoEmbedded          = v20.GetAddressInfoEmbedded
	GetBalances                     = v20.GetBalances
	GetBalancesMine                 = v20.GetBalancesMine
	GetBalancesWatchOnly            = v20.GetBalancesWatchOnly
	GetBalancesErrorKind            = v20.GetBalancesErrorKind
	GetBalancesError                = v20.GetBalancesError
	BalanceErrorKind                = v20.BalanceErrorKind
	BalanceError                    = v20.BalanceError
)

const (
	GetBlockchainInfoErrNumeric             = v20.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v20.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v20.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v20.GetBlockchainInfoErrChainWork
	GetMempoolInfoErrNumeric                = v20.GetMempoolInfoErrNumeric
	GetMempoolInfoErrMempoolMinFee          = v20.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v20.GetMempoolInfoErrMinRelayTxFee
	MempoolEntryErrNumeric                  = v20.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v20.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v20.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v20.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v20.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v20.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v20.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v20.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v20.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v20.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v20.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v20.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v20.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v20.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v20.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v20.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v20.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v20.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v20.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v20.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v20.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v20.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v20.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v20.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v20.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v20.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v20.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v20.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v20.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v20.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v20.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v20.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v20.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v20.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v20.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v20.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v20.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v20.GetTransactionErrAmount
	GetTransactionErrFee                    = v20.GetTransactionErrFee
	GetTransactionErrBlockHash              = v20.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v20.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v20.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v20.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v20.GetTransactionErrDetails
	GetTransactionErrTx                     = v20.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v20.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v20.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v20.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v20.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v20.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v20.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v20.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v20.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v20.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v20.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v20.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v20.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v20.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v20.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v20.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v20.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v20.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v20.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v20.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v20.ListUnspentItemErrRedeemScript
	GetBalancesErrMine                      = v20.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v20.GetBalancesErrWatchOnly
	BalanceErrTrusted                       = v20.BalanceErrTrusted
	BalanceErrUntrustedPending              = v20.BalanceErrUntrustedPending
	BalanceErrImmature                      = v20.BalanceErrImmature
	BalanceErrUsed                          = v20.BalanceErrUsed
)
