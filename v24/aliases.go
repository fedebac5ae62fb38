package v24

import "github.com/DOIDFoundation/corerpc/v23"

// Replies unchanged since v23.
type (
	GetBestBlockHash                = v23.GetBestBlockHash
	GetBlockCount                   = v23.GetBlockCount
	GetBlockHash                    = v23.GetBlockHash
	GetBlockchainInfo               = v23.GetBlockchainInfo
	MempoolEntryFees                = v23.MempoolEntryFees
	GetMempoolAncestors             = v23.GetMempoolAncestors
	GetMempoolDescendants           = v23.GetMempoolDescendants
	GetRawMempool                   = v23.GetRawMempool
	GetBlockchainInfoErrorKind      = v23.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v23.GetBlockchainInfoError
	MempoolEntryErrorKind           = v23.MempoolEntryErrorKind
	MempoolEntryError               = v23.MempoolEntryError
	MempoolEntryFeesErrorKind       = v23.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v23.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v23.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v23.MapMempoolEntryError
	GetMiningInfo                   = v23.GetMiningInfo
	GenerateToAddress               = v23.GenerateToAddress
	GetNetworkInfoNetwork           = v23.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v23.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v23.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v23.GetNetworkInfoError
	GetNetworkInfoAddressError      = v23.GetNetworkInfoAddressError
	GetRawTransaction               = v23.GetRawTransaction
	SendRawTransaction              = v23.SendRawTransaction
	TestMempoolAcceptError          = v23.TestMempoolAcceptError
	GetBalance                      = v23.GetBalance
	GetUnconfirmedBalance           = v23.GetUnconfirmedBalance
	GetReceivedByAddress            = v23.GetReceivedByAddress
	GetNewAddress                   = v23.GetNewAddress
	GetRawChangeAddress             = v23.GetRawChangeAddress
	GetAddressesByLabel             = v23.GetAddressesByLabel
	AddressInformation              = v23.AddressInformation
	GetTransaction                  = v23.GetTransaction
	GetTransactionDetail            = v23.GetTransactionDetail
	GetWalletInfo                   = v23.GetWalletInfo
	BumpFee                         = v23.BumpFee
	WalletProcessPsbt               = v23.WalletProcessPsbt
	SendToAddress                   = v23.SendToAddress
	SendMany                        = v23.SendMany
	ListUnspent                     = v23.ListUnspent
	ListUnspentItem                 = v23.ListUnspentItem
	RescanBlockchain                = v23.RescanBlockchain
	GetAddressesByLabelErrorKind    = v23.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v23.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v23.GetAddressInfoErrorKind
	GetAddressInfoError             = v23.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v23.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v23.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v23.GetTransactionErrorKind
	GetTransactionError             = v23.GetTransactionError
	GetTransactionDetailErrorKind   = v23.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v23.GetTransactionDetailError
	GetWalletInfoErrorKind          = v23.GetWalletInfoErrorKind
	GetWalletInfoError              = v23.GetWalletInfoError
	BumpFeeErrorKind                = v23.BumpFeeErrorKind
	BumpFeeError                    = v23.BumpFeeError
	WalletProcessPsbtError          = v23.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v23.ListUnspentItemErrorKind
	ListUnspentItemError            = v23.ListUnspentItemError
	GetAddressInfo                  = v23.GetAddressInfo
	GetAddressInfoEmbedded          = v23.GetAddressInfoEmbedded
	GetBalances                     = v23.GetBalances
	GetBalancesMine                 = v23.GetBalancesMine
	GetBalancesWatchOnly            = v23.GetBalancesWatchOnly
	GetBalancesErrorKind            = v23.GetBalancesErrorKind
	GetBalancesError                = v23.GetBalancesError
	BalanceErrorKind                = v23.BalanceErrorKind
	BalanceError                    = v23.BalanceError
	MempoolEntry                    = v23.MempoolEntry
	GetMempoolEntry                 = v23.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v23.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v23.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v23.GetRawMempoolVerbose
	GetNetworkInfo                  = v23.GetNetworkInfo
	MempoolAcceptanceFees           = v23.MempoolAcceptanceFees
	PsbtBumpFee                     = v23.PsbtBumpFee
	Send                            = v23.Send
	PsbtBumpFeeErrorKind            = v23.PsbtBumpFeeErrorKind
	PsbtBumpFeeError                = v23.PsbtBumpFeeError
	SendErrorKind                   = v23.SendErrorKind
	SendError                       = v23.SendError
	TestMempoolAccept               = v23.TestMempoolAccept
	MempoolAcceptance               = v23.MempoolAcceptance
	MempoolAcceptanceErrorKind      = v23.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v23.MempoolAcceptanceError
)

const (
	GetBlockchainInfoErrNumeric             = v23.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v23.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v23.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v23.GetBlockchainInfoErrChainWork
	MempoolEntryErrNumeric                  = v23.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v23.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v23.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v23.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v23.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v23.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v23.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v23.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v23.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v23.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v23.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v23.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v23.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v23.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v23.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v23.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v23.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v23.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v23.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v23.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v23.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v23.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v23.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v23.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v23.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v23.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v23.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v23.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v23.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v23.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v23.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v23.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v23.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v23.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v23.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v23.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v23.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v23.GetTransactionErrAmount
	GetTransactionErrFee                    = v23.GetTransactionErrFee
	GetTransactionErrBlockHash              = v23.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v23.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v23.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v23.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v23.GetTransactionErrDetails
	GetTransactionErrTx                     = v23.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v23.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v23.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v23.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v23.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v23.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v23.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v23.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v23.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v23.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v23.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v23.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v23.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v23.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v23.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v23.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v23.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v23.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v23.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v23.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v23.ListUnspentItemErrRedeemScript
	GetBalancesErrMine                      = v23.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v23.GetBalancesErrWatchOnly
	BalanceErrTrusted                       = v23.BalanceErrTrusted
	BalanceErrUntrustedPending              = v23.BalanceErrUntrustedPending
	BalanceErrImmature                      = v23.BalanceErrImmature
	BalanceErrUsed                          = v23.BalanceErrUsed
	PsbtBumpFeeErrPsbt                      = v23.PsbtBumpFeeErrPsbt
	PsbtBumpFeeErrOriginalFee               = v23.PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee                       = v23.PsbtBumpFeeErrFee
	SendErrTxid                             = v23.SendErrTxid
	SendErrHex                              = v23.SendErrHex
	SendErrPsbt                             = v23.SendErrPsbt
	MempoolAcceptanceErrNumeric             = v23.MempoolAcceptanceErrNumeric
	MempoolAcceptanceErrTxid                = v23.MempoolAcceptanceErrTxid
	MempoolAcceptanceErrWtxid               = v23.MempoolAcceptanceErrWtxid
	MempoolAcceptanceErrBase                = v23.MempoolAcceptanceErrBase
)
