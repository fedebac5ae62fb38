package v23

import "github.com/DOIDFoundation/corerpc/v22"

// Replies unchanged since v22.
type (
	GetBestBlockHash                = v22.GetBestBlockHash
	GetBlockCount                   = v22.GetBlockCount
	GetBlockHash                    = v22.GetBlockHash
	GetBlockchainInfo               = v22.GetBlockchainInfo
	GetMempoolInfo                  = v22.GetMempoolInfo
	MempoolEntryFees                = v22.MempoolEntryFees
	GetMempoolAncestors             = v22.GetMempoolAncestors
	GetMempoolDescendants           = v22.GetMempoolDescendants
	GetRawMempool                   = v22.GetRawMempool
	GetBlockchainInfoErrorKind      = v22.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v22.GetBlockchainInfoError
	GetMempoolInfoErrorKind         = v22.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v22.GetMempoolInfoError
	MempoolEntryErrorKind           = v22.MempoolEntryErrorKind
	MempoolEntryError               = v22.MempoolEntryError
	MempoolEntryFeesErrorKind       = v22.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v22.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v22.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v22.MapMempoolEntryError
	GetMiningInfo                   = v22.GetMiningInfo
	GenerateToAddress               = v22.GenerateToAddress
	GetNetworkInfoNetwork           = v22.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v22.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v22.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v22.GetNetworkInfoError
	GetNetworkInfoAddressError      = v22.GetNetworkInfoAddressError
	GetRawTransaction               = v22.GetRawTransaction
	SendRawTransaction              = v22.SendRawTransaction
	TestMempoolAcceptError          = v22.TestMempoolAcceptError
	GetBalance                      = v22.GetBalance
	GetUnconfirmedBalance           = v22.GetUnconfirmedBalance
	GetReceivedByAddress            = v22.GetReceivedByAddress
	GetNewAddress                   = v22.GetNewAddress
	GetRawChangeAddress             = v22.GetRawChangeAddress
	GetAddressesByLabel             = v22.GetAddressesByLabel
	AddressInformation              = v22.AddressInformation
	GetTransaction                  = v22.GetTransaction
	GetTransactionDetail            = v22.GetTransactionDetail
	GetWalletInfo                   = v22.GetWalletInfo
	BumpFee                         = v22.BumpFee
	WalletProcessPsbt               = v22.WalletProcessPsbt
	SendToAddress                   = v22.SendToAddress
	SendMany                        = v22.SendMany
	ListUnspent                     = v22.ListUnspent
	ListUnspentItem                 = v22.ListUnspentItem
	RescanBlockchain                = v22.RescanBlockchain
	GetAddressesByLabelErrorKind    = v22.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v22.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v22.GetAddressInfoErrorKind
	GetAddressInfoError             = v22.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v22.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v22.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v22.GetTransactionErrorKind
	GetTransactionError             = v22.GetTransactionError
	GetTransactionDetailErrorKind   = v22.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v22.GetTransactionDetailError
	GetWalletInfoErrorKind          = v22.GetWalletInfoErrorKind
	GetWalletInfoError              = v22.GetWalletInfoError
	BumpFeeErrorKind                = v22.BumpFeeErrorKind
	BumpFeeError                    = v22.BumpFeeError
	WalletProcessPsbtError          = v22.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v22.ListUnspentItemErrorKind
	ListUnspentItemError            = v22.ListUnspentItemError
	GetAddressInfo                  = v22.GetAddressInfo
	GetAddressInfoEmbedded          = v22.GetAddressInfoEmbedded
	GetBalances                     = v22.GetBalances
	GetBalancesMine                 = v22.GetBalancesMine
	GetBalancesWatchOnly            = v22.GetBalancesWatchOnly
	GetBalancesErrorKind            = v22.GetBalancesErrorKind
	GetBalancesError                = v22.GetBalancesError
	BalanceErrorKind                = v22.BalanceErrorKind
	BalanceError                    = v22.BalanceError
	MempoolEntry                    = v22.MempoolEntry
	GetMempoolEntry                 = v22.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v22.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v22.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v22.GetRawMempoolVerbose
	GetNetworkInfo                  = v22.GetNetworkInfo
	MempoolAcceptanceFees           = v22.MempoolAcceptanceFees
	PsbtBumpFee                     = v22.PsbtBumpFee
	Send                            = v22.Send
	PsbtBumpFeeErrorKind            = v22.PsbtBumpFeeErrorKind
	PsbtBumpFeeError                = v22.PsbtBumpFeeError
	SendErrorKind                   = v22.SendErrorKind
	SendError                       = v22.SendError
	TestMempoolAccept               = v22.TestMempoolAccept
	MempoolAcceptance               = v22.MempoolAcceptance
	MempoolAcceptanceErrorKind      = v22.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v22.MempoolAcceptanceError
)

const (
	GetBlockchainInfoErrNumeric             = v22.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v22.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v22.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v22.GetBlockchainInfoErrChainWork
	GetMempoolInfoErrNumeric                = v22.GetMempoolInfoErrNumeric
	GetMempoolInfoErrMempoolMinFee          = v22.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v22.GetMempoolInfoErrMinRelayTxFee
	MempoolEntryErrNumeric                  = v22.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v22.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v22.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v22.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v22.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v22.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v22.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v22.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v22.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v22.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v22.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v22.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v22.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v22.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v22.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v22.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v22.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v22.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v22.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v22.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v22.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v22.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v22.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v22.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v22.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v22.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v22.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v22.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v22.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v22.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v22.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v22.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v22.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v22.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v22.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v22.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v22.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v22.GetTransactionErrAmount
	GetTransactionErrFee                    = v22.GetTransactionErrFee
	GetTransactionErrBlockHash              = v22.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v22.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v22.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v22.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v22.GetTransactionErrDetails
	GetTransactionErrTx                     = v22.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v22.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v22.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v22.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v22.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v22.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v22.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v22.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v22.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v22.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v22.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v22.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v22.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v22.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v22.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v22.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v22.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v22.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v22.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v22.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v22.ListUnspentItemErrRedeemScript
	GetBalancesErrMine                      = v22.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v22.GetBalancesErrWatchOnly
	BalanceErrTrusted                       = v22.BalanceErrTrusted
	BalanceErrUntrustedPending              = v22.BalanceErrUntrustedPending
	BalanceErrImmature                      = v22.BalanceErrImmature
	BalanceErrUsed                          = v22.BalanceErrUsed
	PsbtBumpFeeErrPsbt                      = v22.PsbtBumpFeeErrPsbt
	PsbtBumpFeeErrOriginalFee               = v22.PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee                       = v22.PsbtBumpFeeErrFee
	SendErrTxid                             = v22.SendErrTxid
	SendErrHex                              = v22.SendErrHex
	SendErrPsbt                             = v22.SendErrPsbt
	MempoolAcceptanceErrNumeric             = v22.MempoolAcceptanceErrNumeric
	MempoolAcceptanceErrTxid                = v22.MempoolAcceptanceErrTxid
	MempoolAcceptanceErrWtxid               = v22.MempoolAcceptanceErrWtxid
	MempoolAcceptanceErrBase                = v22.MempoolAcceptanceErrBase
)
