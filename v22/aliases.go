package v22

import "github.com/DOIDFoundation/corerpc/v21"

// Replies unchanged since v21.
type (
	GetBestBlockHash                = v21.GetBestBlockHash
	GetBlockCount                   = v21.GetBlockCount
	GetBlockHash                    = v21.GetBlockHash
	GetBlockchainInfo               = v21.GetBlockchainInfo
	GetMempoolInfo                  = v21.GetMempoolInfo
	MempoolEntryFees                = v21.MempoolEntryFees
	GetMempoolAncestors             = v21.GetMempoolAncestors
	GetMempoolDescendants           = v21.GetMempoolDescendants
	GetRawMempool                   = v21.GetRawMempool
	GetBlockchainInfoErrorKind      = v21.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v21.GetBlockchainInfoError
	GetMempoolInfoErrorKind         = v21.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v21.GetMempoolInfoError
	MempoolEntryErrorKind           = v21.MempoolEntryErrorKind
	MempoolEntryError               = v21.MempoolEntryError
	MempoolEntryFeesErrorKind       = v21.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v21.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v21.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v21.MapMempoolEntryError
	GetMiningInfo                   = v21.GetMiningInfo
	GenerateToAddress               = v21.GenerateToAddress
	GetNetworkInfoNetwork           = v21.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v21.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v21.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v21.GetNetworkInfoError
	GetNetworkInfoAddressError      = v21.GetNetworkInfoAddressError
	GetRawTransaction               = v21.GetRawTransaction
	SendRawTransaction              = v21.SendRawTransaction
	TestMempoolAcceptError          = v21.TestMempoolAcceptError
	GetBalance                      = v21.GetBalance
	GetUnconfirmedBalance           = v21.GetUnconfirmedBalance
	GetReceivedByAddress            = v21.GetReceivedByAddress
	GetNewAddress                   = v21.GetNewAddress
	GetRawChangeAddress             = v21.GetRawChangeAddress
	GetAddressesByLabel             = v21.GetAddressesByLabel
	AddressInformation              = v21.AddressInformation
	GetTransaction                  = v21.GetTransaction
	GetTransactionDetail            = v21.GetTransactionDetail
	GetWalletInfo                   = v21.GetWalletInfo
	BumpFee                         = v21.BumpFee
	WalletProcessPsbt               = v21.WalletProcessPsbt
	SendToAddress                   = v21.SendToAddress
	SendMany                        = v21.SendMany
	ListUnspent                     = v21.ListUnspent
	ListUnspentItem                 = v21.ListUnspentItem
	RescanBlockchain                = v21.RescanBlockchain
	GetAddressesByLabelErrorKind    = v21.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v21.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v21.GetAddressInfoErrorKind
	GetAddressInfoError             = v21.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v21.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v21.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v21.GetTransactionErrorKind
	GetTransactionError             = v21.GetTransactionError
	GetTransactionDetailErrorKind   = v21.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v21.GetTransactionDetailError
	GetWalletInfoErrorKind          = v21.GetWalletInfoErrorKind
	GetWalletInfoError              = v21.GetWalletInfoError
	BumpFeeErrorKind                = v21.BumpFeeErrorKind
	BumpFeeError                    = v21.BumpFeeError
	WalletProcessPsbtError          = v21.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v21.ListUnspentItemErrorKind
	ListUnspentItemError            = v21.ListUnspentItemError
	GetAddressInfo                  = v21.GetAddressInfo
	GetAddressInfoEmbedded          = v21.GetAddressInfoEmbedded
	GetBalances                     = v21.GetBalances
	GetBalancesMine                 = v21.GetBalancesMine
	GetBalancesWatchOnly            = v21.GetBalancesWatchOnly
	GetBalancesErrorKind            = v21.GetBalancesErrorKind
	GetBalancesError                = v21.GetBalancesError
	BalanceErrorKind                = v21.BalanceErrorKind
	BalanceError                    = v21.BalanceError
	MempoolEntry                    = v21.MempoolEntry
	GetMempoolEntry                 = v21.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v21.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v21.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v21.GetRawMempoolVerbose
	GetNetworkInfo                  = v21.GetNetworkInfo
	MempoolAcceptanceFees           = v21.MempoolAcceptanceFees
	PsbtBumpFee                     = v21.PsbtBumpFee
	Send                            = v21.Send
	PsbtBumpFeeErrorKind            = v21.PsbtBumpFeeErrorKind
	PsbtBumpFeeError                = v21.PsbtBumpFeeError
	SendErrorKind                   = v21.SendErrorKind
	SendError                       = v21.SendError
)

const (
	GetBlockchainInfoErrNumeric             = v21.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v21.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v21.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v21.GetBlockchainInfoErrChainWork
	GetMempoolInfoErrNumeric                = v21.GetMempoolInfoErrNumeric
	GetMempoolInfoErrMempoolMinFee          = v21.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v21.GetMempoolInfoErrMinRelayTxFee
	MempoolEntryErrNumeric                  = v21.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v21.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v21.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v21.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v21.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v21.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v21.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v21.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v21.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v21.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v21.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v21.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v21.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v21.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v21.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v21.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v21.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v21.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v21.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v21.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v21.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v21.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v21.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v21.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v21.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v21.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v21.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v21.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v21.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v21.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v21.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v21.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v21.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v21.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v21.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v21.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v21.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v21.GetTransactionErrAmount
	GetTransactionErrFee                    = v21.GetTransactionErrFee
	GetTransactionErrBlockHash              = v21.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v21.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v21.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v21.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v21.GetTransactionErrDetails
	GetTransactionErrTx                     = v21.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v21.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v21.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v21.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v21.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v21.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v21.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v21.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v21.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v21.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v21.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v21.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v21.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v21.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v21.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v21.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v21.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v21.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v21.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v21.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v21.ListUnspentItemErrRedeemScript
	GetBalancesErrMine                      = v21.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v21.GetBalancesErrWatchOnly
	BalanceErrTrusted                       = v21.BalanceErrTrusted
	BalanceErrUntrustedPending              = v21.BalanceErrUntrustedPending
	BalanceErrImmature                      = v21.BalanceErrImmature
	BalanceErrUsed                          = v21.BalanceErrUsed
	PsbtBumpFeeErrPsbt                      = v21.PsbtBumpFeeErrPsbt
	PsbtBumpFeeErrOriginalFee               = v21.PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee                       = v21.PsbtBumpFeeErrFee
	SendErrTxid                             = v21.SendErrTxid
	SendErrHex                              = v21.SendErrHex
	SendErrPsbt                             = v21.SendErrPsbt
)
