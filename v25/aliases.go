package v25

import "github.com/DOIDFoundation/corerpc/v24"

// Replies unchanged since v24.
type (
	GetBestBlockHash                = v24.GetBestBlockHash
	GetBlockCount                   = v24.GetBlockCount
	GetBlockHash                    = v24.GetBlockHash
	GetBlockchainInfo               = v24.GetBlockchainInfo
	MempoolEntryFees                = v24.MempoolEntryFees
	GetMempoolAncestors             = v24.GetMempoolAncestors
	GetMempoolDescendants           = v24.GetMempoolDescendants
	GetRawMempool                   = v24.GetRawMempool
	GetBlockchainInfoErrorKind      = v24.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v24.GetBlockchainInfoError
	MempoolEntryErrorKind           = v24.MempoolEntryErrorKind
	MempoolEntryError               = v24.MempoolEntryError
	MempoolEntryFeesErrorKind       = v24.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v24.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v24.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v24.MapMempoolEntryError
	GetMiningInfo                   = v24.GetMiningInfo
	GenerateToAddress               = v24.GenerateToAddress
	GetNetworkInfoNetwork           = v24.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v24.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v24.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v24.GetNetworkInfoError
	GetNetworkInfoAddressError      = v24.GetNetworkInfoAddressError
	GetRawTransaction               = v24.GetRawTransaction
	SendRawTransaction              = v24.SendRawTransaction
	TestMempoolAcceptError          = v24.TestMempoolAcceptError
	GetBalance                      = v24.GetBalance
	GetUnconfirmedBalance           = v24.GetUnconfirmedBalance
	GetReceivedByAddress            = v24.GetReceivedByAddress
	GetNewAddress                   = v24.GetNewAddress
	GetRawChangeAddress             = v24.GetRawChangeAddress
	GetAddressesByLabel             = v24.GetAddressesByLabel
	AddressInformation              = v24.AddressInformation
	GetTransaction                  = v24.GetTransaction
	GetTransactionDetail            = v24.GetTransactionDetail
	GetWalletInfo                   = v24.GetWalletInfo
	BumpFee                         = v24.BumpFee
	WalletProcessPsbt               = v24.WalletProcessPsbt
	SendToAddress                   = v24.SendToAddress
	SendMany                        = v24.SendMany
	ListUnspent                     = v24.ListUnspent
	ListUnspentItem                 = v24.ListUnspentItem
	RescanBlockchain                = v24.RescanBlockchain
	GetAddressesByLabelErrorKind    = v24.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v24.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v24.GetAddressInfoErrorKind
	GetAddressInfoError             = v24.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v24.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v24.GetAddressInfoEmbeddedError
	GetTransactionErrorKind         = v24.GetTransactionErrorKind
	GetTransactionError             = v24.GetTransactionError
	GetTransactionDetailErrorKind   = v24.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v24.GetTransactionDetailError
	GetWalletInfoErrorKind          = v24.GetWalletInfoErrorKind
	GetWalletInfoError              = v24.GetWalletInfoError
	BumpFeeErrorKind                = v24.BumpFeeErrorKind
	BumpFeeError                    = v24.BumpFeeError
	WalletProcessPsbtError          = v24.WalletProcessPsbtError
	ListUnspentItemErrorKind        = v24.ListUnspentItemErrorKind
	ListUnspentItemError            = v24.ListUnspentItemError
	GetAddressInfo                  = v24.GetAddressInfo
	GetAddressInfoEmbedded          = v24.GetAddressInfoEmbedded
	GetBalances                     = v24.GetBalances
	GetBalancesMine                 = v24.GetBalancesMine
	GetBalancesWatchOnly            = v24.GetBalancesWatchOnly
	GetBalancesErrorKind            = v24.GetBalancesErrorKind
	GetBalancesError                = v24.GetBalancesError
	BalanceErrorKind                = v24.BalanceErrorKind
	BalanceError                    = v24.BalanceError
	MempoolEntry                    = v24.MempoolEntry
	GetMempoolEntry                 = v24.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v24.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v24.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v24.GetRawMempoolVerbose
	GetNetworkInfo                  = v24.GetNetworkInfo
	MempoolAcceptanceFees           = v24.MempoolAcceptanceFees
	PsbtBumpFee                     = v24.PsbtBumpFee
	Send                            = v24.Send
	PsbtBumpFeeErrorKind            = v24.PsbtBumpFeeErrorKind
	PsbtBumpFeeError                = v24.PsbtBumpFeeError
	SendErrorKind                   = v24.SendErrorKind
	SendError                       = v24.SendError
	TestMempoolAccept               = v24.TestMempoolAccept
	MempoolAcceptance               = v24.MempoolAcceptance
	MempoolAcceptanceErrorKind      = v24.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v24.MempoolAcceptanceError
	GetMempoolInfo                  = v24.GetMempoolInfo
	GetTxSpendingPrevout            = v24.GetTxSpendingPrevout
	GetTxSpendingPrevoutItem        = v24.GetTxSpendingPrevoutItem
	GetMempoolInfoErrorKind         = v24.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v24.GetMempoolInfoError
	GetTxSpendingPrevoutErrorKind   = v24.GetTxSpendingPrevoutErrorKind
	GetTxSpendingPrevoutError       = v24.GetTxSpendingPrevoutError
)

const (
	GetBlockchainInfoErrNumeric             = v24.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v24.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v24.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v24.GetBlockchainInfoErrChainWork
	MempoolEntryErrNumeric                  = v24.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v24.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v24.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v24.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v24.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v24.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v24.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v24.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v24.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v24.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v24.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v24.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v24.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v24.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v24.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v24.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v24.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v24.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v24.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v24.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v24.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v24.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v24.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v24.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v24.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v24.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v24.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v24.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v24.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v24.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v24.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v24.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v24.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v24.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v24.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v24.GetAddressInfoEmbeddedErrPubKey
	GetTransactionErrNumeric                = v24.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v24.GetTransactionErrAmount
	GetTransactionErrFee                    = v24.GetTransactionErrFee
	GetTransactionErrBlockHash              = v24.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v24.GetTransactionErrTxid
	GetTransactionErrWalletConflicts        = v24.GetTransactionErrWalletConflicts
	GetTransactionErrBip125Replaceable      = v24.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v24.GetTransactionErrDetails
	GetTransactionErrTx                     = v24.GetTransactionErrTx
	GetTransactionDetailErrNumeric          = v24.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v24.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v24.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v24.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v24.GetTransactionDetailErrFee
	GetWalletInfoErrNumeric                 = v24.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v24.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v24.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v24.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v24.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v24.GetWalletInfoErrHdSeedID
	BumpFeeErrTxid                          = v24.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v24.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v24.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v24.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v24.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v24.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v24.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v24.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v24.ListUnspentItemErrRedeemScript
	GetBalancesErrMine                      = v24.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v24.GetBalancesErrWatchOnly
	BalanceErrTrusted                       = v24.BalanceErrTrusted
	BalanceErrUntrustedPending              = v24.BalanceErrUntrustedPending
	BalanceErrImmature                      = v24.BalanceErrImmature
	BalanceErrUsed                          = v24.BalanceErrUsed
	PsbtBumpFeeErrPsbt                      = v24.PsbtBumpFeeErrPsbt
	PsbtBumpFeeErrOriginalFee               = v24.PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee                       = v24.PsbtBumpFeeErrFee
	SendErrTxid                             = v24.SendErrTxid
	SendErrHex                              = v24.SendErrHex
	SendErrPsbt                             = v24.SendErrPsbt
	MempoolAcceptanceErrNumeric             = v24.MempoolAcceptanceErrNumeric
	MempoolAcceptanceErrTxid                = v24.MempoolAcceptanceErrTxid
	MempoolAcceptanceErrWtxid               = v24.MempoolAcceptanceErrWtxid
	MempoolAcceptanceErrBase                = v24.MempoolAcceptanceErrBase
	GetMempoolInfoErrNumeric                = v24.GetMempoolInfoErrNumeric
	GetMempoolInfoErrTotalFee               = v24.GetMempoolInfoErrTotalFee
	GetMempoolInfoErrMempoolMinFee          = v24.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v24.GetMempoolInfoErrMinRelayTxFee
	GetMempoolInfoErrIncrementalRelayFee    = v24.GetMempoolInfoErrIncrementalRelayFee
	GetTxSpendingPrevoutErrNumeric          = v24.GetTxSpendingPrevoutErrNumeric
	GetTxSpendingPrevoutErrTxid             = v24.GetTxSpendingPrevoutErrTxid
	GetTxSpendingPrevoutErrSpendingTxid     = v24.GetTxSpendingPrevoutErrSpendingTxid
)
