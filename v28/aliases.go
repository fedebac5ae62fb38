package v28

import "github.com/DOIDFoundation/corerpc/v27"

// Replies unchanged since v27.
type (
	GetBestBlockHash                = v27.GetBestBlockHash
	GetBlockCount                   = v27.GetBlockCount
	GetBlockHash                    = v27.GetBlockHash
	MempoolEntryFees                = v27.MempoolEntryFees
	GetMempoolAncestors             = v27.GetMempoolAncestors
	GetMempoolDescendants           = v27.GetMempoolDescendants
	GetRawMempool                   = v27.GetRawMempool
	GetBlockchainInfoErrorKind      = v27.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v27.GetBlockchainInfoError
	MempoolEntryErrorKind           = v27.MempoolEntryErrorKind
	MempoolEntryError               = v27.MempoolEntryError
	MempoolEntryFeesErrorKind       = v27.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v27.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v27.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v27.MapMempoolEntryError
	GetMiningInfo                   = v27.GetMiningInfo
	GenerateToAddress               = v27.GenerateToAddress
	GetNetworkInfoNetwork           = v27.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v27.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v27.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v27.GetNetworkInfoError
	GetNetworkInfoAddressError      = v27.GetNetworkInfoAddressError
	GetRawTransaction               = v27.GetRawTransaction
	SendRawTransaction              = v27.SendRawTransaction
	TestMempoolAcceptError          = v27.TestMempoolAcceptError
	GetBalance                      = v27.GetBalance
	GetUnconfirmedBalance           = v27.GetUnconfirmedBalance
	GetReceivedByAddress            = v27.GetReceivedByAddress
	GetNewAddress                   = v27.GetNewAddress
	GetRawChangeAddress             = v27.GetRawChangeAddress
	GetAddressesByLabel             = v27.GetAddressesByLabel
	AddressInformation              = v27.AddressInformation
	BumpFee                         = v27.BumpFee
	SendToAddress                   = v27.SendToAddress
	SendMany                        = v27.SendMany
	ListUnspent                     = v27.ListUnspent
	ListUnspentItem                 = v27.ListUnspentItem
	RescanBlockchain                = v27.RescanBlockchain
	GetAddressesByLabelErrorKind    = v27.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v27.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v27.GetAddressInfoErrorKind
	GetAddressInfoError             = v27.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v27.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v27.GetAddressInfoEmbeddedError
	GetTransactionDetailErrorKind   = v27.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v27.GetTransactionDetailError
	BumpFeeErrorKind                = v27.BumpFeeErrorKind
	BumpFeeError                    = v27.BumpFeeError
	ListUnspentItemErrorKind        = v27.ListUnspentItemErrorKind
	ListUnspentItemError            = v27.ListUnspentItemError
	GetAddressInfo                  = v27.GetAddressInfo
	GetAddressInfoEmbedded          = v27.GetAddressInfoEmbedded
	GetBalancesMine                 = v27.GetBalancesMine
	GetBalancesWatchOnly            = v27.GetBalancesWatchOnly
	BalanceErrorKind                = v27.BalanceErrorKind
	BalanceError                    = v27.BalanceError
	MempoolEntry                    = v27.MempoolEntry
	GetMempoolEntry                 = v27.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v27.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v27.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v27.GetRawMempoolVerbose
	MempoolAcceptanceFees           = v27.MempoolAcceptanceFees
	PsbtBumpFee                     = v27.PsbtBumpFee
	Send                            = v27.Send
	PsbtBumpFeeErrorKind            = v27.PsbtBumpFeeErrorKind
	PsbtBumpFeeError                = v27.PsbtBumpFeeError
	SendErrorKind                   = v27.SendErrorKind
	SendError                       = v27.SendError
	TestMempoolAccept               = v27.TestMempoolAccept
	MempoolAcceptance               = v27.MempoolAcceptance
	MempoolAcceptanceErrorKind      = v27.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v27.MempoolAcceptanceError
	GetMempoolInfo                  = v27.GetMempoolInfo
	GetTxSpendingPrevout            = v27.GetTxSpendingPrevout
	GetTxSpendingPrevoutItem        = v27.GetTxSpendingPrevoutItem
	GetMempoolInfoErrorKind         = v27.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v27.GetMempoolInfoError
	GetTxSpendingPrevoutErrorKind   = v27.GetTxSpendingPrevoutErrorKind
	GetTxSpendingPrevoutError       = v27.GetTxSpendingPrevoutError
	LastProcessedBlock              = v27.LastProcessedBlock
	GetBalances                     = v27.GetBalances
	GetTransaction                  = v27.GetTransaction
	GetTransactionDetail            = v27.GetTransactionDetail
	GetWalletInfo                   = v27.GetWalletInfo
	Scanning                        = v27.Scanning
	WalletProcessPsbt               = v27.WalletProcessPsbt
	LastProcessedBlockErrorKind     = v27.LastProcessedBlockErrorKind
	LastProcessedBlockError         = v27.LastProcessedBlockError
	GetBalancesErrorKind            = v27.GetBalancesErrorKind
	GetBalancesError                = v27.GetBalancesError
	GetTransactionErrorKind         = v27.GetTransactionErrorKind
	GetTransactionError             = v27.GetTransactionError
	GetWalletInfoErrorKind          = v27.GetWalletInfoErrorKind
	GetWalletInfoError              = v27.GetWalletInfoError
	WalletProcessPsbtErrorKind      = v27.WalletProcessPsbtErrorKind
	WalletProcessPsbtError          = v27.WalletProcessPsbtError
)

const (
	GetBlockchainInfoErrNumeric             = v27.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v27.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v27.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v27.GetBlockchainInfoErrChainWork
	MempoolEntryErrNumeric                  = v27.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v27.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v27.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v27.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v27.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v27.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v27.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v27.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v27.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v27.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v27.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v27.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v27.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v27.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v27.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v27.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v27.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v27.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v27.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v27.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v27.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v27.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v27.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v27.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v27.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v27.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v27.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v27.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v27.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v27.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v27.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v27.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v27.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v27.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v27.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v27.GetAddressInfoEmbeddedErrPubKey
	GetTransactionDetailErrNumeric          = v27.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v27.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v27.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v27.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v27.GetTransactionDetailErrFee
	BumpFeeErrTxid                          = v27.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v27.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v27.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v27.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v27.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v27.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v27.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v27.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v27.ListUnspentItemErrRedeemScript
	BalanceErrTrusted                       = v27.BalanceErrTrusted
	BalanceErrUntrustedPending              = v27.BalanceErrUntrustedPending
	BalanceErrImmature                      = v27.BalanceErrImmature
	BalanceErrUsed                          = v27.BalanceErrUsed
	PsbtBumpFeeErrPsbt                      = v27.PsbtBumpFeeErrPsbt
	PsbtBumpFeeErrOriginalFee               = v27.PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee                       = v27.PsbtBumpFeeErrFee
	SendErrTxid                             = v27.SendErrTxid
	SendErrHex                              = v27.SendErrHex
	SendErrPsbt                             = v27.SendErrPsbt
	MempoolAcceptanceErrNumeric             = v27.MempoolAcceptanceErrNumeric
	MempoolAcceptanceErrTxid                = v27.MempoolAcceptanceErrTxid
	MempoolAcceptanceErrWtxid               = v27.MempoolAcceptanceErrWtxid
	MempoolAcceptanceErrBase                = v27.MempoolAcceptanceErrBase
	GetMempoolInfoErrNumeric                = v27.GetMempoolInfoErrNumeric
	GetMempoolInfoErrTotalFee               = v27.GetMempoolInfoErrTotalFee
	GetMempoolInfoErrMempoolMinFee          = v27.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v27.GetMempoolInfoErrMinRelayTxFee
	GetMempoolInfoErrIncrementalRelayFee    = v27.GetMempoolInfoErrIncrementalRelayFee
	GetTxSpendingPrevoutErrNumeric          = v27.GetTxSpendingPrevoutErrNumeric
	GetTxSpendingPrevoutErrTxid             = v27.GetTxSpendingPrevoutErrTxid
	GetTxSpendingPrevoutErrSpendingTxid     = v27.GetTxSpendingPrevoutErrSpendingTxid
	LastProcessedBlockErrHash               = v27.LastProcessedBlockErrHash
	LastProcessedBlockErrHeight             = v27.LastProcessedBlockErrHeight
	GetBalancesErrMine                      = v27.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v27.GetBalancesErrWatchOnly
	GetBalancesErrLastProcessedBlock        = v27.GetBalancesErrLastProcessedBlock
	GetTransactionErrNumeric                = v27.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v27.GetTransactionErrAmount
	GetTransactionErrFee                    = v27.GetTransactionErrFee
	GetTransactionErrBlockHash              = v27.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v27.GetTransactionErrTxid
	GetTransactionErrWtxid                  = v27.GetTransactionErrWtxid
	GetTransactionErrWalletConflicts        = v27.GetTransactionErrWalletConflicts
	GetTransactionErrReplacedByTxid         = v27.GetTransactionErrReplacedByTxid
	GetTransactionErrReplacesTxid           = v27.GetTransactionErrReplacesTxid
	GetTransactionErrMempoolConflicts       = v27.GetTransactionErrMempoolConflicts
	GetTransactionErrBip125Replaceable      = v27.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v27.GetTransactionErrDetails
	GetTransactionErrTx                     = v27.GetTransactionErrTx
	GetTransactionErrLastProcessedBlock     = v27.GetTransactionErrLastProcessedBlock
	GetWalletInfoErrNumeric                 = v27.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v27.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v27.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v27.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v27.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v27.GetWalletInfoErrHdSeedID
	GetWalletInfoErrLastProcessedBlock      = v27.GetWalletInfoErrLastProcessedBlock
	WalletProcessPsbtErrPsbt                = v27.WalletProcessPsbtErrPsbt
	WalletProcessPsbtErrHex                 = v27.WalletProcessPsbtErrHex
)
