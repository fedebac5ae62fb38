package v27

import "github.com/DOIDFoundation/corerpc/v26"

// Replies unchanged since v26.
type (
	GetBestBlockHash                = v26.GetBestBlockHash
	GetBlockCount                   = v26.GetBlockCount
	GetBlockHash                    = v26.GetBlockHash
	GetBlockchainInfo               = v26.GetBlockchainInfo
	MempoolEntryFees                = v26.MempoolEntryFees
	GetMempoolAncestors             = v26.GetMempoolAncestors
	GetMempoolDescendants           = v26.GetMempoolDescendants
	GetRawMempool                   = v26.GetRawMempool
	GetBlockchainInfoErrorKind      = v26.GetBlockchainInfoErrorKind
	GetBlockchainInfoError          = v26.GetBlockchainInfoError
	MempoolEntryErrorKind           = v26.MempoolEntryErrorKind
	MempoolEntryError               = v26.MempoolEntryError
	MempoolEntryFeesErrorKind       = v26.MempoolEntryFeesErrorKind
	MempoolEntryFeesError           = v26.MempoolEntryFeesError
	MapMempoolEntryErrorKind        = v26.MapMempoolEntryErrorKind
	MapMempoolEntryError            = v26.MapMempoolEntryError
	GetMiningInfo                   = v26.GetMiningInfo
	GenerateToAddress               = v26.GenerateToAddress
	GetNetworkInfoNetwork           = v26.GetNetworkInfoNetwork
	GetNetworkInfoAddress           = v26.GetNetworkInfoAddress
	GetNetworkInfoErrorKind         = v26.GetNetworkInfoErrorKind
	GetNetworkInfoError             = v26.GetNetworkInfoError
	GetNetworkInfoAddressError      = v26.GetNetworkInfoAddressError
	GetRawTransaction               = v26.GetRawTransaction
	SendRawTransaction              = v26.SendRawTransaction
	TestMempoolAcceptError          = v26.TestMempoolAcceptError
	GetBalance                      = v26.GetBalance
	GetUnconfirmedBalance           = v26.GetUnconfirmedBalance
	GetReceivedByAddress            = v26.GetReceivedByAddress
	GetNewAddress                   = v26.GetNewAddress
	GetRawChangeAddress             = v26.GetRawChangeAddress
	GetAddressesByLabel             = v26.GetAddressesByLabel
	AddressInformation              = v26.AddressInformation
	BumpFee                         = v26.BumpFee
	SendToAddress                   = v26.SendToAddress
	SendMany                        = v26.SendMany
	ListUnspent                     = v26.ListUnspent
	ListUnspentItem                 = v26.ListUnspentItem
	RescanBlockchain                = v26.RescanBlockchain
	GetAddressesByLabelErrorKind    = v26.GetAddressesByLabelErrorKind
	GetAddressesByLabelError        = v26.GetAddressesByLabelError
	GetAddressInfoErrorKind         = v26.GetAddressInfoErrorKind
	GetAddressInfoError             = v26.GetAddressInfoError
	GetAddressInfoEmbeddedErrorKind = v26.GetAddressInfoEmbeddedErrorKind
	GetAddressInfoEmbeddedError     = v26.GetAddressInfoEmbeddedError
	GetTransactionDetailErrorKind   = v26.GetTransactionDetailErrorKind
	GetTransactionDetailError       = v26.GetTransactionDetailError
	BumpFeeErrorKind                = v26.BumpFeeErrorKind
	BumpFeeError                    = v26.BumpFeeError
	ListUnspentItemErrorKind        = v26.ListUnspentItemErrorKind
	ListUnspentItemError            = v26.ListUnspentItemError
	GetAddressInfo                  = v26.GetAddressInfo
	GetAddressInfoEmbedded          = v26.GetAddressInfoEmbedded
	GetBalancesMine                 = v26.GetBalancesMine
	GetBalancesWatchOnly            = v26.GetBalancesWatchOnly
	BalanceErrorKind                = v26.BalanceErrorKind
	BalanceError                    = v26.BalanceError
	MempoolEntry                    = v26.MempoolEntry
	GetMempoolEntry                 = v26.GetMempoolEntry
	GetMempoolAncestorsVerbose      = v26.GetMempoolAncestorsVerbose
	GetMempoolDescendantsVerbose    = v26.GetMempoolDescendantsVerbose
	GetRawMempoolVerbose            = v26.GetRawMempoolVerbose
	GetNetworkInfo                  = v26.GetNetworkInfo
	MempoolAcceptanceFees           = v26.MempoolAcceptanceFees
	PsbtBumpFee                     = v26.PsbtBumpFee
	Send                            = v26.Send
	PsbtBumpFeeErrorKind            = v26.PsbtBumpFeeErrorKind
	PsbtBumpFeeError                = v26.PsbtBumpFeeError
	SendErrorKind                   = v26.SendErrorKind
	SendError                       = v26.SendError
	TestMempoolAccept               = v26.TestMempoolAccept
	MempoolAcceptance               = v26.MempoolAcceptance
	MempoolAcceptanceErrorKind      = v26.MempoolAcceptanceErrorKind
	MempoolAcceptanceError          = v26.MempoolAcceptanceError
	GetMempoolInfo                  = v26.GetMempoolInfo
	GetTxSpendingPrevout            = v26.GetTxSpendingPrevout
	GetTxSpendingPrevoutItem        = v26.GetTxSpendingPrevoutItem
	GetMempoolInfoErrorKind         = v26.GetMempoolInfoErrorKind
	GetMempoolInfoError             = v26.GetMempoolInfoError
	GetTxSpendingPrevoutErrorKind   = v26.GetTxSpendingPrevoutErrorKind
	GetTxSpendingPrevoutError       = v26.GetTxSpendingPrevoutError
	LastProcessedBlock              = v26.LastProcessedBlock
	GetBalances                     = v26.GetBalances
	GetTransaction                  = v26.GetTransaction
	GetTransactionDetail            = v26.GetTransactionDetail
	GetWalletInfo                   = v26.GetWalletInfo
	Scanning                        = v26.Scanning
	WalletProcessPsbt               = v26.WalletProcessPsbt
	LastProcessedBlockErrorKind     = v26.LastProcessedBlockErrorKind
	LastProcessedBlockError         = v26.LastProcessedBlockError
	GetBalancesErrorKind            = v26.GetBalancesErrorKind
	GetBalancesError                = v26.GetBalancesError
	GetTransactionErrorKind         = v26.GetTransactionErrorKind
	GetTransactionError             = v26.GetTransactionError
	GetWalletInfoErrorKind          = v26.GetWalletInfoErrorKind
	GetWalletInfoError              = v26.GetWalletInfoError
	WalletProcessPsbtErrorKind      = v26.WalletProcessPsbtErrorKind
	WalletProcessPsbtError          = v26.WalletProcessPsbtError
)

const (
	GetBlockchainInfoErrNumeric             = v26.GetBlockchainInfoErrNumeric
	GetBlockchainInfoErrChain               = v26.GetBlockchainInfoErrChain
	GetBlockchainInfoErrBestBlockHash       = v26.GetBlockchainInfoErrBestBlockHash
	GetBlockchainInfoErrChainWork           = v26.GetBlockchainInfoErrChainWork
	MempoolEntryErrNumeric                  = v26.MempoolEntryErrNumeric
	MempoolEntryErrWtxid                    = v26.MempoolEntryErrWtxid
	MempoolEntryErrFees                     = v26.MempoolEntryErrFees
	MempoolEntryErrDepends                  = v26.MempoolEntryErrDepends
	MempoolEntryErrSpentBy                  = v26.MempoolEntryErrSpentBy
	MempoolEntryFeesErrBase                 = v26.MempoolEntryFeesErrBase
	MempoolEntryFeesErrModified             = v26.MempoolEntryFeesErrModified
	MempoolEntryFeesErrAncestor             = v26.MempoolEntryFeesErrAncestor
	MempoolEntryFeesErrDescendant           = v26.MempoolEntryFeesErrDescendant
	MapMempoolEntryErrTxid                  = v26.MapMempoolEntryErrTxid
	MapMempoolEntryErrMempoolEntry          = v26.MapMempoolEntryErrMempoolEntry
	GetNetworkInfoErrNumeric                = v26.GetNetworkInfoErrNumeric
	GetNetworkInfoErrLocalServices          = v26.GetNetworkInfoErrLocalServices
	GetNetworkInfoErrRelayFee               = v26.GetNetworkInfoErrRelayFee
	GetNetworkInfoErrIncrementalFee         = v26.GetNetworkInfoErrIncrementalFee
	GetNetworkInfoErrLocalAddresses         = v26.GetNetworkInfoErrLocalAddresses
	GetAddressesByLabelErrAddress           = v26.GetAddressesByLabelErrAddress
	GetAddressesByLabelErrPurpose           = v26.GetAddressesByLabelErrPurpose
	GetAddressInfoErrNumeric                = v26.GetAddressInfoErrNumeric
	GetAddressInfoErrAddress                = v26.GetAddressInfoErrAddress
	GetAddressInfoErrScriptPubKey           = v26.GetAddressInfoErrScriptPubKey
	GetAddressInfoErrWitnessProgram         = v26.GetAddressInfoErrWitnessProgram
	GetAddressInfoErrScript                 = v26.GetAddressInfoErrScript
	GetAddressInfoErrHex                    = v26.GetAddressInfoErrHex
	GetAddressInfoErrPubKeys                = v26.GetAddressInfoErrPubKeys
	GetAddressInfoErrPubKey                 = v26.GetAddressInfoErrPubKey
	GetAddressInfoErrEmbedded               = v26.GetAddressInfoErrEmbedded
	GetAddressInfoErrHdSeedID               = v26.GetAddressInfoErrHdSeedID
	GetAddressInfoEmbeddedErrNumeric        = v26.GetAddressInfoEmbeddedErrNumeric
	GetAddressInfoEmbeddedErrAddress        = v26.GetAddressInfoEmbeddedErrAddress
	GetAddressInfoEmbeddedErrScriptPubKey   = v26.GetAddressInfoEmbeddedErrScriptPubKey
	GetAddressInfoEmbeddedErrWitnessProgram = v26.GetAddressInfoEmbeddedErrWitnessProgram
	GetAddressInfoEmbeddedErrScript         = v26.GetAddressInfoEmbeddedErrScript
	GetAddressInfoEmbeddedErrHex            = v26.GetAddressInfoEmbeddedErrHex
	GetAddressInfoEmbeddedErrPubKeys        = v26.GetAddressInfoEmbeddedErrPubKeys
	GetAddressInfoEmbeddedErrPubKey         = v26.GetAddressInfoEmbeddedErrPubKey
	GetTransactionDetailErrNumeric          = v26.GetTransactionDetailErrNumeric
	GetTransactionDetailErrAddress          = v26.GetTransactionDetailErrAddress
	GetTransactionDetailErrCategory         = v26.GetTransactionDetailErrCategory
	GetTransactionDetailErrAmount           = v26.GetTransactionDetailErrAmount
	GetTransactionDetailErrFee              = v26.GetTransactionDetailErrFee
	BumpFeeErrTxid                          = v26.BumpFeeErrTxid
	BumpFeeErrOriginalFee                   = v26.BumpFeeErrOriginalFee
	BumpFeeErrFee                           = v26.BumpFeeErrFee
	ListUnspentItemErrNumeric               = v26.ListUnspentItemErrNumeric
	ListUnspentItemErrTxid                  = v26.ListUnspentItemErrTxid
	ListUnspentItemErrAddress               = v26.ListUnspentItemErrAddress
	ListUnspentItemErrScriptPubKey          = v26.ListUnspentItemErrScriptPubKey
	ListUnspentItemErrAmount                = v26.ListUnspentItemErrAmount
	ListUnspentItemErrRedeemScript          = v26.ListUnspentItemErrRedeemScript
	BalanceErrTrusted                       = v26.BalanceErrTrusted
	BalanceErrUntrustedPending              = v26.BalanceErrUntrustedPending
	BalanceErrImmature                      = v26.BalanceErrImmature
	BalanceErrUsed                          = v26.BalanceErrUsed
	PsbtBumpFeeErrPsbt                      = v26.PsbtBumpFeeErrPsbt
	PsbtBumpFeeErrOriginalFee               = v26.PsbtBumpFeeErrOriginalFee
	PsbtBumpFeeErrFee                       = v26.PsbtBumpFeeErrFee
	SendErrTxid                             = v26.SendErrTxid
	SendErrHex                              = v26.SendErrHex
	SendErrPsbt                             = v26.SendErrPsbt
	MempoolAcceptanceErrNumeric             = v26.MempoolAcceptanceErrNumeric
	MempoolAcceptanceErrTxid                = v26.MempoolAcceptanceErrTxid
	MempoolAcceptanceErrWtxid               = v26.MempoolAcceptanceErrWtxid
	MempoolAcceptanceErrBase                = v26.MempoolAcceptanceErrBase
	GetMempoolInfoErrNumeric                = v26.GetMempoolInfoErrNumeric
	GetMempoolInfoErrTotalFee               = v26.GetMempoolInfoErrTotalFee
	GetMempoolInfoErrMempoolMinFee          = v26.GetMempoolInfoErrMempoolMinFee
	GetMempoolInfoErrMinRelayTxFee          = v26.GetMempoolInfoErrMinRelayTxFee
	GetMempoolInfoErrIncrementalRelayFee    = v26.GetMempoolInfoErrIncrementalRelayFee
	GetTxSpendingPrevoutErrNumeric          = v26.GetTxSpendingPrevoutErrNumeric
	GetTxSpendingPrevoutErrTxid             = v26.GetTxSpendingPrevoutErrTxid
	GetTxSpendingPrevoutErrSpendingTxid     = v26.GetTxSpendingPrevoutErrSpendingTxid
	LastProcessedBlockErrHash               = v26.LastProcessedBlockErrHash
	LastProcessedBlockErrHeight             = v26.LastProcessedBlockErrHeight
	GetBalancesErrMine                      = v26.GetBalancesErrMine
	GetBalancesErrWatchOnly                 = v26.GetBalancesErrWatchOnly
	GetBalancesErrLastProcessedBlock        = v26.GetBalancesErrLastProcessedBlock
	GetTransactionErrNumeric                = v26.GetTransactionErrNumeric
	GetTransactionErrAmount                 = v26.GetTransactionErrAmount
	GetTransactionErrFee                    = v26.GetTransactionErrFee
	GetTransactionErrBlockHash              = v26.GetTransactionErrBlockHash
	GetTransactionErrTxid                   = v26.GetTransactionErrTxid
	GetTransactionErrWtxid                  = v26.GetTransactionErrWtxid
	GetTransactionErrWalletConflicts        = v26.GetTransactionErrWalletConflicts
	GetTransactionErrReplacedByTxid         = v26.GetTransactionErrReplacedByTxid
	GetTransactionErrReplacesTxid           = v26.GetTransactionErrReplacesTxid
	GetTransactionErrMempoolConflicts       = v26.GetTransactionErrMempoolConflicts
	GetTransactionErrBip125Replaceable      = v26.GetTransactionErrBip125Replaceable
	GetTransactionErrDetails                = v26.GetTransactionErrDetails
	GetTransactionErrTx                     = v26.GetTransactionErrTx
	GetTransactionErrLastProcessedBlock     = v26.GetTransactionErrLastProcessedBlock
	GetWalletInfoErrNumeric                 = v26.GetWalletInfoErrNumeric
	GetWalletInfoErrBalance                 = v26.GetWalletInfoErrBalance
	GetWalletInfoErrUnconfirmedBalance      = v26.GetWalletInfoErrUnconfirmedBalance
	GetWalletInfoErrImmatureBalance         = v26.GetWalletInfoErrImmatureBalance
	GetWalletInfoErrPayTxFee                = v26.GetWalletInfoErrPayTxFee
	GetWalletInfoErrHdSeedID                = v26.GetWalletInfoErrHdSeedID
	GetWalletInfoErrLastProcessedBlock      = v26.GetWalletInfoErrLastProcessedBlock
	WalletProcessPsbtErrPsbt                = v26.WalletProcessPsbtErrPsbt
	WalletProcessPsbtErrHex                 = v26.WalletProcessPsbtErrHex
)
