package model

import (
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/wire"
)

// GetBalance is the result of getbalance.
type GetBalance types.Amount

// GetUnconfirmedBalance is the result of getunconfirmedbalance.
type GetUnconfirmedBalance types.Amount

// GetReceivedByAddress is the result of getreceivedbyaddress.
type GetReceivedByAddress types.Amount

// GetBalances is the result of getbalances.
type GetBalances struct {
	Mine      GetBalancesMine       `json:"mine"`
	WatchOnly *GetBalancesWatchOnly `json:"watchonly,omitempty"`
	// Added in v26.
	LastProcessedBlock *LastProcessedBlock `json:"lastprocessedblock,omitempty"`
}

// GetBalancesMine are the balances from outputs the wallet can sign for.
type GetBalancesMine struct {
	Trusted          types.Amount  `json:"trusted"`
	UntrustedPending types.Amount  `json:"untrusted_pending"`
	Immature         types.Amount  `json:"immature"`
	Used             *types.Amount `json:"used,omitempty"` // only with avoid_reuse set
}

// GetBalancesWatchOnly are the balances from watch-only outputs.
type GetBalancesWatchOnly struct {
	Trusted          types.Amount `json:"trusted"`
	UntrustedPending types.Amount `json:"untrusted_pending"`
	Immature         types.Amount `json:"immature"`
}

// LastProcessedBlock is the block the wallet state was computed at.
type LastProcessedBlock struct {
	Hash   types.BlockHash `json:"hash"`
	Height uint32          `json:"height"`
}

// GetNewAddress is the result of getnewaddress.
type GetNewAddress types.Address

// GetRawChangeAddress is the result of getrawchangeaddress.
type GetRawChangeAddress types.Address

// GetAddressesByLabel is the result of getaddressesbylabel.
type GetAddressesByLabel map[types.Address]AddressInformation

// AddressInformation is the value type of GetAddressesByLabel.
type AddressInformation struct {
	Purpose types.AddressPurpose `json:"purpose"`
}

// GetAddressInfo is the result of getaddressinfo.
type GetAddressInfo struct {
	Address             types.Address           `json:"address"`
	ScriptPubKey        []byte                  `json:"scriptPubKey"`
	IsMine              bool                    `json:"ismine"`
	IsWatchOnly         bool                    `json:"iswatchonly"`
	Solvable            *bool                   `json:"solvable,omitempty"`
	Descriptor          *string                 `json:"desc,omitempty"`
	IsScript            bool                    `json:"isscript"`
	IsChange            bool                    `json:"ischange"`
	IsWitness           bool                    `json:"iswitness"`
	WitnessVersion      *uint8                  `json:"witness_version,omitempty"`
	WitnessProgram      []byte                  `json:"witness_program,omitempty"`
	Script              *types.ScriptType       `json:"script,omitempty"`
	Hex                 []byte                  `json:"hex,omitempty"`
	PubKeys             []types.PublicKey       `json:"pubkeys,omitempty"`
	SigsRequired        *uint32                 `json:"sigsrequired,omitempty"`
	PubKey              *types.PublicKey        `json:"pubkey,omitempty"`
	Embedded            *GetAddressInfoEmbedded `json:"embedded,omitempty"`
	IsCompressed        *bool                   `json:"iscompressed,omitempty"`
	Timestamp           *uint32                 `json:"timestamp,omitempty"`
	HdKeyPath           *string                 `json:"hdkeypath,omitempty"`
	HdSeedID            *types.Hash160          `json:"hdseedid,omitempty"`
	HdMasterFingerprint *string                 `json:"hdmasterfingerprint,omitempty"`
	Labels              []string                `json:"labels"`
	// Only reported before v18.
	Label         *string                         `json:"label,omitempty"`
	HdMasterKeyID *types.Hash160                  `json:"hdmasterkeyid,omitempty"`
	LabelPurposes map[string]types.AddressPurpose `json:"label_purposes,omitempty"`
}

// GetAddressInfoEmbedded is the script embedded in a P2SH address, or the
// witness program of a P2SH-wrapped segwit address.
type GetAddressInfoEmbedded struct {
	Address        types.Address     `json:"address"`
	ScriptPubKey   []byte            `json:"scriptPubKey"`
	Solvable       *bool             `json:"solvable,omitempty"`
	Descriptor     *string           `json:"desc,omitempty"`
	IsScript       bool              `json:"isscript"`
	IsChange       bool              `json:"ischange"`
	IsWitness      bool              `json:"iswitness"`
	WitnessVersion *uint8            `json:"witness_version,omitempty"`
	WitnessProgram []byte            `json:"witness_program,omitempty"`
	Script         *types.ScriptType `json:"script,omitempty"`
	Hex            []byte            `json:"hex,omitempty"`
	PubKeys        []types.PublicKey `json:"pubkeys,omitempty"`
	SigsRequired   *uint32           `json:"sigsrequired,omitempty"`
	PubKey         *types.PublicKey  `json:"pubkey,omitempty"`
	IsCompressed   *bool             `json:"iscompressed,omitempty"`
	Labels         []string          `json:"labels,omitempty"`
	// Only reported before v18.
	Label         *string                         `json:"label,omitempty"`
	LabelPurposes map[string]types.AddressPurpose `json:"label_purposes,omitempty"`
}

// GetTransaction is the result of gettransaction.
type GetTransaction struct {
	Amount            types.SignedAmount      `json:"amount"`
	Fee               *types.SignedAmount     `json:"fee,omitempty"`
	Confirmations     int64                   `json:"confirmations"`
	Generated         *bool                   `json:"generated,omitempty"`
	Trusted           *bool                   `json:"trusted,omitempty"`
	BlockHash         *types.BlockHash        `json:"blockhash,omitempty"`
	BlockHeight       *uint32                 `json:"blockheight,omitempty"` // v26 bucket and later
	BlockIndex        *uint32                 `json:"blockindex,omitempty"`
	BlockTime         *uint32                 `json:"blocktime,omitempty"`
	Txid              types.Txid              `json:"txid"`
	Wtxid             *types.Wtxid            `json:"wtxid,omitempty"` // v26 bucket and later
	WalletConflicts   []types.Txid            `json:"walletconflicts"`
	ReplacedByTxid    *types.Txid             `json:"replaced_by_txid,omitempty"`
	ReplacesTxid      *types.Txid             `json:"replaces_txid,omitempty"`
	MempoolConflicts  []types.Txid            `json:"mempoolconflicts,omitempty"`
	To                *string                 `json:"to,omitempty"`
	Time              uint32                  `json:"time"`
	TimeReceived      uint32                  `json:"timereceived"`
	Comment           *string                 `json:"comment,omitempty"`
	Bip125Replaceable types.Bip125Replaceable `json:"bip125-replaceable"`
	ParentDescriptors []string                `json:"parent_descs,omitempty"`
	Details           []GetTransactionDetail  `json:"details"`
	Tx                *wire.MsgTx             `json:"tx"`
	// Added in v26.
	LastProcessedBlock *LastProcessedBlock `json:"lastprocessedblock,omitempty"`
}

// GetTransactionDetail is one output or input of a wallet transaction.
type GetTransactionDetail struct {
	InvolvesWatchOnly *bool                     `json:"involveswatchonly,omitempty"`
	Address           *types.Address            `json:"address,omitempty"`
	Category          types.TransactionCategory `json:"category"`
	Amount            types.SignedAmount        `json:"amount"`
	Label             *string                   `json:"label,omitempty"`
	Vout              uint32                    `json:"vout"`
	Fee               *types.SignedAmount       `json:"fee,omitempty"`
	Abandoned         *bool                     `json:"abandoned,omitempty"`
	ParentDescriptors []string                  `json:"parent_descs,omitempty"`
}

// GetWalletInfo is the result of getwalletinfo.
type GetWalletInfo struct {
	WalletName            string              `json:"walletname"`
	WalletVersion         uint32              `json:"walletversion"`
	Format                *string             `json:"format,omitempty"` // v26 bucket and later
	Balance               types.Amount        `json:"balance"`
	UnconfirmedBalance    types.Amount        `json:"unconfirmed_balance"`
	ImmatureBalance       types.Amount        `json:"immature_balance"`
	TxCount               uint32              `json:"txcount"`
	KeypoolOldest         *uint32             `json:"keypoololdest,omitempty"`
	KeypoolSize           uint32              `json:"keypoolsize"`
	KeypoolSizeHdInternal *uint32             `json:"keypoolsize_hd_internal,omitempty"`
	UnlockedUntil         *uint32             `json:"unlocked_until,omitempty"`
	PayTxFee              types.Amount        `json:"paytxfee"` // per kvB
	HdSeedID              *types.Hash160      `json:"hdseedid,omitempty"`
	PrivateKeysEnabled    bool                `json:"private_keys_enabled"`
	AvoidReuse            *bool               `json:"avoid_reuse,omitempty"`
	Scanning              *ScanningDetails    `json:"scanning,omitempty"`
	Descriptors           *bool               `json:"descriptors,omitempty"`
	ExternalSigner        *bool               `json:"external_signer,omitempty"`
	Blank                 *bool               `json:"blank,omitempty"`
	Birthtime             *uint32             `json:"birthtime,omitempty"`
	LastProcessedBlock    *LastProcessedBlock `json:"lastprocessedblock,omitempty"`
}

// ScanningDetails is the progress of a running wallet rescan.
type ScanningDetails struct {
	Duration uint64  `json:"duration"`
	Progress float64 `json:"progress"`
}

// BumpFee is the result of bumpfee.
type BumpFee struct {
	Txid        types.Txid   `json:"txid"`
	OriginalFee types.Amount `json:"origfee"`
	Fee         types.Amount `json:"fee"`
	Errors      []string     `json:"errors"`
}

// PsbtBumpFee is the result of psbtbumpfee.
type PsbtBumpFee struct {
	Psbt        *psbt.Packet `json:"psbt"`
	OriginalFee types.Amount `json:"origfee"`
	Fee         types.Amount `json:"fee"`
	Errors      []string     `json:"errors"`
}

// Send is the result of send.
type Send struct {
	Complete bool         `json:"complete"`
	Txid     *types.Txid  `json:"txid,omitempty"`
	Tx       *wire.MsgTx  `json:"tx,omitempty"`
	Psbt     *psbt.Packet `json:"psbt,omitempty"`
}

// WalletProcessPsbt is the result of walletprocesspsbt.
type WalletProcessPsbt struct {
	Psbt     *psbt.Packet `json:"psbt"`
	Complete bool         `json:"complete"`
	// Finalized transaction, v26 and later when complete.
	Tx *wire.MsgTx `json:"tx,omitempty"`
}

// SendToAddress is the result of sendtoaddress.
type SendToAddress types.Txid

// SendMany is the result of sendmany.
type SendMany types.Txid

// ListUnspent is the result of listunspent.
type ListUnspent []ListUnspentItem

// ListUnspentItem is one unspent output.
type ListUnspentItem struct {
	Txid          types.Txid     `json:"txid"`
	Vout          uint32         `json:"vout"`
	Address       *types.Address `json:"address,omitempty"`
	Label         *string        `json:"label,omitempty"`
	ScriptPubKey  []byte         `json:"scriptPubKey"`
	Amount        types.Amount   `json:"amount"`
	Confirmations uint32         `json:"confirmations"`
	RedeemScript  []byte         `json:"redeemScript,omitempty"`
	Spendable     bool           `json:"spendable"`
	Solvable      bool           `json:"solvable"`
	Descriptor    *string        `json:"desc,omitempty"`
	Safe          bool           `json:"safe"`
}

// RescanBlockchain is the result of rescanblockchain.
type RescanBlockchain struct {
	StartHeight uint32 `json:"start_height"`
	StopHeight  uint32 `json:"stop_height"`
}
