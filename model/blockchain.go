package model

import (
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/btcsuite/btcd/wire"
)

// GetBestBlockHash is the result of getbestblockhash.
type GetBestBlockHash types.BlockHash

// GetBlockCount is the result of getblockcount.
type GetBlockCount uint64

// GetBlockHash is the result of getblockhash.
type GetBlockHash types.BlockHash

// GetBlockchainInfo is the result of getblockchaininfo.
type GetBlockchainInfo struct {
	Chain                types.Chain     `json:"chain"`
	Blocks               uint32          `json:"blocks"`
	Headers              uint32          `json:"headers"`
	BestBlockHash        types.BlockHash `json:"bestblockhash"`
	Difficulty           float64         `json:"difficulty"`
	MedianTime           uint32          `json:"mediantime"`
	VerificationProgress float64         `json:"verificationprogress"`
	InitialBlockDownload bool            `json:"initialblockdownload"`
	ChainWork            types.Work      `json:"chainwork"`
	SizeOnDisk           uint64          `json:"size_on_disk"`
	Pruned               bool            `json:"pruned"`
	PruneHeight          *uint32         `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool           `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *uint64         `json:"prune_target_size,omitempty"`
	Warnings             []string        `json:"warnings"`
}

// GetMempoolInfo is the result of getmempoolinfo.
type GetMempoolInfo struct {
	Loaded              *bool         `json:"loaded,omitempty"`
	Size                uint32        `json:"size"`
	Bytes               uint32        `json:"bytes"`
	Usage               uint32        `json:"usage"`
	TotalFee            *types.Amount `json:"total_fee,omitempty"`
	MaxMempool          uint32        `json:"maxmempool"`
	MempoolMinFee       types.Amount  `json:"mempoolminfee"` // per kvB
	MinRelayTxFee       types.Amount  `json:"minrelaytxfee"` // per kvB
	IncrementalRelayFee *types.Amount `json:"incrementalrelayfee,omitempty"`
	UnbroadcastCount    *uint32       `json:"unbroadcastcount,omitempty"`
	FullRbf             *bool         `json:"fullrbf,omitempty"`
}

// MempoolEntry is a transaction in the mempool, the value type of the verbose
// mempool maps and the result of getmempoolentry.
type MempoolEntry struct {
	// Virtual transaction size, absent before v19.
	Vsize *uint32 `json:"vsize,omitempty"`
	// Serialized size, only reported before v19.
	Size *uint32 `json:"size,omitempty"`
	// Transaction weight, absent before v19.
	Weight            *uint32          `json:"weight,omitempty"`
	Time              uint32           `json:"time"`
	Height            uint32           `json:"height"`
	DescendantCount   uint32           `json:"descendantcount"`
	DescendantSize    uint32           `json:"descendantsize"`
	AncestorCount     uint32           `json:"ancestorcount"`
	AncestorSize      uint32           `json:"ancestorsize"`
	Wtxid             types.Wtxid      `json:"wtxid"`
	Fees              MempoolEntryFees `json:"fees"`
	Depends           []types.Txid     `json:"depends"`
	SpentBy           []types.Txid     `json:"spentby"`
	Bip125Replaceable *bool            `json:"bip125-replaceable,omitempty"`
	// Added in v21.
	Unbroadcast *bool `json:"unbroadcast,omitempty"`
}

// MempoolEntryFees are the fee fields of a MempoolEntry.
type MempoolEntryFees struct {
	Base       types.Amount `json:"base"`
	Modified   types.Amount `json:"modified"`
	Ancestor   types.Amount `json:"ancestor"`
	Descendant types.Amount `json:"descendant"`
}

// GetMempoolEntry is the result of getmempoolentry.
type GetMempoolEntry struct {
	MempoolEntry
}

// GetMempoolAncestors is the result of getmempoolancestors.
type GetMempoolAncestors []types.Txid

// GetMempoolAncestorsVerbose is the result of getmempoolancestors with verbose
// set.
type GetMempoolAncestorsVerbose map[types.Txid]MempoolEntry

// GetMempoolDescendants is the result of getmempooldescendants.
type GetMempoolDescendants []types.Txid

// GetMempoolDescendantsVerbose is the result of getmempooldescendants with
// verbose set.
type GetMempoolDescendantsVerbose map[types.Txid]MempoolEntry

// GetRawMempool is the result of getrawmempool.
type GetRawMempool []types.Txid

// GetRawMempoolVerbose is the result of getrawmempool with verbose set.
type GetRawMempoolVerbose map[types.Txid]MempoolEntry

// GetTxSpendingPrevout is the result of gettxspendingprevout.
type GetTxSpendingPrevout []GetTxSpendingPrevoutItem

// GetTxSpendingPrevoutItem is one queried outpoint and the mempool transaction
// spending it, if any.
type GetTxSpendingPrevoutItem struct {
	Outpoint     wire.OutPoint `json:"outpoint"`
	SpendingTxid *types.Txid   `json:"spendingtxid,omitempty"`
}
