package v17

import "encoding/json"

// GetBestBlockHash is the result of getbestblockhash.
type GetBestBlockHash string

// GetBlockCount is the result of getblockcount.
type GetBlockCount uint64

// GetBlockHash is the result of getblockhash.
type GetBlockHash string

// GetBlockchainInfo is the result of getblockchaininfo. Softfork deployment
// state is not modelled.
type GetBlockchainInfo struct {
	Chain                string  `json:"chain"`
	Blocks               int64   `json:"blocks"`
	Headers              int64   `json:"headers"`
	BestBlockHash        string  `json:"bestblockhash"`
	Difficulty           float64 `json:"difficulty"`
	MedianTime           int64   `json:"mediantime"`
	VerificationProgress float64 `json:"verificationprogress"`
	InitialBlockDownload bool    `json:"initialblockdownload"`
	ChainWork            string  `json:"chainwork"`
	SizeOnDisk           uint64  `json:"size_on_disk"`
	Pruned               bool    `json:"pruned"`
	PruneHeight          *int64  `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool   `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *uint64 `json:"prune_target_size,omitempty"`
	Warnings             string  `json:"warnings"`
}

// GetMempoolInfo is the result of getmempoolinfo.
type GetMempoolInfo struct {
	Size          int64       `json:"size"`
	Bytes         int64       `json:"bytes"`
	Usage         int64       `json:"usage"`
	MaxMempool    int64       `json:"maxmempool"`
	MempoolMinFee json.Number `json:"mempoolminfee"`
	MinRelayTxFee json.Number `json:"minrelaytxfee"`
}

// MempoolEntry is one transaction of the verbose mempool replies.
type MempoolEntry struct {
	// Virtual size, the field was later renamed to vsize.
	Size            int64            `json:"size"`
	Time            int64            `json:"time"`
	Height          int64            `json:"height"`
	DescendantCount int64            `json:"descendantcount"`
	DescendantSize  int64            `json:"descendantsize"`
	AncestorCount   int64            `json:"ancestorcount"`
	AncestorSize    int64            `json:"ancestorsize"`
	Wtxid           string           `json:"wtxid"`
	Fees            MempoolEntryFees `json:"fees"`
	Depends         []string         `json:"depends"`
	SpentBy         []string         `json:"spentby"`
	// Whether this transaction could be replaced due to BIP125.
	Bip125Replaceable bool `json:"bip125-replaceable"`
}

// MempoolEntryFees are the fee fields of MempoolEntry, in BTC.
type MempoolEntryFees struct {
	Base       json.Number `json:"base"`
	Modified   json.Number `json:"modified"`
	Ancestor   json.Number `json:"ancestor"`
	Descendant json.Number `json:"descendant"`
}

// GetMempoolEntry is the result of getmempoolentry.
type GetMempoolEntry struct {
	MempoolEntry
}

// GetMempoolAncestors is the result of getmempoolancestors.
type GetMempoolAncestors []string

// GetMempoolAncestorsVerbose is the result of getmempoolancestors with verbose
// set, keyed by txid.
type GetMempoolAncestorsVerbose map[string]MempoolEntry

// GetMempoolDescendants is the result of getmempooldescendants.
type GetMempoolDescendants []string

// GetMempoolDescendantsVerbose is the result of getmempooldescendants with
// verbose set, keyed by txid.
type GetMempoolDescendantsVerbose map[string]MempoolEntry

// GetRawMempool is the result of getrawmempool.
type GetRawMempool []string

// GetRawMempoolVerbose is the result of getrawmempool with verbose set, keyed
// by txid.
type GetRawMempoolVerbose map[string]MempoolEntry
