package v19

// MempoolEntry is one transaction of the verbose mempool replies.
type MempoolEntry struct {
	Vsize             int64            `json:"vsize"`
	Weight            int64            `json:"weight"`
	Time              int64            `json:"time"`
	Height            int64            `json:"height"`
	DescendantCount   int64            `json:"descendantcount"`
	DescendantSize    int64            `json:"descendantsize"`
	AncestorCount     int64            `json:"ancestorcount"`
	AncestorSize      int64            `json:"ancestorsize"`
	Wtxid             string           `json:"wtxid"`
	Fees              MempoolEntryFees `json:"fees"`
	Depends           []string         `json:"depends"`
	SpentBy           []string         `json:"spentby"`
	Bip125Replaceable bool             `json:"bip125-replaceable"`
}

// GetMempoolEntry is the result of getmempoolentry.
type GetMempoolEntry struct {
	MempoolEntry
}

// GetMempoolAncestorsVerbose is the result of getmempoolancestors with verbose
// set, keyed by txid.
type GetMempoolAncestorsVerbose map[string]MempoolEntry

// GetMempoolDescendantsVerbose is the result of getmempooldescendants with
// verbose set, keyed by txid.
type GetMempoolDescendantsVerbose map[string]MempoolEntry

// GetRawMempoolVerbose is the result of getrawmempool with verbose set, keyed
// by txid.
type GetRawMempoolVerbose map[string]MempoolEntry
