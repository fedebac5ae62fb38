package v28

// GetBlockchainInfo is the result of getblockchaininfo. Softfork deployment
// state is not modelled.
type GetBlockchainInfo struct {
	Chain                string   `json:"chain"`
	Blocks               int64    `json:"blocks"`
	Headers              int64    `json:"headers"`
	BestBlockHash        string   `json:"bestblockhash"`
	Difficulty           float64  `json:"difficulty"`
	MedianTime           int64    `json:"mediantime"`
	VerificationProgress float64  `json:"verificationprogress"`
	InitialBlockDownload bool     `json:"initialblockdownload"`
	ChainWork            string   `json:"chainwork"`
	SizeOnDisk           uint64   `json:"size_on_disk"`
	Pruned               bool     `json:"pruned"`
	PruneHeight          *int64   `json:"pruneheight,omitempty"`
	AutomaticPruning     *bool    `json:"automatic_pruning,omitempty"`
	PruneTargetSize      *uint64  `json:"prune_target_size,omitempty"`
	Warnings             []string `json:"warnings"`
}
