package v17

// GetMiningInfo is the result of getmininginfo.
type GetMiningInfo struct {
	Blocks             int64   `json:"blocks"`
	CurrentBlockWeight *int64  `json:"currentblockweight,omitempty"`
	CurrentBlockTx     *int64  `json:"currentblocktx,omitempty"`
	Difficulty         float64 `json:"difficulty"`
	NetworkHashPs      float64 `json:"networkhashps"`
	PooledTx           int64   `json:"pooledtx"`
	Chain              string  `json:"chain"`
	Warnings           string  `json:"warnings"`
}

// GenerateToAddress is the result of generatetoaddress, the hashes of the
// generated blocks.
type GenerateToAddress []string
