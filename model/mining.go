package model

import "github.com/DOIDFoundation/corerpc/types"

// GetMiningInfo is the result of getmininginfo.
type GetMiningInfo struct {
	Blocks             uint32   `json:"blocks"`
	CurrentBlockWeight *uint32  `json:"currentblockweight,omitempty"`
	CurrentBlockTx     *uint32  `json:"currentblocktx,omitempty"`
	Difficulty         float64  `json:"difficulty"`
	NetworkHashPs      float64  `json:"networkhashps"`
	PooledTx           uint32   `json:"pooledtx"`
	Chain              string   `json:"chain"`
	Warnings           []string `json:"warnings"`
}

// GenerateToAddress is the result of generatetoaddress, hashes of the blocks
// generated in order.
type GenerateToAddress []types.BlockHash
