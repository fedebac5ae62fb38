package events

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

var (
	NewMempoolEntry  = &FeedOf[MempoolEntry]{}      // A transaction showed up in the watched mempool.
	MempoolRemoved   = &FeedOf[types.Txid]{}        // A transaction left the watched mempool.
	ConversionFailed = &FeedOf[ConversionFailure]{} // A daemon reply could not be converted.
)

type MempoolEntry struct {
	Txid  types.Txid         `json:"txid"`
	Entry model.MempoolEntry `json:"entry"`
}

type ConversionFailure struct {
	Method  string `json:"method"`
	Version int    `json:"version"`
	Error   string `json:"error"`
}
