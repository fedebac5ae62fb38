package v24

import "encoding/json"

// GetMempoolInfo is the result of getmempoolinfo.
type GetMempoolInfo struct {
	Loaded              bool        `json:"loaded"`
	Size                int64       `json:"size"`
	Bytes               int64       `json:"bytes"`
	Usage               int64       `json:"usage"`
	TotalFee            json.Number `json:"total_fee"`
	MaxMempool          int64       `json:"maxmempool"`
	MempoolMinFee       json.Number `json:"mempoolminfee"`
	MinRelayTxFee       json.Number `json:"minrelaytxfee"`
	IncrementalRelayFee json.Number `json:"incrementalrelayfee"`
	UnbroadcastCount    int64       `json:"unbroadcastcount"`
	FullRbf             bool        `json:"fullrbf"`
}

// GetTxSpendingPrevout is the result of gettxspendingprevout, one element per
// queried outpoint.
type GetTxSpendingPrevout []GetTxSpendingPrevoutItem

// GetTxSpendingPrevoutItem is an element of GetTxSpendingPrevout.
type GetTxSpendingPrevoutItem struct {
	Txid string `json:"txid"`
	Vout int64  `json:"vout"`
	// Absent when no mempool transaction spends the outpoint.
	SpendingTxid *string `json:"spendingtxid,omitempty"`
}
