package model

import (
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/btcsuite/btcd/wire"
)

// GetRawTransaction is the result of getrawtransaction without verbose.
type GetRawTransaction struct {
	Tx *wire.MsgTx `json:"tx"`
}

// SendRawTransaction is the result of sendrawtransaction.
type SendRawTransaction types.Txid

// TestMempoolAccept is the result of testmempoolaccept.
type TestMempoolAccept struct {
	Results []MempoolAcceptance `json:"results"`
}

// MempoolAcceptance is the acceptance result for one transaction.
type MempoolAcceptance struct {
	Txid         types.Txid             `json:"txid"`
	Wtxid        *types.Wtxid           `json:"wtxid,omitempty"` // v22 and later
	Allowed      bool                   `json:"allowed"`
	Vsize        *uint32                `json:"vsize,omitempty"` // v21 and later, only if allowed
	Fees         *MempoolAcceptanceFees `json:"fees,omitempty"`  // v21 and later, only if allowed
	RejectReason *string                `json:"reject-reason,omitempty"`
}

// MempoolAcceptanceFees are the fees of an accepted transaction.
type MempoolAcceptanceFees struct {
	Base types.Amount `json:"base"`
}
