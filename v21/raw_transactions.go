package v21

import "encoding/json"

// TestMempoolAccept is the result of testmempoolaccept, one element per
// transaction tested.
type TestMempoolAccept []MempoolAcceptance

// MempoolAcceptance is the acceptance result of a single transaction.
type MempoolAcceptance struct {
	Txid    string `json:"txid"`
	Allowed bool   `json:"allowed"`
	// Vsize and Fees are present only when the transaction was accepted.
	Vsize *int64                 `json:"vsize,omitempty"`
	Fees  *MempoolAcceptanceFees `json:"fees,omitempty"`
	// Present only when the transaction was rejected.
	RejectReason *string `json:"reject-reason,omitempty"`
}

// MempoolAcceptanceFees are the fees of an accepted transaction.
type MempoolAcceptanceFees struct {
	Base json.Number `json:"base"`
}
