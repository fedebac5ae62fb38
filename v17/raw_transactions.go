package v17

// GetRawTransaction is the result of getrawtransaction with verbose unset, the
// hex encoded transaction.
type GetRawTransaction string

// SendRawTransaction is the result of sendrawtransaction.
type SendRawTransaction string

// TestMempoolAccept is the result of testmempoolaccept, one element per
// transaction tested.
type TestMempoolAccept []MempoolAcceptance

// MempoolAcceptance is the acceptance result of a single transaction.
type MempoolAcceptance struct {
	Txid    string `json:"txid"`
	Allowed bool   `json:"allowed"`
	// Present only when the transaction was rejected.
	RejectReason *string `json:"reject-reason,omitempty"`
}
