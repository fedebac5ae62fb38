package v19

import "encoding/json"

// GetBalances is the result of getbalances.
type GetBalances struct {
	Mine      GetBalancesMine       `json:"mine"`
	WatchOnly *GetBalancesWatchOnly `json:"watchonly,omitempty"`
}

// GetBalancesMine are the balances from outputs the wallet can sign for.
type GetBalancesMine struct {
	Trusted          json.Number  `json:"trusted"`
	UntrustedPending json.Number  `json:"untrusted_pending"`
	Immature         json.Number  `json:"immature"`
	Used             *json.Number `json:"used,omitempty"`
}

// GetBalancesWatchOnly are the balances from watch-only outputs, present only
// when the wallet has any.
type GetBalancesWatchOnly struct {
	Trusted          json.Number `json:"trusted"`
	UntrustedPending json.Number `json:"untrusted_pending"`
	Immature         json.Number `json:"immature"`
}
