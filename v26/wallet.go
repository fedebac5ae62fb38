package v26

import "encoding/json"

// LastProcessedBlock is the block the wallet state was computed at.
type LastProcessedBlock struct {
	Hash   string `json:"hash"`
	Height int64  `json:"height"`
}

// GetBalances is the result of getbalances.
type GetBalances struct {
	Mine               GetBalancesMine       `json:"mine"`
	WatchOnly          *GetBalancesWatchOnly `json:"watchonly,omitempty"`
	LastProcessedBlock LastProcessedBlock    `json:"lastprocessedblock"`
}

// GetTransaction is the result of gettransaction.
type GetTransaction struct {
	Amount             json.Number            `json:"amount"`
	Fee                *json.Number           `json:"fee,omitempty"`
	Confirmations      int64                  `json:"confirmations"`
	Generated          *bool                  `json:"generated,omitempty"`
	Trusted            *bool                  `json:"trusted,omitempty"`
	BlockHash          *string                `json:"blockhash,omitempty"`
	BlockHeight        *int64                 `json:"blockheight,omitempty"`
	BlockIndex         *int64                 `json:"blockindex,omitempty"`
	BlockTime          *int64                 `json:"blocktime,omitempty"`
	Txid               string                 `json:"txid"`
	Wtxid              string                 `json:"wtxid"`
	WalletConflicts    []string               `json:"walletconflicts"`
	ReplacedByTxid     *string                `json:"replaced_by_txid,omitempty"`
	ReplacesTxid       *string                `json:"replaces_txid,omitempty"`
	MempoolConflicts   []string               `json:"mempoolconflicts"`
	To                 *string                `json:"to,omitempty"`
	Time               int64                  `json:"time"`
	TimeReceived       int64                  `json:"timereceived"`
	Comment            *string                `json:"comment,omitempty"`
	Bip125Replaceable  string                 `json:"bip125-replaceable"`
	ParentDescs        []string               `json:"parent_descs,omitempty"`
	Details            []GetTransactionDetail `json:"details"`
	Hex                string                 `json:"hex"`
	LastProcessedBlock LastProcessedBlock     `json:"lastprocessedblock"`
}

// GetTransactionDetail is an element of GetTransaction.Details.
type GetTransactionDetail struct {
	InvolvesWatchOnly *bool        `json:"involveswatchonly,omitempty"`
	Address           *string      `json:"address,omitempty"`
	Category          string       `json:"category"`
	Amount            json.Number  `json:"amount"`
	Label             *string      `json:"label,omitempty"`
	Vout              int64        `json:"vout"`
	Fee               *json.Number `json:"fee,omitempty"`
	Abandoned         *bool        `json:"abandoned,omitempty"`
	ParentDescs       []string     `json:"parent_descs,omitempty"`
}

// GetWalletInfo is the result of getwalletinfo. Descriptor wallets omit the
// keypool age and the hd seed id.
type GetWalletInfo struct {
	WalletName            string             `json:"walletname"`
	WalletVersion         int64              `json:"walletversion"`
	Format                string             `json:"format"`
	Balance               json.Number        `json:"balance"`
	UnconfirmedBalance    json.Number        `json:"unconfirmed_balance"`
	ImmatureBalance       json.Number        `json:"immature_balance"`
	TxCount               int64              `json:"txcount"`
	KeypoolOldest         *int64             `json:"keypoololdest,omitempty"`
	KeypoolSize           int64              `json:"keypoolsize"`
	KeypoolSizeHdInternal *int64             `json:"keypoolsize_hd_internal,omitempty"`
	UnlockedUntil         *int64             `json:"unlocked_until,omitempty"`
	PayTxFee              json.Number        `json:"paytxfee"`
	HdSeedID              *string            `json:"hdseedid,omitempty"`
	PrivateKeysEnabled    bool               `json:"private_keys_enabled"`
	AvoidReuse            bool               `json:"avoid_reuse"`
	Scanning              Scanning           `json:"scanning"`
	Descriptors           bool               `json:"descriptors"`
	ExternalSigner        bool               `json:"external_signer"`
	Blank                 bool               `json:"blank"`
	Birthtime             *int64             `json:"birthtime,omitempty"`
	LastProcessedBlock    LastProcessedBlock `json:"lastprocessedblock"`
}

// Scanning is the scanning field of getwalletinfo. The daemon sends false
// when no rescan is running and an object otherwise.
type Scanning struct {
	Active   bool
	Duration uint64
	Progress float64
}

// UnmarshalJSON accepts either false or a {duration, progress} object.
func (s *Scanning) UnmarshalJSON(b []byte) error {
	if string(b) == "false" || string(b) == "null" {
		*s = Scanning{}
		return nil
	}
	var v struct {
		Duration uint64  `json:"duration"`
		Progress float64 `json:"progress"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = Scanning{Active: true, Duration: v.Duration, Progress: v.Progress}
	return nil
}

// WalletProcessPsbt is the result of walletprocesspsbt.
type WalletProcessPsbt struct {
	Psbt     string `json:"psbt"`
	Complete bool   `json:"complete"`
	// Present only when complete.
	Hex *string `json:"hex,omitempty"`
}
