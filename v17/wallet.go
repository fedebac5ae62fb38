package v17

import "encoding/json"

// GetBalance is the result of getbalance.
type GetBalance json.Number

// GetUnconfirmedBalance is the result of getunconfirmedbalance.
type GetUnconfirmedBalance json.Number

// GetReceivedByAddress is the result of getreceivedbyaddress.
type GetReceivedByAddress json.Number

// Named number types lose the json.Number decoding of bare numbers.

func (g *GetBalance) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, (*json.Number)(g))
}

func (g *GetUnconfirmedBalance) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, (*json.Number)(g))
}

func (g *GetReceivedByAddress) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, (*json.Number)(g))
}

// GetNewAddress is the result of getnewaddress.
type GetNewAddress string

// GetRawChangeAddress is the result of getrawchangeaddress.
type GetRawChangeAddress string

// GetAddressesByLabel is the result of getaddressesbylabel, keyed by address.
type GetAddressesByLabel map[string]AddressInformation

// AddressInformation is the value type of GetAddressesByLabel.
type AddressInformation struct {
	Purpose string `json:"purpose"`
}

// GetAddressInfo is the result of getaddressinfo.
type GetAddressInfo struct {
	Address        string                  `json:"address"`
	ScriptPubKey   string                  `json:"scriptPubKey"`
	IsMine         bool                    `json:"ismine"`
	IsWatchOnly    bool                    `json:"iswatchonly"`
	Solvable       *bool                   `json:"solvable,omitempty"`
	Descriptor     *string                 `json:"desc,omitempty"`
	IsScript       bool                    `json:"isscript"`
	IsChange       bool                    `json:"ischange"`
	IsWitness      bool                    `json:"iswitness"`
	WitnessVersion *int64                  `json:"witness_version,omitempty"`
	WitnessProgram *string                 `json:"witness_program,omitempty"`
	Script         *string                 `json:"script,omitempty"`
	Hex            *string                 `json:"hex,omitempty"`
	PubKeys        []string                `json:"pubkeys,omitempty"`
	SigsRequired   *int64                  `json:"sigsrequired,omitempty"`
	PubKey         *string                 `json:"pubkey,omitempty"`
	Embedded       *GetAddressInfoEmbedded `json:"embedded,omitempty"`
	IsCompressed   *bool                   `json:"iscompressed,omitempty"`
	Label          string                  `json:"label"`
	Timestamp      *int64                  `json:"timestamp,omitempty"`
	HdKeyPath      *string                 `json:"hdkeypath,omitempty"`
	HdSeedID       *string                 `json:"hdseedid,omitempty"`
	HdMasterKeyID  *string                 `json:"hdmasterkeyid,omitempty"`
	Labels         []GetAddressInfoLabel   `json:"labels"`
}

// GetAddressInfoLabel is a label object, releases before 0.18 report the
// purpose alongside each label name.
type GetAddressInfoLabel struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
}

// GetAddressInfoEmbedded is the embedded object of getaddressinfo. It carries
// the script fields only, the wallet fields are absent.
type GetAddressInfoEmbedded struct {
	Address        string                `json:"address"`
	ScriptPubKey   string                `json:"scriptPubKey"`
	Solvable       *bool                 `json:"solvable,omitempty"`
	Descriptor     *string               `json:"desc,omitempty"`
	IsScript       bool                  `json:"isscript"`
	IsChange       bool                  `json:"ischange"`
	IsWitness      bool                  `json:"iswitness"`
	WitnessVersion *int64                `json:"witness_version,omitempty"`
	WitnessProgram *string               `json:"witness_program,omitempty"`
	Script         *string               `json:"script,omitempty"`
	Hex            *string               `json:"hex,omitempty"`
	PubKeys        []string              `json:"pubkeys,omitempty"`
	SigsRequired   *int64                `json:"sigsrequired,omitempty"`
	PubKey         *string               `json:"pubkey,omitempty"`
	IsCompressed   *bool                 `json:"iscompressed,omitempty"`
	Label          *string               `json:"label,omitempty"`
	Labels         []GetAddressInfoLabel `json:"labels,omitempty"`
}

// GetTransaction is the result of gettransaction.
type GetTransaction struct {
	Amount            json.Number            `json:"amount"`
	Fee               *json.Number           `json:"fee,omitempty"`
	Confirmations     int64                  `json:"confirmations"`
	Generated         *bool                  `json:"generated,omitempty"`
	Trusted           *bool                  `json:"trusted,omitempty"`
	BlockHash         *string                `json:"blockhash,omitempty"`
	BlockIndex        *int64                 `json:"blockindex,omitempty"`
	BlockTime         *int64                 `json:"blocktime,omitempty"`
	Txid              string                 `json:"txid"`
	WalletConflicts   []string               `json:"walletconflicts"`
	Time              int64                  `json:"time"`
	TimeReceived      int64                  `json:"timereceived"`
	Comment           *string                `json:"comment,omitempty"`
	To                *string                `json:"to,omitempty"`
	Bip125Replaceable string                 `json:"bip125-replaceable"`
	Details           []GetTransactionDetail `json:"details"`
	Hex               string                 `json:"hex"`
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
}

// GetWalletInfo is the result of getwalletinfo.
type GetWalletInfo struct {
	WalletName            string      `json:"walletname"`
	WalletVersion         int64       `json:"walletversion"`
	Balance               json.Number `json:"balance"`
	UnconfirmedBalance    json.Number `json:"unconfirmed_balance"`
	ImmatureBalance       json.Number `json:"immature_balance"`
	TxCount               int64       `json:"txcount"`
	KeypoolOldest         int64       `json:"keypoololdest"`
	KeypoolSize           int64       `json:"keypoolsize"`
	KeypoolSizeHdInternal *int64      `json:"keypoolsize_hd_internal,omitempty"`
	UnlockedUntil         *int64      `json:"unlocked_until,omitempty"`
	PayTxFee              json.Number `json:"paytxfee"`
	HdSeedID              *string     `json:"hdseedid,omitempty"`
	PrivateKeysEnabled    bool        `json:"private_keys_enabled"`
}

// BumpFee is the result of bumpfee.
type BumpFee struct {
	Txid        string      `json:"txid"`
	OriginalFee json.Number `json:"origfee"`
	Fee         json.Number `json:"fee"`
	Errors      []string    `json:"errors"`
}

// WalletProcessPsbt is the result of walletprocesspsbt.
type WalletProcessPsbt struct {
	Psbt     string `json:"psbt"`
	Complete bool   `json:"complete"`
}

// SendToAddress is the result of sendtoaddress.
type SendToAddress string

// SendMany is the result of sendmany.
type SendMany string

// ListUnspent is the result of listunspent.
type ListUnspent []ListUnspentItem

// ListUnspentItem is an unspent output owned or watched by the wallet.
type ListUnspentItem struct {
	Txid          string      `json:"txid"`
	Vout          int64       `json:"vout"`
	Address       *string     `json:"address,omitempty"`
	Label         *string     `json:"label,omitempty"`
	ScriptPubKey  string      `json:"scriptPubKey"`
	Amount        json.Number `json:"amount"`
	Confirmations int64       `json:"confirmations"`
	RedeemScript  *string     `json:"redeemScript,omitempty"`
	Spendable     bool        `json:"spendable"`
	Solvable      bool        `json:"solvable"`
	Descriptor    *string     `json:"desc,omitempty"`
	Safe          bool        `json:"safe"`
}

// RescanBlockchain is the result of rescanblockchain.
type RescanBlockchain struct {
	StartHeight int64 `json:"start_height"`
	StopHeight  int64 `json:"stop_height"`
}
