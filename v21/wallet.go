package v21

import "encoding/json"

// PsbtBumpFee is the result of psbtbumpfee.
type PsbtBumpFee struct {
	Psbt        string      `json:"psbt"`
	OriginalFee json.Number `json:"origfee"`
	Fee         json.Number `json:"fee"`
	Errors      []string    `json:"errors"`
}

// Send is the result of send. The transaction is reported as a txid and
// optionally hex once complete, otherwise as a psbt.
type Send struct {
	Complete bool    `json:"complete"`
	Txid     *string `json:"txid,omitempty"`
	Hex      *string `json:"hex,omitempty"`
	Psbt     *string `json:"psbt,omitempty"`
}
