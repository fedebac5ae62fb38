package v21

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (b PsbtBumpFee) IntoModel() (model.PsbtBumpFee, error) {
	p, err := types.ParsePsbt(b.Psbt)
	if err != nil {
		return model.PsbtBumpFee{}, &PsbtBumpFeeError{Kind: PsbtBumpFeeErrPsbt, Err: err}
	}
	original, err := types.ParseAmount(b.OriginalFee)
	if err != nil {
		return model.PsbtBumpFee{}, &PsbtBumpFeeError{Kind: PsbtBumpFeeErrOriginalFee, Err: err}
	}
	fee, err := types.ParseAmount(b.Fee)
	if err != nil {
		return model.PsbtBumpFee{}, &PsbtBumpFeeError{Kind: PsbtBumpFeeErrFee, Err: err}
	}
	return model.PsbtBumpFee{
		Psbt:        p,
		OriginalFee: original,
		Fee:         fee,
		Errors:      b.Errors,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (s Send) IntoModel() (model.Send, error) {
	txid, err := types.OptTxid(s.Txid)
	if err != nil {
		return model.Send{}, &SendError{Kind: SendErrTxid, Err: err}
	}
	tx, err := types.OptTx(s.Hex)
	if err != nil {
		return model.Send{}, &SendError{Kind: SendErrHex, Err: err}
	}
	p, err := types.OptPsbt(s.Psbt)
	if err != nil {
		return model.Send{}, &SendError{Kind: SendErrPsbt, Err: err}
	}
	return model.Send{Complete: s.Complete, Txid: txid, Tx: tx, Psbt: p}, nil
}
