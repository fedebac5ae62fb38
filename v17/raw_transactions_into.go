package v17

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetRawTransaction) IntoModel() (model.GetRawTransaction, error) {
	tx, err := types.DecodeTx(string(g))
	if err != nil {
		return model.GetRawTransaction{}, err
	}
	return model.GetRawTransaction{Tx: tx}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (s SendRawTransaction) IntoModel() (model.SendRawTransaction, error) {
	txid, err := types.ParseTxid(string(s))
	return model.SendRawTransaction(txid), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (t TestMempoolAccept) IntoModel() (model.TestMempoolAccept, error) {
	results, err := types.ConvertEach(t, MempoolAcceptance.IntoModel)
	if err != nil {
		return model.TestMempoolAccept{}, &TestMempoolAcceptError{Err: err}
	}
	return model.TestMempoolAccept{Results: results}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (m MempoolAcceptance) IntoModel() (model.MempoolAcceptance, error) {
	txid, err := types.ParseTxid(m.Txid)
	if err != nil {
		return model.MempoolAcceptance{}, &MempoolAcceptanceError{Kind: MempoolAcceptanceErrTxid, Err: err}
	}
	return model.MempoolAcceptance{
		Txid:         txid,
		Allowed:      m.Allowed,
		RejectReason: m.RejectReason,
	}, nil
}
