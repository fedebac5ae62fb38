package v22

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

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
	wtxid, err := types.ParseWtxid(m.Wtxid)
	if err != nil {
		return model.MempoolAcceptance{}, &MempoolAcceptanceError{Kind: MempoolAcceptanceErrWtxid, Err: err}
	}
	var vsize *uint32
	if m.Vsize != nil {
		v, err := types.ToUint32(*m.Vsize, "vsize")
		if err != nil {
			return model.MempoolAcceptance{}, &MempoolAcceptanceError{Kind: MempoolAcceptanceErrNumeric, Err: err}
		}
		vsize = &v
	}
	var fees *model.MempoolAcceptanceFees
	if m.Fees != nil {
		base, err := types.ParseAmount(m.Fees.Base)
		if err != nil {
			return model.MempoolAcceptance{}, &MempoolAcceptanceError{Kind: MempoolAcceptanceErrBase, Err: err}
		}
		fees = &model.MempoolAcceptanceFees{Base: base}
	}
	return model.MempoolAcceptance{
		Txid:         txid,
		Wtxid:        &wtxid,
		Allowed:      m.Allowed,
		Vsize:        vsize,
		Fees:         fees,
		RejectReason: m.RejectReason,
	}, nil
}
