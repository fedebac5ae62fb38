package v24

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetMempoolInfo) IntoModel() (model.GetMempoolInfo, error) {
	fail := func(kind GetMempoolInfoErrorKind, err error) (model.GetMempoolInfo, error) {
		return model.GetMempoolInfo{}, &GetMempoolInfoError{Kind: kind, Err: err}
	}

	size, err := types.ToUint32(g.Size, "size")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	bytes, err := types.ToUint32(g.Bytes, "bytes")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	usage, err := types.ToUint32(g.Usage, "usage")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	totalFee, err := types.ParseAmount(g.TotalFee)
	if err != nil {
		return fail(GetMempoolInfoErrTotalFee, err)
	}
	maxMempool, err := types.ToUint32(g.MaxMempool, "maxmempool")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	minFee, err := types.ParseAmount(g.MempoolMinFee)
	if err != nil {
		return fail(GetMempoolInfoErrMempoolMinFee, err)
	}
	minRelay, err := types.ParseAmount(g.MinRelayTxFee)
	if err != nil {
		return fail(GetMempoolInfoErrMinRelayTxFee, err)
	}
	incremental, err := types.ParseAmount(g.IncrementalRelayFee)
	if err != nil {
		return fail(GetMempoolInfoErrIncrementalRelayFee, err)
	}
	unbroadcast, err := types.ToUint32(g.UnbroadcastCount, "unbroadcastcount")
	if err != nil {
		return fail(GetMempoolInfoErrNumeric, err)
	}
	loaded, fullRbf := g.Loaded, g.FullRbf

	return model.GetMempoolInfo{
		Loaded:              &loaded,
		Size:                size,
		Bytes:               bytes,
		Usage:               usage,
		TotalFee:            &totalFee,
		MaxMempool:          maxMempool,
		MempoolMinFee:       minFee,
		MinRelayTxFee:       minRelay,
		IncrementalRelayFee: &incremental,
		UnbroadcastCount:    &unbroadcast,
		FullRbf:             &fullRbf,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetTxSpendingPrevout) IntoModel() (model.GetTxSpendingPrevout, error) {
	items, err := types.ConvertEach(g, GetTxSpendingPrevoutItem.IntoModel)
	return model.GetTxSpendingPrevout(items), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (i GetTxSpendingPrevoutItem) IntoModel() (model.GetTxSpendingPrevoutItem, error) {
	txid, err := types.ParseTxid(i.Txid)
	if err != nil {
		return model.GetTxSpendingPrevoutItem{}, &GetTxSpendingPrevoutError{Kind: GetTxSpendingPrevoutErrTxid, Err: err}
	}
	vout, err := types.ToUint32(i.Vout, "vout")
	if err != nil {
		return model.GetTxSpendingPrevoutItem{}, &GetTxSpendingPrevoutError{Kind: GetTxSpendingPrevoutErrNumeric, Err: err}
	}
	spending, err := types.OptTxid(i.SpendingTxid)
	if err != nil {
		return model.GetTxSpendingPrevoutItem{}, &GetTxSpendingPrevoutError{Kind: GetTxSpendingPrevoutErrSpendingTxid, Err: err}
	}
	return model.GetTxSpendingPrevoutItem{
		Outpoint:     wire.OutPoint{Hash: chainhash.Hash(txid), Index: vout},
		SpendingTxid: spending,
	}, nil
}
