package v26

import (
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (l LastProcessedBlock) IntoModel() (model.LastProcessedBlock, error) {
	hash, err := types.ParseBlockHash(l.Hash)
	if err != nil {
		return model.LastProcessedBlock{}, &LastProcessedBlockError{Kind: LastProcessedBlockErrHash, Err: err}
	}
	height, err := types.ToUint32(l.Height, "height")
	if err != nil {
		return model.LastProcessedBlock{}, &LastProcessedBlockError{Kind: LastProcessedBlockErrHeight, Err: err}
	}
	return model.LastProcessedBlock{Hash: hash, Height: height}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetBalances) IntoModel() (model.GetBalances, error) {
	mine, err := g.Mine.IntoModel()
	if err != nil {
		return model.GetBalances{}, &GetBalancesError{Kind: GetBalancesErrMine, Err: err}
	}
	var watchOnly *model.GetBalancesWatchOnly
	if g.WatchOnly != nil {
		w, err := g.WatchOnly.IntoModel()
		if err != nil {
			return model.GetBalances{}, &GetBalancesError{Kind: GetBalancesErrWatchOnly, Err: err}
		}
		watchOnly = &w
	}
	last, err := g.LastProcessedBlock.IntoModel()
	if err != nil {
		return model.GetBalances{}, &GetBalancesError{Kind: GetBalancesErrLastProcessedBlock, Err: err}
	}
	return model.GetBalances{Mine: mine, WatchOnly: watchOnly, LastProcessedBlock: &last}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetTransaction) IntoModel() (model.GetTransaction, error) {
	fail := func(kind GetTransactionErrorKind, err error) (model.GetTransaction, error) {
		return model.GetTransaction{}, &GetTransactionError{Kind: kind, Err: err}
	}

	amount, err := types.ParseSignedAmount(g.Amount)
	if err != nil {
		return fail(GetTransactionErrAmount, err)
	}
	fee, err := types.OptSignedAmount(g.Fee)
	if err != nil {
		return fail(GetTransactionErrFee, err)
	}
	blockHash, err := types.OptBlockHash(g.BlockHash)
	if err != nil {
		return fail(GetTransactionErrBlockHash, err)
	}
	blockHeight, err := types.OptUint32(g.BlockHeight, "blockheight")
	if err != nil {
		return fail(GetTransactionErrNumeric, err)
	}
	blockIndex, err := types.OptUint32(g.BlockIndex, "blockindex")
	if err != nil {
		return fail(GetTransactionErrNumeric, err)
	}
	blockTime, err := types.OptUint32(g.BlockTime, "blocktime")
	if err != nil {
		return fail(GetTransactionErrNumeric, err)
	}
	txid, err := types.ParseTxid(g.Txid)
	if err != nil {
		return fail(GetTransactionErrTxid, err)
	}
	wtxid, err := types.ParseWtxid(g.Wtxid)
	if err != nil {
		return fail(GetTransactionErrWtxid, err)
	}
	conflicts, err := types.ParseTxids(g.WalletConflicts)
	if err != nil {
		return fail(GetTransactionErrWalletConflicts, err)
	}
	replacedBy, err := types.OptTxid(g.ReplacedByTxid)
	if err != nil {
		return fail(GetTransactionErrReplacedByTxid, err)
	}
	replaces, err := types.OptTxid(g.ReplacesTxid)
	if err != nil {
		return fail(GetTransactionErrReplacesTxid, err)
	}
	mempoolConflicts, err := types.ParseTxids(g.MempoolConflicts)
	if err != nil {
		return fail(GetTransactionErrMempoolConflicts, err)
	}
	time, err := types.ToUint32(g.Time, "time")
	if err != nil {
		return fail(GetTransactionErrNumeric, err)
	}
	timeReceived, err := types.ToUint32(g.TimeReceived, "timereceived")
	if err != nil {
		return fail(GetTransactionErrNumeric, err)
	}
	bip125, err := types.ParseBip125Replaceable(g.Bip125Replaceable)
	if err != nil {
		return fail(GetTransactionErrBip125Replaceable, err)
	}
	details, err := types.ConvertEach(g.Details, GetTransactionDetail.IntoModel)
	if err != nil {
		return fail(GetTransactionErrDetails, err)
	}
	tx, err := types.DecodeTx(g.Hex)
	if err != nil {
		return fail(GetTransactionErrTx, err)
	}
	last, err := g.LastProcessedBlock.IntoModel()
	if err != nil {
		return fail(GetTransactionErrLastProcessedBlock, err)
	}

	return model.GetTransaction{
		Amount:             amount,
		Fee:                fee,
		Confirmations:      g.Confirmations,
		Generated:          g.Generated,
		Trusted:            g.Trusted,
		BlockHash:          blockHash,
		BlockHeight:        blockHeight,
		BlockIndex:         blockIndex,
		BlockTime:          blockTime,
		Txid:               txid,
		Wtxid:              &wtxid,
		WalletConflicts:    conflicts,
		ReplacedByTxid:     replacedBy,
		ReplacesTxid:       replaces,
		MempoolConflicts:   mempoolConflicts,
		To:                 g.To,
		Time:               time,
		TimeReceived:       timeReceived,
		Comment:            g.Comment,
		Bip125Replaceable:  bip125,
		ParentDescriptors:  g.ParentDescs,
		Details:            details,
		Tx:                 tx,
		LastProcessedBlock: &last,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (d GetTransactionDetail) IntoModel() (model.GetTransactionDetail, error) {
	fail := func(kind GetTransactionDetailErrorKind, err error) (model.GetTransactionDetail, error) {
		return model.GetTransactionDetail{}, &GetTransactionDetailError{Kind: kind, Err: err}
	}

	address, err := types.OptAddress(d.Address)
	if err != nil {
		return fail(GetTransactionDetailErrAddress, err)
	}
	category, err := types.ParseTransactionCategory(d.Category)
	if err != nil {
		return fail(GetTransactionDetailErrCategory, err)
	}
	amount, err := types.ParseSignedAmount(d.Amount)
	if err != nil {
		return fail(GetTransactionDetailErrAmount, err)
	}
	vout, err := types.ToUint32(d.Vout, "vout")
	if err != nil {
		return fail(GetTransactionDetailErrNumeric, err)
	}
	fee, err := types.OptSignedAmount(d.Fee)
	if err != nil {
		return fail(GetTransactionDetailErrFee, err)
	}

	return model.GetTransactionDetail{
		InvolvesWatchOnly: d.InvolvesWatchOnly,
		Address:           address,
		Category:          category,
		Amount:            amount,
		Label:             d.Label,
		Vout:              vout,
		Fee:               fee,
		Abandoned:         d.Abandoned,
		ParentDescriptors: d.ParentDescs,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetWalletInfo) IntoModel() (model.GetWalletInfo, error) {
	fail := func(kind GetWalletInfoErrorKind, err error) (model.GetWalletInfo, error) {
		return model.GetWalletInfo{}, &GetWalletInfoError{Kind: kind, Err: err}
	}

	walletVersion, err := types.ToUint32(g.WalletVersion, "walletversion")
	if err != nil {
		return fail(GetWalletInfoErrNumeric, err)
	}
	balance, err := types.ParseAmount(g.Balance)
	if err != nil {
		return fail(GetWalletInfoErrBalance, err)
	}
	unconfirmed, err := types.ParseAmount(g.UnconfirmedBalance)
	if err != nil {
		return fail(GetWalletInfoErrUnconfirmedBalance, err)
	}
	immature, err := types.ParseAmount(g.ImmatureBalance)
	if err != nil {
		return fail(GetWalletInfoErrImmatureBalance, err)
	}
	txCount, err := types.ToUint32(g.TxCount, "txcount")
	if err != nil {
		return fail(GetWalletInfoErrNumeric, err)
	}
	keypoolOldest, err := types.OptUint32(g.KeypoolOldest, "keypoololdest")
	if err != nil {
		return fail(GetWalletInfoErrNumeric, err)
	}
	keypoolSize, err := types.ToUint32(g.KeypoolSize, "keypoolsize")
	if err != nil {
		return fail(GetWalletInfoErrNumeric, err)
	}
	keypoolInternal, err := types.OptUint32(g.KeypoolSizeHdInternal, "keypoolsize_hd_internal")
	if err != nil {
		return fail(GetWalletInfoErrNumeric, err)
	}
	unlockedUntil, err := types.OptUint32(g.UnlockedUntil, "unlocked_until")
	if err != nil {
		return fail(GetWalletInfoErrNumeric, err)
	}
	payTxFee, err := types.ParseAmount(g.PayTxFee)
	if err != nil {
		return fail(GetWalletInfoErrPayTxFee, err)
	}
	hdSeedID, err := types.Opt(g.HdSeedID, types.ParseHash160)
	if err != nil {
		return fail(GetWalletInfoErrHdSeedID, err)
	}
	birthtime, err := types.OptUint32(g.Birthtime, "birthtime")
	if err != nil {
		return fail(GetWalletInfoErrNumeric, err)
	}
	last, err := g.LastProcessedBlock.IntoModel()
	if err != nil {
		return fail(GetWalletInfoErrLastProcessedBlock, err)
	}

	var scanning *model.ScanningDetails
	if g.Scanning.Active {
		scanning = &model.ScanningDetails{Duration: g.Scanning.Duration, Progress: g.Scanning.Progress}
	}
	format := g.Format
	avoidReuse, descriptors := g.AvoidReuse, g.Descriptors
	externalSigner, blank := g.ExternalSigner, g.Blank

	return model.GetWalletInfo{
		WalletName:            g.WalletName,
		WalletVersion:         walletVersion,
		Format:                &format,
		Balance:               balance,
		UnconfirmedBalance:    unconfirmed,
		ImmatureBalance:       immature,
		TxCount:               txCount,
		KeypoolOldest:         keypoolOldest,
		KeypoolSize:           keypoolSize,
		KeypoolSizeHdInternal: keypoolInternal,
		UnlockedUntil:         unlockedUntil,
		PayTxFee:              payTxFee,
		HdSeedID:              hdSeedID,
		PrivateKeysEnabled:    g.PrivateKeysEnabled,
		AvoidReuse:            &avoidReuse,
		Scanning:              scanning,
		Descriptors:           &descriptors,
		ExternalSigner:        &externalSigner,
		Blank:                 &blank,
		Birthtime:             birthtime,
		LastProcessedBlock:    &last,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (w WalletProcessPsbt) IntoModel() (model.WalletProcessPsbt, error) {
	p, err := types.ParsePsbt(w.Psbt)
	if err != nil {
		return model.WalletProcessPsbt{}, &WalletProcessPsbtError{Kind: WalletProcessPsbtErrPsbt, Err: err}
	}
	tx, err := types.OptTx(w.Hex)
	if err != nil {
		return model.WalletProcessPsbt{}, &WalletProcessPsbtError{Kind: WalletProcessPsbtErrHex, Err: err}
	}
	return model.WalletProcessPsbt{Psbt: p, Complete: w.Complete, Tx: tx}, nil
}
