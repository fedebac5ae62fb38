package v17

import (
	"encoding/json"

	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
)

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetBalance) IntoModel() (model.GetBalance, error) {
	a, err := types.ParseAmount(json.Number(g))
	return model.GetBalance(a), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetUnconfirmedBalance) IntoModel() (model.GetUnconfirmedBalance, error) {
	a, err := types.ParseAmount(json.Number(g))
	return model.GetUnconfirmedBalance(a), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetReceivedByAddress) IntoModel() (model.GetReceivedByAddress, error) {
	a, err := types.ParseAmount(json.Number(g))
	return model.GetReceivedByAddress(a), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetNewAddress) IntoModel() (model.GetNewAddress, error) {
	a, err := types.ParseAddress(string(g))
	return model.GetNewAddress(a), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetRawChangeAddress) IntoModel() (model.GetRawChangeAddress, error) {
	a, err := types.ParseAddress(string(g))
	return model.GetRawChangeAddress(a), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetAddressesByLabel) IntoModel() (model.GetAddressesByLabel, error) {
	m, err := types.MapBy(g, types.ParseAddress, AddressInformation.IntoModel,
		func(err error) error { return &GetAddressesByLabelError{Kind: GetAddressesByLabelErrAddress, Err: err} },
		func(err error) error { return &GetAddressesByLabelError{Kind: GetAddressesByLabelErrPurpose, Err: err} },
	)
	return model.GetAddressesByLabel(m), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (a AddressInformation) IntoModel() (model.AddressInformation, error) {
	p, err := types.ParseAddressPurpose(a.Purpose)
	if err != nil {
		return model.AddressInformation{}, err
	}
	return model.AddressInformation{Purpose: p}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (g GetAddressInfo) IntoModel() (model.GetAddressInfo, error) {
	fail := func(kind GetAddressInfoErrorKind, err error) (model.GetAddressInfo, error) {
		return model.GetAddressInfo{}, &GetAddressInfoError{Kind: kind, Err: err}
	}

	address, err := types.ParseAddress(g.Address)
	if err != nil {
		return fail(GetAddressInfoErrAddress, err)
	}
	scriptPubKey, err := types.ParseHexBytes(g.ScriptPubKey)
	if err != nil {
		return fail(GetAddressInfoErrScriptPubKey, err)
	}
	witnessVersion, err := types.OptUint8(g.WitnessVersion, "witness_version")
	if err != nil {
		return fail(GetAddressInfoErrNumeric, err)
	}
	witnessProgram, err := types.OptHexBytes(g.WitnessProgram)
	if err != nil {
		return fail(GetAddressInfoErrWitnessProgram, err)
	}
	script, err := types.Opt(g.Script, types.ParseScriptType)
	if err != nil {
		return fail(GetAddressInfoErrScript, err)
	}
	hex, err := types.OptHexBytes(g.Hex)
	if err != nil {
		return fail(GetAddressInfoErrHex, err)
	}
	pubKeys, err := types.ParsePublicKeys(g.PubKeys)
	if err != nil {
		return fail(GetAddressInfoErrPubKeys, err)
	}
	sigsRequired, err := types.OptUint32(g.SigsRequired, "sigsrequired")
	if err != nil {
		return fail(GetAddressInfoErrNumeric, err)
	}
	pubKey, err := types.OptPublicKey(g.PubKey)
	if err != nil {
		return fail(GetAddressInfoErrPubKey, err)
	}
	var embedded *model.GetAddressInfoEmbedded
	if g.Embedded != nil {
		e, err := g.Embedded.IntoModel()
		if err != nil {
			return fail(GetAddressInfoErrEmbedded, err)
		}
		embedded = &e
	}
	timestamp, err := types.OptUint32(g.Timestamp, "timestamp")
	if err != nil {
		return fail(GetAddressInfoErrNumeric, err)
	}
	hdSeedID, err := types.Opt(g.HdSeedID, types.ParseHash160)
	if err != nil {
		return fail(GetAddressInfoErrHdSeedID, err)
	}
	hdMasterKeyID, err := types.Opt(g.HdMasterKeyID, types.ParseHash160)
	if err != nil {
		return fail(GetAddressInfoErrHdMasterKeyID, err)
	}
	purposes, err := labelPurposes(g.Labels)
	if err != nil {
		return fail(GetAddressInfoErrLabels, err)
	}
	label := g.Label

	return model.GetAddressInfo{
		Address:        address,
		ScriptPubKey:   scriptPubKey,
		IsMine:         g.IsMine,
		IsWatchOnly:    g.IsWatchOnly,
		Solvable:       g.Solvable,
		Descriptor:     g.Descriptor,
		IsScript:       g.IsScript,
		IsChange:       g.IsChange,
		IsWitness:      g.IsWitness,
		WitnessVersion: witnessVersion,
		WitnessProgram: witnessProgram,
		Script:         script,
		Hex:            hex,
		PubKeys:        pubKeys,
		SigsRequired:   sigsRequired,
		PubKey:         pubKey,
		Embedded:       embedded,
		IsCompressed:   g.IsCompressed,
		Timestamp:      timestamp,
		HdKeyPath:      g.HdKeyPath,
		HdSeedID:       hdSeedID,
		Labels:         labelNames(g.Labels),
		Label:          &label,
		HdMasterKeyID:  hdMasterKeyID,
		LabelPurposes:  purposes,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (e GetAddressInfoEmbedded) IntoModel() (model.GetAddressInfoEmbedded, error) {
	fail := func(kind GetAddressInfoEmbeddedErrorKind, err error) (model.GetAddressInfoEmbedded, error) {
		return model.GetAddressInfoEmbedded{}, &GetAddressInfoEmbeddedError{Kind: kind, Err: err}
	}

	address, err := types.ParseAddress(e.Address)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrAddress, err)
	}
	scriptPubKey, err := types.ParseHexBytes(e.ScriptPubKey)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrScriptPubKey, err)
	}
	witnessVersion, err := types.OptUint8(e.WitnessVersion, "witness_version")
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrNumeric, err)
	}
	witnessProgram, err := types.OptHexBytes(e.WitnessProgram)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrWitnessProgram, err)
	}
	script, err := types.Opt(e.Script, types.ParseScriptType)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrScript, err)
	}
	hex, err := types.OptHexBytes(e.Hex)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrHex, err)
	}
	pubKeys, err := types.ParsePublicKeys(e.PubKeys)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrPubKeys, err)
	}
	sigsRequired, err := types.OptUint32(e.SigsRequired, "sigsrequired")
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrNumeric, err)
	}
	pubKey, err := types.OptPublicKey(e.PubKey)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrPubKey, err)
	}
	purposes, err := labelPurposes(e.Labels)
	if err != nil {
		return fail(GetAddressInfoEmbeddedErrLabels, err)
	}

	return model.GetAddressInfoEmbedded{
		Address:        address,
		ScriptPubKey:   scriptPubKey,
		Solvable:       e.Solvable,
		Descriptor:     e.Descriptor,
		IsScript:       e.IsScript,
		IsChange:       e.IsChange,
		IsWitness:      e.IsWitness,
		WitnessVersion: witnessVersion,
		WitnessProgram: witnessProgram,
		Script:         script,
		Hex:            hex,
		PubKeys:        pubKeys,
		SigsRequired:   sigsRequired,
		PubKey:         pubKey,
		IsCompressed:   e.IsCompressed,
		Labels:         labelNames(e.Labels),
		Label:          e.Label,
		LabelPurposes:  purposes,
	}, nil
}

func labelNames(ls []GetAddressInfoLabel) []string {
	if ls == nil {
		return nil
	}
	names := make([]string, 0, len(ls))
	for _, l := range ls {
		names = append(names, l.Name)
	}
	return names
}

// labelPurposes keeps the purpose each label object carried before v18. A
// label listed twice keeps its last purpose.
func labelPurposes(ls []GetAddressInfoLabel) (map[string]types.AddressPurpose, error) {
	if ls == nil {
		return nil, nil
	}
	out := make(map[string]types.AddressPurpose, len(ls))
	for _, l := range ls {
		p, err := types.ParseAddressPurpose(l.Purpose)
		if err != nil {
			return nil, err
		}
		out[l.Name] = p
	}
	return out, nil
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
	conflicts, err := types.ParseTxids(g.WalletConflicts)
	if err != nil {
		return fail(GetTransactionErrWalletConflicts, err)
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

	return model.GetTransaction{
		Amount:            amount,
		Fee:               fee,
		Confirmations:     g.Confirmations,
		Generated:         g.Generated,
		Trusted:           g.Trusted,
		BlockHash:         blockHash,
		BlockIndex:        blockIndex,
		BlockTime:         blockTime,
		Txid:              txid,
		WalletConflicts:   conflicts,
		To:                g.To,
		Time:              time,
		TimeReceived:      timeReceived,
		Comment:           g.Comment,
		Bip125Replaceable: bip125,
		Details:           details,
		Tx:                tx,
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
	keypoolOldest, err := types.ToUint32(g.KeypoolOldest, "keypoololdest")
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

	return model.GetWalletInfo{
		WalletName:            g.WalletName,
		WalletVersion:         walletVersion,
		Balance:               balance,
		UnconfirmedBalance:    unconfirmed,
		ImmatureBalance:       immature,
		TxCount:               txCount,
		KeypoolOldest:         &keypoolOldest,
		KeypoolSize:           keypoolSize,
		KeypoolSizeHdInternal: keypoolInternal,
		UnlockedUntil:         unlockedUntil,
		PayTxFee:              payTxFee,
		HdSeedID:              hdSeedID,
		PrivateKeysEnabled:    g.PrivateKeysEnabled,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (b BumpFee) IntoModel() (model.BumpFee, error) {
	txid, err := types.ParseTxid(b.Txid)
	if err != nil {
		return model.BumpFee{}, &BumpFeeError{Kind: BumpFeeErrTxid, Err: err}
	}
	original, err := types.ParseAmount(b.OriginalFee)
	if err != nil {
		return model.BumpFee{}, &BumpFeeError{Kind: BumpFeeErrOriginalFee, Err: err}
	}
	fee, err := types.ParseAmount(b.Fee)
	if err != nil {
		return model.BumpFee{}, &BumpFeeError{Kind: BumpFeeErrFee, Err: err}
	}
	return model.BumpFee{
		Txid:        txid,
		OriginalFee: original,
		Fee:         fee,
		Errors:      b.Errors,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (w WalletProcessPsbt) IntoModel() (model.WalletProcessPsbt, error) {
	p, err := types.ParsePsbt(w.Psbt)
	if err != nil {
		return model.WalletProcessPsbt{}, &WalletProcessPsbtError{Err: err}
	}
	return model.WalletProcessPsbt{Psbt: p, Complete: w.Complete}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (s SendToAddress) IntoModel() (model.SendToAddress, error) {
	txid, err := types.ParseTxid(string(s))
	return model.SendToAddress(txid), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (s SendMany) IntoModel() (model.SendMany, error) {
	txid, err := types.ParseTxid(string(s))
	return model.SendMany(txid), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (l ListUnspent) IntoModel() (model.ListUnspent, error) {
	items, err := types.ConvertEach(l, ListUnspentItem.IntoModel)
	return model.ListUnspent(items), err
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (i ListUnspentItem) IntoModel() (model.ListUnspentItem, error) {
	fail := func(kind ListUnspentItemErrorKind, err error) (model.ListUnspentItem, error) {
		return model.ListUnspentItem{}, &ListUnspentItemError{Kind: kind, Err: err}
	}

	txid, err := types.ParseTxid(i.Txid)
	if err != nil {
		return fail(ListUnspentItemErrTxid, err)
	}
	vout, err := types.ToUint32(i.Vout, "vout")
	if err != nil {
		return fail(ListUnspentItemErrNumeric, err)
	}
	address, err := types.OptAddress(i.Address)
	if err != nil {
		return fail(ListUnspentItemErrAddress, err)
	}
	scriptPubKey, err := types.ParseHexBytes(i.ScriptPubKey)
	if err != nil {
		return fail(ListUnspentItemErrScriptPubKey, err)
	}
	amount, err := types.ParseAmount(i.Amount)
	if err != nil {
		return fail(ListUnspentItemErrAmount, err)
	}
	confirmations, err := types.ToUint32(i.Confirmations, "confirmations")
	if err != nil {
		return fail(ListUnspentItemErrNumeric, err)
	}
	redeemScript, err := types.OptHexBytes(i.RedeemScript)
	if err != nil {
		return fail(ListUnspentItemErrRedeemScript, err)
	}

	return model.ListUnspentItem{
		Txid:          txid,
		Vout:          vout,
		Address:       address,
		Label:         i.Label,
		ScriptPubKey:  scriptPubKey,
		Amount:        amount,
		Confirmations: confirmations,
		RedeemScript:  redeemScript,
		Spendable:     i.Spendable,
		Solvable:      i.Solvable,
		Descriptor:    i.Descriptor,
		Safe:          i.Safe,
	}, nil
}

// IntoModel converts version specific type to a version nonspecific, more
// strongly typed type.
func (r RescanBlockchain) IntoModel() (model.RescanBlockchain, error) {
	start, err := types.ToUint32(r.StartHeight, "start_height")
	if err != nil {
		return model.RescanBlockchain{}, err
	}
	stop, err := types.ToUint32(r.StopHeight, "stop_height")
	if err != nil {
		return model.RescanBlockchain{}, err
	}
	return model.RescanBlockchain{StartHeight: start, StopHeight: stop}, nil
}
