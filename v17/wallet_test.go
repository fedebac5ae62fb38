package v17_test

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v17"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	p2pkh     = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	p2sh      = "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"
	p2wpkh    = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
	generator = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	seedID    = "0123456789abcdef0123456789abcdef01234567"
)

func ptr[T any](v T) *T { return &v }

func TestBalances(t *testing.T) {
	b, err := v17.GetBalance("12.34567890").IntoModel()
	require.NoError(t, err)
	assert.EqualValues(t, 1_234_567_890, b)

	u, err := v17.GetUnconfirmedBalance("0").IntoModel()
	require.NoError(t, err)
	assert.Zero(t, u)

	_, err = v17.GetReceivedByAddress("1e-9").IntoModel()
	assert.ErrorIs(t, err, types.ErrTooPrecise)
}

func TestBalanceDecodesBareNumber(t *testing.T) {
	var g v17.GetBalance
	require.NoError(t, json.Unmarshal([]byte(`0.00050000`), &g))
	b, err := g.IntoModel()
	require.NoError(t, err)
	assert.EqualValues(t, 50_000, b)
}

func TestAddresses(t *testing.T) {
	a, err := v17.GetNewAddress(p2wpkh).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, p2wpkh, a.String())

	text, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"`+p2wpkh+`"`, string(text))

	_, err = v17.GetRawChangeAddress("tb1").IntoModel()
	var addrErr *types.AddressError
	assert.True(t, errors.As(err, &addrErr))
}

func TestGetAddressesByLabel(t *testing.T) {
	w := v17.GetAddressesByLabel{
		p2pkh:  {Purpose: "receive"},
		p2wpkh: {Purpose: "send"},
	}
	m, err := w.IntoModel()
	require.NoError(t, err)
	require.Len(t, m, 2)
	assert.Equal(t, types.PurposeReceive, m[types.MustParseAddress(p2pkh)].Purpose)
	assert.Equal(t, types.PurposeSend, m[types.MustParseAddress(p2wpkh)].Purpose)

	w[p2sh] = v17.AddressInformation{Purpose: "refund"}
	_, err = w.IntoModel()
	var e *v17.GetAddressesByLabelError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetAddressesByLabelErrPurpose, e.Kind)

	_, err = v17.GetAddressesByLabel{"nope": {Purpose: "send"}}.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetAddressesByLabelErrAddress, e.Kind)
}

func addressInfo() v17.GetAddressInfo {
	return v17.GetAddressInfo{
		Address:        p2wpkh,
		ScriptPubKey:   "0014e8df018c7e326cc253faac7e46cdc51e68542c42",
		IsMine:         true,
		Solvable:       ptr(true),
		IsWitness:      true,
		WitnessVersion: ptr(int64(0)),
		WitnessProgram: ptr("e8df018c7e326cc253faac7e46cdc51e68542c42"),
		PubKey:         ptr(generator),
		IsCompressed:   ptr(true),
		Label:          "savings",
		Timestamp:      ptr(int64(1700000000)),
		HdKeyPath:      ptr("m/0'/0'/1'"),
		HdSeedID:       ptr(seedID),
		HdMasterKeyID:  ptr(seedID),
		Labels:         []v17.GetAddressInfoLabel{{Name: "savings", Purpose: "receive"}},
	}
}

func TestGetAddressInfo(t *testing.T) {
	info, err := addressInfo().IntoModel()
	require.NoError(t, err)
	assert.Equal(t, p2wpkh, info.Address.String())
	assert.Equal(t, byte(0x14), info.ScriptPubKey[1])
	assert.Equal(t, uint8(0), *info.WitnessVersion)
	assert.Len(t, info.WitnessProgram, 20)
	assert.Nil(t, info.Script)
	assert.Nil(t, info.PubKeys)
	assert.Equal(t, generator, hex.EncodeToString(info.PubKey.SerializeCompressed()))
	assert.Equal(t, uint32(1700000000), *info.Timestamp)
	assert.Equal(t, seedID, info.HdSeedID.String())
	assert.Equal(t, []string{"savings"}, info.Labels)
	assert.Nil(t, info.Embedded)

	require.NotNil(t, info.Label)
	assert.Equal(t, "savings", *info.Label)
	require.NotNil(t, info.HdMasterKeyID)
	assert.Equal(t, seedID, info.HdMasterKeyID.String())
	assert.Nil(t, info.HdMasterFingerprint)
	assert.Equal(t, map[string]types.AddressPurpose{"savings": types.PurposeReceive}, info.LabelPurposes)

	out, err := json.Marshal(info)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, generator, decoded["pubkey"])
	assert.Equal(t, seedID, decoded["hdmasterkeyid"])
	assert.Equal(t, map[string]any{"savings": "receive"}, decoded["label_purposes"])
}

func TestGetAddressInfoEmbedded(t *testing.T) {
	w := addressInfo()
	w.Address = p2sh
	w.IsScript = true
	w.Script = ptr("witness_v0_keyhash")
	w.Embedded = &v17.GetAddressInfoEmbedded{
		Address:      p2wpkh,
		ScriptPubKey: "0014e8df018c7e326cc253faac7e46cdc51e68542c42",
		IsWitness:    true,
		PubKeys:      []string{generator},
		SigsRequired: ptr(int64(1)),
	}
	info, err := w.IntoModel()
	require.NoError(t, err)
	require.NotNil(t, info.Embedded)
	assert.Equal(t, types.ScriptWitnessV0KeyHash, *info.Script)
	assert.Equal(t, p2wpkh, info.Embedded.Address.String())
	require.Len(t, info.Embedded.PubKeys, 1)
	assert.Equal(t, uint32(1), *info.Embedded.SigsRequired)

	w.Embedded.PubKeys = []string{generator, "02ff"}
	_, err = w.IntoModel()
	var e *v17.GetAddressInfoError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetAddressInfoErrEmbedded, e.Kind)
	var inner *v17.GetAddressInfoEmbeddedError
	require.True(t, errors.As(err, &inner))
	assert.Equal(t, v17.GetAddressInfoEmbeddedErrPubKeys, inner.Kind)
	var decodeErr *types.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestGetAddressInfoErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*v17.GetAddressInfo)
		kind   v17.GetAddressInfoErrorKind
	}{
		{"address", func(g *v17.GetAddressInfo) { g.Address = "x" }, v17.GetAddressInfoErrAddress},
		{"script_pubkey", func(g *v17.GetAddressInfo) { g.ScriptPubKey = "0" }, v17.GetAddressInfoErrScriptPubKey},
		{"witness_version", func(g *v17.GetAddressInfo) { g.WitnessVersion = ptr(int64(300)) }, v17.GetAddressInfoErrNumeric},
		{"witness_program", func(g *v17.GetAddressInfo) { g.WitnessProgram = ptr("zz") }, v17.GetAddressInfoErrWitnessProgram},
		{"script", func(g *v17.GetAddressInfo) { g.Script = ptr("p2pkh") }, v17.GetAddressInfoErrScript},
		{"hex", func(g *v17.GetAddressInfo) { g.Hex = ptr("0") }, v17.GetAddressInfoErrHex},
		{"pubkey", func(g *v17.GetAddressInfo) { g.PubKey = ptr("00") }, v17.GetAddressInfoErrPubKey},
		{"hd_seed_id", func(g *v17.GetAddressInfo) { g.HdSeedID = ptr("00") }, v17.GetAddressInfoErrHdSeedID},
		{"hd_master_key_id", func(g *v17.GetAddressInfo) { g.HdMasterKeyID = ptr("zz") }, v17.GetAddressInfoErrHdMasterKeyID},
		{"labels", func(g *v17.GetAddressInfo) { g.Labels[0].Purpose = "refund" }, v17.GetAddressInfoErrLabels},
	}
	for _, tt := range tests {
		w := addressInfo()
		tt.modify(&w)
		_, err := w.IntoModel()
		var e *v17.GetAddressInfoError
		require.True(t, errors.As(err, &e), tt.name)
		assert.Equal(t, tt.kind, e.Kind, tt.name)
		if tt.kind != v17.GetAddressInfoErrNumeric {
			assert.Contains(t, err.Error(), "`"+tt.name+"`", tt.name)
		}
	}
}

func walletTx(t *testing.T) (v17.GetTransaction, *wire.MsgTx) {
	tx, raw := rawTx(t)
	return v17.GetTransaction{
		Amount:            "-0.50000000",
		Fee:               ptr(json.Number("-0.00002260")),
		Confirmations:     6,
		BlockHash:         ptr(block),
		BlockIndex:        ptr(int64(3)),
		BlockTime:         ptr(int64(1700000600)),
		Txid:              tx.TxHash().String(),
		WalletConflicts:   []string{},
		Time:              1700000000,
		TimeReceived:      1700000001,
		Bip125Replaceable: "no",
		Details: []v17.GetTransactionDetail{{
			Address:  ptr(p2pkh),
			Category: "send",
			Amount:   "-0.50000000",
			Vout:     0,
			Fee:      ptr(json.Number("-0.00002260")),
		}},
		Hex: raw,
	}, tx
}

func TestGetTransaction(t *testing.T) {
	w, tx := walletTx(t)
	got, err := w.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, types.SignedAmount(-50_000_000), got.Amount)
	assert.Equal(t, types.SignedAmount(-2260), *got.Fee)
	assert.Equal(t, int64(6), got.Confirmations)
	assert.Equal(t, block, got.BlockHash.String())
	assert.Equal(t, uint32(3), *got.BlockIndex)
	assert.Equal(t, tx.TxHash(), chainhash.Hash(got.Txid))
	assert.Equal(t, types.Bip125No, got.Bip125Replaceable)
	assert.Equal(t, tx.TxHash(), got.Tx.TxHash())
	assert.Nil(t, got.Wtxid)
	assert.Nil(t, got.BlockHeight)
	assert.Nil(t, got.LastProcessedBlock)
	require.Len(t, got.Details, 1)
	assert.Equal(t, types.CategorySend, got.Details[0].Category)
	assert.Equal(t, p2pkh, got.Details[0].Address.String())
}

func TestGetTransactionErrors(t *testing.T) {
	w, _ := walletTx(t)
	w.WalletConflicts = []string{txidA, "nope", "nah"}
	_, err := w.IntoModel()
	var e *v17.GetTransactionError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetTransactionErrWalletConflicts, e.Kind)
	var hexErr *types.HexError
	require.True(t, errors.As(err, &hexErr))
	assert.Equal(t, 4, hexErr.Got)

	w, _ = walletTx(t)
	w.Details = append(w.Details, v17.GetTransactionDetail{Category: "move", Amount: "1"})
	_, err = w.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetTransactionErrDetails, e.Kind)
	var detail *v17.GetTransactionDetailError
	require.True(t, errors.As(err, &detail))
	assert.Equal(t, v17.GetTransactionDetailErrCategory, detail.Kind)

	w, _ = walletTx(t)
	w.Bip125Replaceable = "maybe"
	_, err = w.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetTransactionErrBip125Replaceable, e.Kind)

	w, _ = walletTx(t)
	w.Hex = "00"
	_, err = w.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetTransactionErrTx, e.Kind)
}

func TestGetWalletInfo(t *testing.T) {
	w := v17.GetWalletInfo{
		WalletName:         "",
		WalletVersion:      169900,
		Balance:            "1.00000000",
		UnconfirmedBalance: "0",
		ImmatureBalance:    "50",
		TxCount:            2,
		KeypoolOldest:      1700000000,
		KeypoolSize:        1000,
		PayTxFee:           "0",
		HdSeedID:           ptr(seedID),
		PrivateKeysEnabled: true,
	}
	info, err := w.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, types.Amount(5_000_000_000), info.ImmatureBalance)
	assert.Equal(t, uint32(1700000000), *info.KeypoolOldest)
	assert.Nil(t, info.UnlockedUntil)
	assert.Nil(t, info.Format)
	assert.Equal(t, seedID, info.HdSeedID.String())

	w.PayTxFee = "x"
	_, err = w.IntoModel()
	var e *v17.GetWalletInfoError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetWalletInfoErrPayTxFee, e.Kind)
	assert.Contains(t, err.Error(), "`pay_tx_fee`")
}

func TestBumpFee(t *testing.T) {
	w := v17.BumpFee{Txid: txidA, OriginalFee: "0.00001000", Fee: "0.00002000", Errors: []string{}}
	got, err := w.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, types.Amount(2000), got.Fee)

	w.OriginalFee = "-0.1"
	_, err = w.IntoModel()
	var e *v17.BumpFeeError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.BumpFeeErrOriginalFee, e.Kind)
}

func TestWalletProcessPsbt(t *testing.T) {
	p, err := psbt.New([]*wire.OutPoint{wire.NewOutPoint(&chainhash.Hash{3}, 0)},
		[]*wire.TxOut{wire.NewTxOut(1000, []byte{0x51})}, 2, 0, []uint32{wire.MaxTxInSequenceNum})
	require.NoError(t, err)
	b64, err := p.B64Encode()
	require.NoError(t, err)

	got, err := v17.WalletProcessPsbt{Psbt: b64, Complete: false}.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, p.UnsignedTx.TxHash(), got.Psbt.UnsignedTx.TxHash())
	assert.Nil(t, got.Tx)

	_, err = v17.WalletProcessPsbt{Psbt: "!!"}.IntoModel()
	var e *v17.WalletProcessPsbtError
	assert.True(t, errors.As(err, &e))
}

func TestSendTxids(t *testing.T) {
	s, err := v17.SendToAddress(txidA).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, txidA, s.String())

	_, err = v17.SendMany(strings.Repeat("g", 64)).IntoModel()
	assert.ErrorIs(t, err, types.ErrInvalidChar)
}

func TestListUnspent(t *testing.T) {
	item := v17.ListUnspentItem{
		Txid:          txidA,
		Vout:          1,
		Address:       ptr(p2wpkh),
		ScriptPubKey:  "0014e8df018c7e326cc253faac7e46cdc51e68542c42",
		Amount:        "0.25",
		Confirmations: 10,
		Spendable:     true,
		Solvable:      true,
		Descriptor:    ptr("wpkh([d34db33f/84'/0'/0']" + generator + ")#abcdefgh"),
		Safe:          true,
	}
	got, err := v17.ListUnspent{item, item}.IntoModel()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, types.Amount(25_000_000), got[0].Amount)
	assert.Equal(t, uint32(10), got[1].Confirmations)
	assert.Nil(t, got[0].RedeemScript)

	bad1, bad2 := item, item
	bad1.Confirmations = -1
	bad2.Txid = "x"
	_, err = v17.ListUnspent{item, bad1, bad2}.IntoModel()
	var e *v17.ListUnspentItemError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.ListUnspentItemErrNumeric, e.Kind)

	empty, err := v17.ListUnspent{}.IntoModel()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRescanBlockchain(t *testing.T) {
	got, err := v17.RescanBlockchain{StartHeight: 0, StopHeight: 800000}.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, uint32(800000), got.StopHeight)

	_, err = v17.RescanBlockchain{StartHeight: -5}.IntoModel()
	var numErr *types.NumericError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "start_height", numErr.Field)
}
