package types_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generator = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func sampleTx(t *testing.T) (*wire.MsgTx, string) {
	t.Helper()
	tx := wire.NewMsgTx(2)
	tx.AddTxIn(wire.NewTxIn(wire.NewOutPoint(&chainhash.Hash{1}, 0), nil, nil))
	tx.AddTxOut(wire.NewTxOut(50_000, []byte{0x00, 0x14}))
	var buf bytes.Buffer
	require.NoError(t, tx.Serialize(&buf))
	return tx, hex.EncodeToString(buf.Bytes())
}

func TestDecodeTx(t *testing.T) {
	want, raw := sampleTx(t)
	tx, err := types.DecodeTx(raw)
	require.NoError(t, err)
	assert.Equal(t, want.TxHash(), tx.TxHash())

	_, err = types.DecodeTx("abc")
	assert.ErrorIs(t, err, types.ErrInvalidLength)

	_, err = types.DecodeTx("00")
	var decodeErr *types.DecodeError
	assert.ErrorAs(t, err, &decodeErr)

	_, err = types.DecodeTx(raw + "deadbeef")
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "transaction", decodeErr.What)
	assert.ErrorIs(t, err, types.ErrTrailingData)

	tx, err = types.OptTx(nil)
	require.NoError(t, err)
	assert.Nil(t, tx)
}

func TestParsePsbt(t *testing.T) {
	p, err := psbt.New([]*wire.OutPoint{wire.NewOutPoint(&chainhash.Hash{2}, 1)},
		[]*wire.TxOut{wire.NewTxOut(1000, []byte{0x51})}, 2, 0, []uint32{wire.MaxTxInSequenceNum})
	require.NoError(t, err)
	b64, err := p.B64Encode()
	require.NoError(t, err)

	got, err := types.ParsePsbt(b64)
	require.NoError(t, err)
	assert.Equal(t, p.UnsignedTx.TxHash(), got.UnsignedTx.TxHash())

	_, err = types.ParsePsbt("cHNidP8=garbage")
	var decodeErr *types.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "psbt", decodeErr.What)
}

func TestParsePublicKey(t *testing.T) {
	pk, err := types.ParsePublicKey(generator)
	require.NoError(t, err)
	assert.Equal(t, generator, hex.EncodeToString(pk.SerializeCompressed()))

	_, err = types.ParsePublicKey("02" + generator[4:])
	assert.Error(t, err)

	keys, err := types.ParsePublicKeys([]string{generator, "zz"})
	assert.Nil(t, keys)
	assert.ErrorIs(t, err, types.ErrInvalidChar)
}

func TestPublicKeyText(t *testing.T) {
	pk, err := types.ParsePublicKey(generator)
	require.NoError(t, err)
	assert.True(t, pk.Compressed)
	assert.Equal(t, generator, pk.String())

	uncompressed := hex.EncodeToString(pk.SerializeUncompressed())
	full, err := types.ParsePublicKey(uncompressed)
	require.NoError(t, err)
	assert.False(t, full.Compressed)

	out, err := json.Marshal(struct {
		PubKey  *types.PublicKey  `json:"pubkey"`
		PubKeys []types.PublicKey `json:"pubkeys"`
	}{&pk, []types.PublicKey{full}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"pubkey":"`+generator+`","pubkeys":["`+uncompressed+`"]}`, string(out))
}

func TestParseServiceFlags(t *testing.T) {
	f, err := types.ParseServiceFlags("0000000000000409")
	require.NoError(t, err)
	assert.Equal(t, wire.SFNodeNetwork|wire.SFNodeWitness|wire.SFNodeNetworkLimited, f)

	_, err = types.ParseServiceFlags("0409")
	assert.ErrorIs(t, err, types.ErrInvalidLength)
}
