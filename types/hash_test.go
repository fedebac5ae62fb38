package types_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const genesis = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"

func TestParseBlockHash(t *testing.T) {
	h, err := types.ParseBlockHash(genesis)
	require.NoError(t, err)
	assert.Equal(t, genesis, h.String())
	// Display form is byte reversed.
	assert.Equal(t, byte(0x6f), h[0])
	assert.Equal(t, byte(0x00), h[31])

	text, err := h.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, genesis, string(text))
}

func TestParseTxidErrors(t *testing.T) {
	_, err := types.ParseTxid("not-hex")
	var hexErr *types.HexError
	require.True(t, errors.As(err, &hexErr))
	assert.ErrorIs(t, err, types.ErrInvalidLength)
	assert.Equal(t, 64, hexErr.Expected)
	assert.Equal(t, 7, hexErr.Got)

	bad := "abcde" + "g" + strings.Repeat("0", 58)
	_, err = types.ParseWtxid(bad)
	require.True(t, errors.As(err, &hexErr))
	assert.ErrorIs(t, err, types.ErrInvalidChar)
	assert.Equal(t, 5, hexErr.Got)
	assert.Equal(t, "invalid hex character at position 5", err.Error())
}

func TestParseTxidsFirstFailure(t *testing.T) {
	ids := []string{"zz", genesis, "0123"}
	_, err := types.ParseTxids(ids)
	var hexErr *types.HexError
	require.True(t, errors.As(err, &hexErr))
	assert.Equal(t, 2, hexErr.Got)

	got, err := types.ParseTxids([]string{genesis, strings.Repeat("1", 64)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, genesis, got[0].String())
}

func TestParseTxidsKeepsNil(t *testing.T) {
	got, err := types.ParseTxids(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = types.ParseTxids([]string{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	hashes, err := types.ParseBlockHashes(nil)
	require.NoError(t, err)
	assert.Nil(t, hashes)
}

func TestParseNaturalOrder(t *testing.T) {
	seed := "0123456789abcdef0123456789abcdef01234567"
	h, err := types.ParseHash160(seed)
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), h[0])
	assert.Equal(t, seed, h.String())

	work := strings.Repeat("0", 56) + "0000ffff"
	w, err := types.ParseWork(work)
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), w[31])
	assert.Equal(t, work, w.String())
}

func TestOptionalHashes(t *testing.T) {
	txid, err := types.OptTxid(nil)
	require.NoError(t, err)
	assert.Nil(t, txid)

	s := genesis
	hash, err := types.OptBlockHash(&s)
	require.NoError(t, err)
	require.NotNil(t, hash)
	assert.Equal(t, genesis, hash.String())

	bad := "00"
	_, err = types.OptBlockHash(&bad)
	assert.ErrorIs(t, err, types.ErrInvalidLength)
}

func TestParseHexBytes(t *testing.T) {
	b, err := types.ParseHexBytes("0014deadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x14, 0xde, 0xad, 0xbe, 0xef}, b)

	_, err = types.ParseHexBytes("abc")
	assert.ErrorIs(t, err, types.ErrInvalidLength)

	_, err = types.ParseHexBytes("zz")
	assert.ErrorIs(t, err, types.ErrInvalidChar)

	b, err = types.OptHexBytes(nil)
	require.NoError(t, err)
	assert.Nil(t, b)
}
