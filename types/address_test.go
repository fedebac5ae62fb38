package types_test

import (
	"errors"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	p2pkh  = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	p2sh   = "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"
	p2wpkh = "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"
)

func TestParseAddress(t *testing.T) {
	for _, s := range []string{p2pkh, p2sh, p2wpkh} {
		a, err := types.ParseAddress(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, a.String())
		assert.Equal(t, &chaincfg.MainNetParams, a.Net())
		assert.True(t, a.IsValidForNetwork(&chaincfg.MainNetParams))
		assert.False(t, a.IsValidForNetwork(&chaincfg.TestNet3Params))
		assert.Equal(t, s, a.Decoded().EncodeAddress())
	}
}

func TestParseAddressInvalid(t *testing.T) {
	_, err := types.ParseAddress("bc1qnotanaddress")
	var addrErr *types.AddressError
	require.True(t, errors.As(err, &addrErr))
	assert.Equal(t, "bc1qnotanaddress", addrErr.Input)
}

func TestAddressComparable(t *testing.T) {
	m := map[types.Address]int{}
	m[types.MustParseAddress(p2pkh)] = 1
	m[types.MustParseAddress(p2pkh)] = 2
	assert.Len(t, m, 1)

	var zero types.Address
	assert.True(t, zero.IsZero())
	assert.False(t, types.MustParseAddress(p2sh).IsZero())

	opt, err := types.OptAddress(nil)
	require.NoError(t, err)
	assert.Nil(t, opt)
}
