package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   json.Number
		want types.Amount
		err  error
	}{
		{"0", 0, nil},
		{"0.00000001", 1, nil},
		{"1.5", 150_000_000, nil},
		{"0.00001000", 1000, nil},
		{"21000000", types.MaxMoney, nil},
		{"0.000000001", 0, types.ErrTooPrecise},
		{"-0.1", 0, types.ErrNegative},
		{"21000000.00000001", 0, types.ErrTooBig},
	}
	for _, tt := range tests {
		got, err := types.ParseAmount(tt.in)
		if tt.err != nil {
			assert.ErrorIs(t, err, tt.err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseAmountGarbage(t *testing.T) {
	_, err := types.ParseAmount("one bitcoin")
	var amountErr *types.AmountError
	require.True(t, errors.As(err, &amountErr))
	assert.Equal(t, "one bitcoin", amountErr.Input)
}

func TestParseSignedAmount(t *testing.T) {
	a, err := types.ParseSignedAmount("-0.00002260")
	require.NoError(t, err)
	assert.Equal(t, types.SignedAmount(-2260), a)

	_, err = types.ParseSignedAmount("-21000001")
	assert.ErrorIs(t, err, types.ErrTooBig)

	opt, err := types.OptSignedAmount(nil)
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestAmountString(t *testing.T) {
	assert.Equal(t, "1.50000000 BTC", types.Amount(150_000_000).String())
	assert.Equal(t, "-0.00002260 BTC", types.SignedAmount(-2260).String())
	assert.Equal(t, "0.00000001", types.Amount(1).BTC().StringFixed(8))
}
