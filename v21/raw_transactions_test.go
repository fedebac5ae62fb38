package v21_test

import (
	"errors"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v21"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestTestMempoolAccept(t *testing.T) {
	w := v21.TestMempoolAccept{
		{Txid: txidA, Allowed: true, Vsize: ptr[int64](141), Fees: &v21.MempoolAcceptanceFees{Base: "0.00000141"}},
		{Txid: txidB, Allowed: false, RejectReason: ptr("txn-already-in-mempool")},
	}
	got, err := w.IntoModel()
	require.NoError(t, err)
	require.Len(t, got.Results, 2)

	accepted := got.Results[0]
	require.NotNil(t, accepted.Vsize)
	assert.Equal(t, uint32(141), *accepted.Vsize)
	require.NotNil(t, accepted.Fees)
	assert.Equal(t, types.Amount(141), accepted.Fees.Base)
	assert.Nil(t, accepted.Wtxid)

	rejected := got.Results[1]
	assert.Nil(t, rejected.Vsize)
	assert.Nil(t, rejected.Fees)
	assert.Equal(t, "txn-already-in-mempool", *rejected.RejectReason)
}

func TestTestMempoolAcceptErrors(t *testing.T) {
	tests := []struct {
		name string
		item v21.MempoolAcceptance
		kind v21.MempoolAcceptanceErrorKind
	}{
		{"txid", v21.MempoolAcceptance{Txid: "abc"}, v21.MempoolAcceptanceErrTxid},
		{"vsize", v21.MempoolAcceptance{Txid: txidA, Vsize: ptr[int64](-5)}, v21.MempoolAcceptanceErrNumeric},
		{"base", v21.MempoolAcceptance{Txid: txidA, Fees: &v21.MempoolAcceptanceFees{Base: "1e-9"}}, v21.MempoolAcceptanceErrBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v21.TestMempoolAccept{tt.item}.IntoModel()
			var outer *v21.TestMempoolAcceptError
			require.True(t, errors.As(err, &outer))
			var e *v21.MempoolAcceptanceError
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}
