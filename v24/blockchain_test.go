package v24_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v24"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	txidA = strings.Repeat("a", 64)
	txidB = strings.Repeat("b", 64)
)

const mempoolInfoReply = `{
  "loaded": true,
  "size": 3,
  "bytes": 687,
  "usage": 4800,
  "total_fee": 0.00002061,
  "maxmempool": 300000000,
  "mempoolminfee": 0.00001000,
  "minrelaytxfee": 0.00001000,
  "incrementalrelayfee": 0.00001000,
  "unbroadcastcount": 1,
  "fullrbf": false
}`

func TestGetMempoolInfo(t *testing.T) {
	var w v24.GetMempoolInfo
	require.NoError(t, json.Unmarshal([]byte(mempoolInfoReply), &w))

	info, err := w.IntoModel()
	require.NoError(t, err)
	require.NotNil(t, info.Loaded)
	assert.True(t, *info.Loaded)
	assert.Equal(t, uint32(687), info.Bytes)
	assert.Equal(t, types.Amount(2061), *info.TotalFee)
	assert.Equal(t, types.Amount(1000), *info.IncrementalRelayFee)
	assert.Equal(t, uint32(1), *info.UnbroadcastCount)
	assert.False(t, *info.FullRbf)
}

func TestGetMempoolInfoErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*v24.GetMempoolInfo)
		kind   v24.GetMempoolInfoErrorKind
	}{
		{"total_fee", func(g *v24.GetMempoolInfo) { g.TotalFee = "x" }, v24.GetMempoolInfoErrTotalFee},
		{"incrementalrelayfee", func(g *v24.GetMempoolInfo) { g.IncrementalRelayFee = "-0.1" }, v24.GetMempoolInfoErrIncrementalRelayFee},
		{"unbroadcastcount", func(g *v24.GetMempoolInfo) { g.UnbroadcastCount = -1 }, v24.GetMempoolInfoErrNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var w v24.GetMempoolInfo
			require.NoError(t, json.Unmarshal([]byte(mempoolInfoReply), &w))
			tt.modify(&w)
			_, err := w.IntoModel()
			var e *v24.GetMempoolInfoError
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tt.kind, e.Kind)
		})
	}
}

func TestGetTxSpendingPrevout(t *testing.T) {
	w := v24.GetTxSpendingPrevout{
		{Txid: txidA, Vout: 0, SpendingTxid: &txidB},
		{Txid: txidA, Vout: 1},
	}
	got, err := w.IntoModel()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, txidA, got[0].Outpoint.Hash.String())
	assert.Equal(t, uint32(0), got[0].Outpoint.Index)
	require.NotNil(t, got[0].SpendingTxid)
	assert.Equal(t, txidB, got[0].SpendingTxid.String())
	assert.Equal(t, uint32(1), got[1].Outpoint.Index)
	assert.Nil(t, got[1].SpendingTxid)
}

func TestGetTxSpendingPrevoutErrors(t *testing.T) {
	_, err := v24.GetTxSpendingPrevout{{Txid: "abc", Vout: 0}}.IntoModel()
	var e *v24.GetTxSpendingPrevoutError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v24.GetTxSpendingPrevoutErrTxid, e.Kind)
	assert.True(t, strings.HasPrefix(err.Error(), "conversion of the `outpoint` field failed: "))

	bad := "xyz"
	_, err = v24.GetTxSpendingPrevout{{Txid: txidA, Vout: 2, SpendingTxid: &bad}}.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v24.GetTxSpendingPrevoutErrSpendingTxid, e.Kind)

	_, err = v24.GetTxSpendingPrevout{{Txid: txidA, Vout: -1}}.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v24.GetTxSpendingPrevoutErrNumeric, e.Kind)
}
