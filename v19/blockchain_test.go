package v19_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v19"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	txidA = strings.Repeat("a", 64)
	txidB = strings.Repeat("b", 64)
	wtxid = "1f" + strings.Repeat("0", 62)
)

const entryReply = `{
  "vsize": 141,
  "weight": 561,
  "fee": 0.00000141,
  "modifiedfee": 0.00000141,
  "time": 1700000000,
  "height": 800000,
  "descendantcount": 2,
  "descendantsize": 282,
  "descendantfees": 282,
  "ancestorcount": 1,
  "ancestorsize": 141,
  "ancestorfees": 141,
  "wtxid": "1f00000000000000000000000000000000000000000000000000000000000000",
  "fees": {
    "base": 0.00000141,
    "modified": 0.00000141,
    "ancestor": 0.00000141,
    "descendant": 0.00000282
  },
  "depends": [],
  "spentby": ["bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"],
  "bip125-replaceable": false
}`

func TestGetMempoolEntry(t *testing.T) {
	var w v19.GetMempoolEntry
	require.NoError(t, json.Unmarshal([]byte(entryReply), &w))

	entry, err := w.IntoModel()
	require.NoError(t, err)
	assert.Nil(t, entry.Size)
	require.NotNil(t, entry.Vsize)
	assert.Equal(t, uint32(141), *entry.Vsize)
	require.NotNil(t, entry.Weight)
	assert.Equal(t, uint32(561), *entry.Weight)
	assert.Nil(t, entry.Unbroadcast)
	assert.Equal(t, wtxid, entry.Wtxid.String())
	assert.Equal(t, types.Amount(282), entry.Fees.Descendant)
	require.Len(t, entry.SpentBy, 1)
	assert.Equal(t, txidB, entry.SpentBy[0].String())
	assert.False(t, *entry.Bip125Replaceable)
}

func TestMempoolEntryWeight(t *testing.T) {
	var w v19.MempoolEntry
	require.NoError(t, json.Unmarshal([]byte(entryReply), &w))
	w.Weight = -1

	_, err := w.IntoModel()
	var e *v19.MempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v19.MempoolEntryErrNumeric, e.Kind)
	assert.Equal(t, "conversion of a numeric field failed: invalid `weight`: -1 is out of range for uint32", err.Error())
}

func TestGetRawMempoolVerbose(t *testing.T) {
	var entry v19.MempoolEntry
	require.NoError(t, json.Unmarshal([]byte(entryReply), &entry))

	pool := v19.GetRawMempoolVerbose{txidA: entry, txidB: entry}
	m, err := pool.IntoModel()
	require.NoError(t, err)
	assert.Len(t, m, 2)

	pool = v19.GetRawMempoolVerbose{"xyz": entry}
	_, err = pool.IntoModel()
	var e *v19.MapMempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v19.MapMempoolEntryErrTxid, e.Kind)
}

func TestGetMempoolAncestorsVerboseEntryFailure(t *testing.T) {
	var entry v19.MempoolEntry
	require.NoError(t, json.Unmarshal([]byte(entryReply), &entry))
	entry.Depends = []string{"00"}

	_, err := v19.GetMempoolAncestorsVerbose{txidA: entry}.IntoModel()
	var e *v19.MapMempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v19.MapMempoolEntryErrMempoolEntry, e.Kind)
	var inner *v19.MempoolEntryError
	require.True(t, errors.As(err, &inner))
	assert.Equal(t, v19.MempoolEntryErrDepends, inner.Kind)
}
