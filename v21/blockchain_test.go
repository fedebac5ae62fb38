package v21_test

import (
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/v21"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	txidA = strings.Repeat("a", 64)
	txidB = strings.Repeat("b", 64)
	wtxid = "1f" + strings.Repeat("0", 62)
)

func mempoolEntry() v21.MempoolEntry {
	return v21.MempoolEntry{
		Vsize:           110,
		Weight:          440,
		Time:            1700000000,
		Height:          800000,
		DescendantCount: 1,
		DescendantSize:  110,
		AncestorCount:   1,
		AncestorSize:    110,
		Wtxid:           wtxid,
		Fees: v21.MempoolEntryFees{
			Base:       "0.00000220",
			Modified:   "0.00000220",
			Ancestor:   "0.00000220",
			Descendant: "0.00000220",
		},
		Depends:     []string{txidB},
		Unbroadcast: true,
	}
}

func TestMempoolEntry(t *testing.T) {
	entry, err := v21.GetMempoolEntry{MempoolEntry: mempoolEntry()}.IntoModel()
	require.NoError(t, err)
	require.NotNil(t, entry.Unbroadcast)
	assert.True(t, *entry.Unbroadcast)
	assert.Equal(t, uint32(440), *entry.Weight)
	assert.Nil(t, entry.Size)
	require.Len(t, entry.Depends, 1)
	assert.Equal(t, txidB, entry.Depends[0].String())
	assert.Nil(t, entry.SpentBy)
}

func TestGetMempoolDescendantsVerbose(t *testing.T) {
	m, err := v21.GetMempoolDescendantsVerbose{txidA: mempoolEntry()}.IntoModel()
	require.NoError(t, err)
	require.Len(t, m, 1)
	for txid, entry := range m {
		assert.Equal(t, txidA, txid.String())
		assert.True(t, *entry.Unbroadcast)
	}
}
