package v17_test

import (
	"errors"
	"math"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v17"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMiningInfo(t *testing.T) {
	weight := int64(4000)
	w := v17.GetMiningInfo{
		Blocks:             101,
		CurrentBlockWeight: &weight,
		Difficulty:         4.6565423739069247e-10,
		NetworkHashPs:      12.5,
		PooledTx:           3,
		Chain:              "regtest",
		Warnings:           "",
	}
	info, err := w.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, uint32(101), info.Blocks)
	assert.Equal(t, uint32(4000), *info.CurrentBlockWeight)
	assert.Nil(t, info.CurrentBlockTx)
	assert.Equal(t, "regtest", info.Chain)

	w.PooledTx = math.MaxInt64
	_, err = w.IntoModel()
	var numErr *types.NumericError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "pooledtx", numErr.Field)
}

func TestGenerateToAddress(t *testing.T) {
	hashes, err := v17.GenerateToAddress{block, txidA}.IntoModel()
	require.NoError(t, err)
	require.Len(t, hashes, 2)
	assert.Equal(t, block, hashes[0].String())

	_, err = v17.GenerateToAddress{block, "", "zz"}.IntoModel()
	var hexErr *types.HexError
	require.True(t, errors.As(err, &hexErr))
	assert.Equal(t, 0, hexErr.Got)
}
