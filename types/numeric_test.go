package types_test

import (
	"errors"
	"math"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUint32(t *testing.T) {
	v, err := types.ToUint32(int64(800000), "height")
	require.NoError(t, err)
	assert.Equal(t, uint32(800000), v)

	v, err = types.ToUint32(uint64(math.MaxUint32), "height")
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), v)

	_, err = types.ToUint32(int64(math.MaxUint32)+1, "blocks")
	var numErr *types.NumericError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "blocks", numErr.Field)
	assert.Equal(t, "4294967296", numErr.Value)
	assert.Equal(t, "uint32", numErr.Target)
	assert.Equal(t, "invalid `blocks`: 4294967296 is out of range for uint32", err.Error())

	_, err = types.ToUint32(int64(-1), "time")
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "-1", numErr.Value)
}

func TestNarrowSmall(t *testing.T) {
	p, err := types.ToUint16(int64(8333), "port")
	require.NoError(t, err)
	assert.Equal(t, uint16(8333), p)

	_, err = types.ToUint16(int64(65536), "port")
	assert.Error(t, err)

	w, err := types.ToUint8(int64(1), "witness_version")
	require.NoError(t, err)
	assert.Equal(t, uint8(1), w)

	_, err = types.ToUint8(uint64(256), "witness_version")
	assert.Error(t, err)
}

func TestOptUint32(t *testing.T) {
	v, err := types.OptUint32[int64](nil, "pruneheight")
	require.NoError(t, err)
	assert.Nil(t, v)

	h := int64(1000)
	v, err = types.OptUint32(&h, "pruneheight")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, uint32(1000), *v)

	h = math.MaxInt64
	v, err = types.OptUint32(&h, "pruneheight")
	assert.Nil(t, v)
	assert.Error(t, err)

	w, err := types.OptUint8[int64](nil, "witness_version")
	require.NoError(t, err)
	assert.Nil(t, w)
}
