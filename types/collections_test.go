package types_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertEach(t *testing.T) {
	out, err := types.ConvertEach([]string{"1", "2", "3"}, strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, out)

	_, err = types.ConvertEach([]string{"x", "2", "y"}, strconv.Atoi)
	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "x", numErr.Num)

	out, err = types.ConvertEach(nil, strconv.Atoi)
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMapBy(t *testing.T) {
	keyErr := errors.New("key")
	valueErr := errors.New("value")
	onKey := func(err error) error { return errors.Join(keyErr, err) }
	onValue := func(err error) error { return errors.Join(valueErr, err) }

	a, b := strings.Repeat("a", 64), strings.Repeat("b", 64)
	m, err := types.MapBy(map[string]string{a: "1", b: "2"}, types.ParseTxid, strconv.Atoi, onKey, onValue)
	require.NoError(t, err)
	require.Len(t, m, 2)
	ka, _ := types.ParseTxid(a)
	assert.Equal(t, 1, m[ka])

	_, err = types.MapBy(map[string]string{"short": "1"}, types.ParseTxid, strconv.Atoi, onKey, onValue)
	assert.ErrorIs(t, err, keyErr)
	assert.ErrorIs(t, err, types.ErrInvalidLength)

	_, err = types.MapBy(map[string]string{a: "x"}, types.ParseTxid, strconv.Atoi, onKey, onValue)
	assert.ErrorIs(t, err, valueErr)

	// Upper and lower case hex parse to the same txid.
	_, err = types.MapBy(map[string]string{a: "1", strings.ToUpper(a): "2"}, types.ParseTxid, strconv.Atoi, onKey, onValue)
	var dup *types.DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, a, dup.Key)
}

func TestMapByDeterministic(t *testing.T) {
	in := map[string]string{}
	for i := 0; i < 20; i++ {
		in[strings.Repeat(strconv.Itoa(i%10), 64)+strconv.Itoa(i)] = "1"
	}
	onKey := func(err error) error { return err }
	_, first := types.MapBy(in, types.ParseTxid, strconv.Atoi, onKey, onKey)
	for i := 0; i < 10; i++ {
		_, err := types.MapBy(in, types.ParseTxid, strconv.Atoi, onKey, onKey)
		assert.Equal(t, first.Error(), err.Error())
	}
}

func TestOpt(t *testing.T) {
	v, err := types.Opt(nil, types.ParseChain)
	require.NoError(t, err)
	assert.Nil(t, v)

	s := "main"
	v, err = types.Opt(&s, types.ParseChain)
	require.NoError(t, err)
	assert.Equal(t, types.ChainMain, *v)
}
