package types_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScriptType(t *testing.T) {
	st, err := types.ParseScriptType("witness_v0_keyhash")
	require.NoError(t, err)
	assert.Equal(t, types.ScriptWitnessV0KeyHash, st)
	assert.Equal(t, "witness_v0_keyhash", st.String())

	_, err = types.ParseScriptType("witness_v9_magic")
	var enumErr *types.EnumError
	require.True(t, errors.As(err, &enumErr))
	assert.Equal(t, "script type", enumErr.Type)
	assert.Equal(t, `unknown script type "witness_v9_magic"`, err.Error())
}

func TestEnumText(t *testing.T) {
	c, err := types.ParseChain("regtest")
	require.NoError(t, err)
	assert.Equal(t, types.ChainRegtest, c)

	b, err := json.Marshal(struct {
		Chain    types.Chain               `json:"chain"`
		Category types.TransactionCategory `json:"category"`
		Bip125   types.Bip125Replaceable   `json:"bip125"`
		Purpose  types.AddressPurpose      `json:"purpose"`
	}{types.ChainSignet, types.CategoryImmature, types.Bip125No, types.PurposeReceive})
	require.NoError(t, err)
	assert.JSONEq(t, `{"chain":"signet","category":"immature","bip125":"no","purpose":"receive"}`, string(b))

	_, err = types.ParseBip125Replaceable("maybe")
	assert.Error(t, err)
	_, err = types.ParseTransactionCategory("move")
	assert.Error(t, err)
}
