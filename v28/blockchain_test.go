package v28_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v28"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockchainReply = `{
  "chain": "main",
  "blocks": 860000,
  "headers": 860000,
  "bestblockhash": "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f",
  "difficulty": 92049594548485.47,
  "time": 1725000000,
  "mediantime": 1724998000,
  "verificationprogress": 0.9999987,
  "initialblockdownload": false,
  "chainwork": "00000000000000000000000000000000000000008f1d3b0c7a6e5d4c3b2a1908",
  "size_on_disk": 680000000000,
  "pruned": false,
  "warnings": ["Unknown new rules activated", "This is a pre-release test build"]
}`

func TestGetBlockchainInfo(t *testing.T) {
	var w v28.GetBlockchainInfo
	require.NoError(t, json.Unmarshal([]byte(blockchainReply), &w))

	info, err := w.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, types.ChainMain, info.Chain)
	assert.Equal(t, uint32(860000), info.Blocks)
	assert.Equal(t, []string{"Unknown new rules activated", "This is a pre-release test build"}, info.Warnings)
	assert.Nil(t, info.PruneHeight)
}

func TestGetBlockchainInfoNoWarnings(t *testing.T) {
	var w v28.GetBlockchainInfo
	require.NoError(t, json.Unmarshal([]byte(blockchainReply), &w))
	w.Warnings = nil

	info, err := w.IntoModel()
	require.NoError(t, err)
	assert.NotNil(t, info.Warnings)
	assert.Empty(t, info.Warnings)

	w.Chain = "mainnet"
	_, err = w.IntoModel()
	var e *v28.GetBlockchainInfoError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v28.GetBlockchainInfoErrChain, e.Kind)
}
