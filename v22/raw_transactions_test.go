package v22_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v22"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const acceptReply = `[
  {
    "txid": "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
    "wtxid": "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb",
    "allowed": true,
    "vsize": 141,
    "fees": {"base": 0.00000141}
  },
  {
    "txid": "cccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccccc",
    "wtxid": "dddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddddd",
    "allowed": false,
    "reject-reason": "bad-txns-inputs-missingorspent"
  }
]`

func TestTestMempoolAccept(t *testing.T) {
	var w v22.TestMempoolAccept
	require.NoError(t, json.Unmarshal([]byte(acceptReply), &w))

	got, err := w.IntoModel()
	require.NoError(t, err)
	require.Len(t, got.Results, 2)
	require.NotNil(t, got.Results[0].Wtxid)
	assert.Equal(t, strings.Repeat("b", 64), got.Results[0].Wtxid.String())
	assert.Equal(t, types.Amount(141), got.Results[0].Fees.Base)
	assert.Equal(t, strings.Repeat("d", 64), got.Results[1].Wtxid.String())
	assert.Nil(t, got.Results[1].Fees)
}

func TestTestMempoolAcceptWtxid(t *testing.T) {
	var w v22.TestMempoolAccept
	require.NoError(t, json.Unmarshal([]byte(acceptReply), &w))
	w[1].Wtxid = "d"

	_, err := w.IntoModel()
	var outer *v22.TestMempoolAcceptError
	require.True(t, errors.As(err, &outer))
	var e *v22.MempoolAcceptanceError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v22.MempoolAcceptanceErrWtxid, e.Kind)
	assert.ErrorIs(t, err, types.ErrInvalidLength)
	assert.True(t, strings.HasPrefix(err.Error(), "conversion of the `results` field failed: conversion of the `wtxid` field failed: "))
}
