package v17_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v17"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	txidA = strings.Repeat("a", 64)
	txidB = strings.Repeat("b", 64)
	txidC = strings.Repeat("c", 64)
	wtxid = "1f" + strings.Repeat("0", 62)
	block = "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"
)

func mempoolEntry() v17.MempoolEntry {
	return v17.MempoolEntry{
		Size:            250,
		Time:            1700000000,
		Height:          800000,
		DescendantCount: 1,
		DescendantSize:  250,
		AncestorCount:   1,
		AncestorSize:    250,
		Wtxid:           wtxid,
		Fees: v17.MempoolEntryFees{
			Base:       "0.00001000",
			Modified:   "0.00001000",
			Ancestor:   "0.00001000",
			Descendant: "0.00001000",
		},
		Depends:           []string{},
		SpentBy:           []string{},
		Bip125Replaceable: true,
	}
}

func TestMempoolEntry(t *testing.T) {
	entry, err := mempoolEntry().IntoModel()
	require.NoError(t, err)

	require.NotNil(t, entry.Size)
	assert.Equal(t, uint32(250), *entry.Size)
	assert.Nil(t, entry.Vsize)
	assert.Nil(t, entry.Weight)
	assert.Nil(t, entry.Unbroadcast)
	require.NotNil(t, entry.Bip125Replaceable)
	assert.True(t, *entry.Bip125Replaceable)
	assert.Equal(t, uint32(1700000000), entry.Time)
	assert.Equal(t, uint32(800000), entry.Height)
	assert.Equal(t, wtxid, entry.Wtxid.String())
	assert.Equal(t, byte(0x1f), entry.Wtxid[31])
	assert.Equal(t, types.Amount(1000), entry.Fees.Base)
	assert.Equal(t, types.Amount(1000), entry.Fees.Descendant)
	assert.Empty(t, entry.Depends)
	assert.Empty(t, entry.SpentBy)
}

func TestMempoolEntryBadWtxid(t *testing.T) {
	wire := mempoolEntry()
	wire.Wtxid = "not-hex"
	entry, err := wire.IntoModel()
	assert.Zero(t, entry)

	var e *v17.MempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MempoolEntryErrWtxid, e.Kind)
	assert.ErrorIs(t, err, types.ErrInvalidLength)
	assert.Equal(t, "conversion of the `wtxid` field failed: invalid hex string length 7 (expected 64)", err.Error())
}

func TestMempoolEntryNumeric(t *testing.T) {
	wire := mempoolEntry()
	wire.AncestorSize = 1 << 40
	_, err := wire.IntoModel()

	var e *v17.MempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MempoolEntryErrNumeric, e.Kind)
	var numErr *types.NumericError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "ancestorsize", numErr.Field)
	assert.Equal(t, "conversion of a numeric field failed: invalid `ancestorsize`: 1099511627776 is out of range for uint32", err.Error())
}

func TestMempoolEntryNestedFees(t *testing.T) {
	wire := mempoolEntry()
	wire.Fees.Modified = "0.000000001"
	_, err := wire.IntoModel()

	var e *v17.MempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MempoolEntryErrFees, e.Kind)
	var fees *v17.MempoolEntryFeesError
	require.True(t, errors.As(err, &fees))
	assert.Equal(t, v17.MempoolEntryFeesErrModified, fees.Kind)
	assert.ErrorIs(t, err, types.ErrTooPrecise)
	assert.True(t, strings.HasPrefix(err.Error(), "conversion of the `fees` field failed: conversion of the `modified` field failed: "))
}

func TestMempoolEntryFirstFailure(t *testing.T) {
	wire := mempoolEntry()
	wire.Depends = []string{"00", txidA, "0000"}
	_, err := wire.IntoModel()

	var e *v17.MempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MempoolEntryErrDepends, e.Kind)
	var hexErr *types.HexError
	require.True(t, errors.As(err, &hexErr))
	assert.Equal(t, 2, hexErr.Got)

	wire = mempoolEntry()
	wire.SpentBy = []string{txidA, "zz"}
	_, err = wire.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MempoolEntryErrSpentBy, e.Kind)
}

func TestGetRawMempoolVerbose(t *testing.T) {
	wire := v17.GetRawMempoolVerbose{txidA: mempoolEntry(), txidB: mempoolEntry(), txidC: mempoolEntry()}
	wire[txidB] = func() v17.MempoolEntry { e := mempoolEntry(); e.Height = 1; return e }()

	m, err := wire.IntoModel()
	require.NoError(t, err)
	require.Len(t, m, 3)
	for s, entry := range wire {
		txid, err := types.ParseTxid(s)
		require.NoError(t, err)
		got, ok := m[txid]
		require.True(t, ok)
		assert.Equal(t, uint32(entry.Height), got.Height)
	}
}

func TestGetRawMempoolVerboseErrors(t *testing.T) {
	_, err := v17.GetRawMempoolVerbose{"xyz": mempoolEntry()}.IntoModel()
	var e *v17.MapMempoolEntryError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MapMempoolEntryErrTxid, e.Kind)

	bad := mempoolEntry()
	bad.Wtxid = ""
	_, err = v17.GetMempoolAncestorsVerbose{txidA: bad}.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MapMempoolEntryErrMempoolEntry, e.Kind)
	var inner *v17.MempoolEntryError
	require.True(t, errors.As(err, &inner))
	assert.Equal(t, v17.MempoolEntryErrWtxid, inner.Kind)

	_, err = v17.GetMempoolDescendantsVerbose{txidA: mempoolEntry(), strings.ToUpper(txidA): mempoolEntry()}.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.MapMempoolEntryErrTxid, e.Kind)
	var dup *types.DuplicateKeyError
	assert.True(t, errors.As(err, &dup))
}

func TestTxidLists(t *testing.T) {
	raw, err := v17.GetRawMempool{txidA, txidB}.IntoModel()
	require.NoError(t, err)
	require.Len(t, raw, 2)
	assert.Equal(t, txidA, raw[0].String())
	assert.Equal(t, txidB, raw[1].String())

	_, err = v17.GetMempoolAncestors{txidA, "bad"}.IntoModel()
	assert.ErrorIs(t, err, types.ErrInvalidLength)

	d, err := v17.GetMempoolDescendants{}.IntoModel()
	require.NoError(t, err)
	assert.Empty(t, d)
}

func TestGetMempoolEntryJSON(t *testing.T) {
	raw := `{"size":250,"time":1700000000,"height":800000,"descendantcount":1,"descendantsize":250,
"ancestorcount":1,"ancestorsize":250,"wtxid":"` + wtxid + `","fees":{"base":0.00001,"modified":0.00001,
"ancestor":0.00001,"descendant":0.00001},"depends":["` + txidA + `"],"spentby":[],"bip125-replaceable":false}`
	var wire v17.GetMempoolEntry
	require.NoError(t, json.Unmarshal([]byte(raw), &wire))

	entry, err := wire.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, types.Amount(1000), entry.Fees.Ancestor)
	require.Len(t, entry.Depends, 1)
	assert.Equal(t, txidA, entry.Depends[0].String())
	assert.False(t, *entry.Bip125Replaceable)
}

func TestBlockHashes(t *testing.T) {
	best, err := v17.GetBestBlockHash(block).IntoModel()
	require.NoError(t, err)
	assert.Equal(t, block, best.String())

	_, err = v17.GetBlockHash(block[1:]).IntoModel()
	var hexErr *types.HexError
	require.True(t, errors.As(err, &hexErr))
	assert.Equal(t, 63, hexErr.Got)

	assert.EqualValues(t, 800000, v17.GetBlockCount(800000).IntoModel())
}

func blockchainInfo() v17.GetBlockchainInfo {
	return v17.GetBlockchainInfo{
		Chain:                "main",
		Blocks:               800000,
		Headers:              800001,
		BestBlockHash:        block,
		Difficulty:           53911173001054.59,
		MedianTime:           1690000000,
		VerificationProgress: 0.9999,
		ChainWork:            strings.Repeat("0", 40) + "0000000000000000000000ff",
		SizeOnDisk:           580_000_000_000,
		Warnings:             "",
	}
}

func TestGetBlockchainInfo(t *testing.T) {
	info, err := blockchainInfo().IntoModel()
	require.NoError(t, err)
	assert.Equal(t, types.ChainMain, info.Chain)
	assert.Equal(t, uint32(800001), info.Headers)
	assert.Equal(t, block, info.BestBlockHash.String())
	assert.Equal(t, byte(0xff), info.ChainWork[31])
	assert.Nil(t, info.PruneHeight)
	assert.Empty(t, info.Warnings)

	wire := blockchainInfo()
	wire.Warnings = "This is a pre-release test build"
	h := int64(700000)
	wire.PruneHeight = &h
	info, err = wire.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, []string{"This is a pre-release test build"}, info.Warnings)
	assert.Equal(t, uint32(700000), *info.PruneHeight)
}

func TestGetBlockchainInfoErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*v17.GetBlockchainInfo)
		kind   v17.GetBlockchainInfoErrorKind
	}{
		{"chain", func(g *v17.GetBlockchainInfo) { g.Chain = "mainnet" }, v17.GetBlockchainInfoErrChain},
		{"blocks", func(g *v17.GetBlockchainInfo) { g.Blocks = -1 }, v17.GetBlockchainInfoErrNumeric},
		{"bestblockhash", func(g *v17.GetBlockchainInfo) { g.BestBlockHash = "" }, v17.GetBlockchainInfoErrBestBlockHash},
		{"chainwork", func(g *v17.GetBlockchainInfo) { g.ChainWork = "ff" }, v17.GetBlockchainInfoErrChainWork},
	}
	for _, tt := range tests {
		wire := blockchainInfo()
		tt.modify(&wire)
		_, err := wire.IntoModel()
		var e *v17.GetBlockchainInfoError
		require.True(t, errors.As(err, &e), tt.name)
		assert.Equal(t, tt.kind, e.Kind, tt.name)
	}
}

func TestGetMempoolInfo(t *testing.T) {
	wire := v17.GetMempoolInfo{
		Size:          12,
		Bytes:         4000,
		Usage:         20000,
		MaxMempool:    300000000,
		MempoolMinFee: "0.00001000",
		MinRelayTxFee: "0.00001000",
	}
	info, err := wire.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, uint32(12), info.Size)
	assert.Equal(t, types.Amount(1000), info.MinRelayTxFee)
	assert.Nil(t, info.Loaded)
	assert.Nil(t, info.TotalFee)

	wire.MinRelayTxFee = "-1"
	_, err = wire.IntoModel()
	var e *v17.GetMempoolInfoError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetMempoolInfoErrMinRelayTxFee, e.Kind)
	assert.ErrorIs(t, err, types.ErrNegative)
}
