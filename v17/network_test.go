package v17_test

import (
	"errors"
	"testing"

	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/v17"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func networkInfo() v17.GetNetworkInfo {
	return v17.GetNetworkInfo{
		Version:         170100,
		Subversion:      "/Satoshi:0.17.1/",
		ProtocolVersion: 70015,
		LocalServices:   "000000000000040d",
		LocalRelay:      true,
		Connections:     8,
		NetworkActive:   true,
		Networks: []v17.GetNetworkInfoNetwork{
			{Name: "ipv4", Reachable: true},
			{Name: "onion", Limited: true},
		},
		RelayFee:       "0.00001000",
		IncrementalFee: "0.00001000",
		LocalAddresses: []v17.GetNetworkInfoAddress{{Address: "203.0.113.5", Port: 8333, Score: 4}},
	}
}

func TestGetNetworkInfo(t *testing.T) {
	info, err := networkInfo().IntoModel()
	require.NoError(t, err)
	assert.Equal(t, uint32(170100), info.Version)
	assert.Equal(t, wire.SFNodeNetwork|wire.SFNodeBloom|wire.SFNodeWitness|wire.SFNodeNetworkLimited, info.LocalServices)
	assert.Nil(t, info.LocalServicesNames)
	assert.Nil(t, info.ConnectionsIn)
	assert.Equal(t, types.Amount(1000), info.RelayFee)
	require.Len(t, info.Networks, 2)
	assert.Equal(t, "onion", info.Networks[1].Name)
	assert.True(t, info.Networks[1].Limited)
	require.Len(t, info.LocalAddresses, 1)
	assert.Equal(t, uint16(8333), info.LocalAddresses[0].Port)
	assert.Empty(t, info.Warnings)
}

func TestGetNetworkInfoErrors(t *testing.T) {
	w := networkInfo()
	w.LocalServices = "040d"
	_, err := w.IntoModel()
	var e *v17.GetNetworkInfoError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetNetworkInfoErrLocalServices, e.Kind)

	w = networkInfo()
	w.LocalAddresses = append(w.LocalAddresses, v17.GetNetworkInfoAddress{Address: "::1", Port: 70000})
	_, err = w.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetNetworkInfoErrLocalAddresses, e.Kind)
	var addrErr *v17.GetNetworkInfoAddressError
	require.True(t, errors.As(err, &addrErr))
	var numErr *types.NumericError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "port", numErr.Field)
	assert.Equal(t, "uint16", numErr.Target)
	assert.Equal(t, "conversion of the `localaddresses` field failed: "+
		"conversion of a numeric field failed: invalid `port`: 70000 is out of range for uint16", err.Error())

	w = networkInfo()
	w.IncrementalFee = "abc"
	_, err = w.IntoModel()
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v17.GetNetworkInfoErrIncrementalFee, e.Kind)
}
