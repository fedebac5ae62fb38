package v28_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/DOIDFoundation/corerpc/v28"
	"github.com/btcsuite/btcd/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const networkReply = `{
  "version": 280000,
  "subversion": "/Satoshi:28.0.0/",
  "protocolversion": 70016,
  "localservices": "0000000000000c09",
  "localservicesnames": ["NETWORK", "WITNESS", "NETWORK_LIMITED", "P2P_V2"],
  "localrelay": true,
  "timeoffset": 0,
  "networkactive": true,
  "connections": 10,
  "connections_in": 2,
  "connections_out": 8,
  "networks": [],
  "relayfee": 0.00001000,
  "incrementalfee": 0.00001000,
  "localaddresses": [{"address": "2001:db8::1", "port": 8333, "score": 1}],
  "warnings": []
}`

func TestGetNetworkInfo(t *testing.T) {
	var w v28.GetNetworkInfo
	require.NoError(t, json.Unmarshal([]byte(networkReply), &w))

	info, err := w.IntoModel()
	require.NoError(t, err)
	assert.Equal(t, uint32(280000), info.Version)
	assert.True(t, info.LocalServices&wire.SFNodeWitness != 0)
	assert.Equal(t, uint32(2), *info.ConnectionsIn)
	assert.Equal(t, []string{}, info.Warnings)
	require.Len(t, info.LocalAddresses, 1)
	assert.Equal(t, "2001:db8::1", info.LocalAddresses[0].Address)
	assert.Empty(t, info.Networks)
}

func TestGetNetworkInfoLocalAddress(t *testing.T) {
	var w v28.GetNetworkInfo
	require.NoError(t, json.Unmarshal([]byte(networkReply), &w))
	w.LocalAddresses[0].Port = -1

	_, err := w.IntoModel()
	var e *v28.GetNetworkInfoError
	require.True(t, errors.As(err, &e))
	assert.Equal(t, v28.GetNetworkInfoErrLocalAddresses, e.Kind)
	var addrErr *v28.GetNetworkInfoAddressError
	require.True(t, errors.As(err, &addrErr))
	assert.Contains(t, err.Error(), "`localaddresses`")
	assert.Contains(t, err.Error(), "`port`")
}
