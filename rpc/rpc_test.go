package rpc_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DOIDFoundation/corerpc/events"
	"github.com/DOIDFoundation/corerpc/registry"
	"github.com/DOIDFoundation/corerpc/rpc"
	"github.com/cometbft/cometbft/libs/log"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startRPC(t *testing.T) *rpc.RPC {
	config := rpc.DefaultConfig
	config.ListenAddress = "127.0.0.1:0"
	r := rpc.NewRPC(config, log.NewNopLogger())
	r.RegisterAPI(nil)
	require.NoError(t, r.Start())
	t.Cleanup(func() { r.Stop() })
	return r
}

func TestConvert(t *testing.T) {
	r := startRPC(t)
	c, err := ethrpc.DialContext(context.Background(), "http://"+r.Addr())
	require.NoError(t, err)
	defer c.Close()

	var count json.RawMessage
	require.NoError(t, c.Call(&count, "core_convert", "getblockcount", 17, json.RawMessage(`800000`)))
	assert.JSONEq(t, `800000`, string(count))

	var hash string
	require.NoError(t, c.Call(&hash, "core_convert", "getbestblockhash", 28,
		json.RawMessage(`"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"`)))
	assert.Equal(t, "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", hash)

	err = c.Call(&count, "core_convert", "getblockcount", 12, json.RawMessage(`1`))
	assert.ErrorContains(t, err, registry.ErrUnsupportedVersion.Error())
}

func TestMethods(t *testing.T) {
	r := startRPC(t)
	c, err := ethrpc.DialContext(context.Background(), "http://"+r.Addr())
	require.NoError(t, err)
	defer c.Close()

	var methods []registry.Method
	require.NoError(t, c.Call(&methods, "core_methods"))
	require.NotEmpty(t, methods)

	names := make(map[string]registry.Method, len(methods))
	for _, m := range methods {
		names[m.Name] = m
	}
	verbose, ok := names["getrawmempool_verbose"]
	require.True(t, ok)
	assert.True(t, verbose.Verbose)
	assert.Equal(t, "getrawmempool", verbose.RPC)
}

func TestCallWithoutDaemon(t *testing.T) {
	r := startRPC(t)
	c, err := ethrpc.DialContext(context.Background(), "http://"+r.Addr())
	require.NoError(t, err)
	defer c.Close()

	var out json.RawMessage
	err = c.Call(&out, "core_call", "getblockcount", []any{})
	assert.ErrorContains(t, err, rpc.ErrNoDaemon.Error())
}

func TestConversionFailureSubscription(t *testing.T) {
	r := startRPC(t)
	c, err := ethrpc.DialContext(context.Background(), "ws://"+r.Addr()+rpc.DefaultConfig.WebsocketPath)
	require.NoError(t, err)
	defer c.Close()

	ch := make(chan events.ConversionFailure, 1)
	sub, err := c.Subscribe(context.Background(), "core", ch, "conversionFailures")
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.Eventually(t, func() bool { return events.ConversionFailed.Len() > 0 }, time.Second, 10*time.Millisecond)
	events.ConversionFailed.Send(events.ConversionFailure{Method: "getbalances", Version: 19, Error: "boom"})

	select {
	case f := <-ch:
		assert.Equal(t, "getbalances", f.Method)
		assert.Equal(t, 19, f.Version)
	case err := <-sub.Err():
		t.Fatal(err)
	case <-time.After(2 * time.Second):
		t.Fatal("no notification")
	}
}
