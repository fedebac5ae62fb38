package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DOIDFoundation/corerpc/client"
	"github.com/DOIDFoundation/corerpc/events"
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/registry"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type request struct {
	Method string            `json:"method"`
	Params []json.RawMessage `json:"params"`
	ID     json.RawMessage   `json:"id"`
}

// daemon answers JSON-RPC 1.0 requests from a table of method replies.
type daemon struct {
	mu      sync.Mutex
	replies map[string]string
	seen    []request
	block   chan struct{}
}

func (d *daemon) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	d.mu.Lock()
	d.seen = append(d.seen, req)
	reply, ok := d.replies[req.Method]
	block := d.block
	d.mu.Unlock()

	if block != nil {
		<-block
	}
	if req.ID == nil {
		req.ID = json.RawMessage(`1`)
	}
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.Write([]byte(`{"result":null,"error":{"code":-32601,"message":"Method not found"},"id":` + string(req.ID) + `}`))
		return
	}
	w.Write([]byte(`{"result":` + reply + `,"error":null,"id":` + string(req.ID) + `}`))
}

func (d *daemon) last() request {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seen[len(d.seen)-1]
}

func newClient(t *testing.T, d *daemon, version int) *client.Client {
	srv := httptest.NewServer(d)
	t.Cleanup(srv.Close)
	c, err := client.New(client.Config{Host: srv.URL, User: "user", Pass: "pass", Version: version}, log.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(c.Shutdown)
	return c
}

func TestDetectVersion(t *testing.T) {
	d := &daemon{replies: map[string]string{
		"getnetworkinfo": `{"version":250100,"subversion":"/Satoshi:25.1.0/"}`,
		"getblockcount":  `800000`,
	}}
	c := newClient(t, d, 0)

	v, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 25, v)

	got, err := c.Convert(context.Background(), "getblockcount")
	require.NoError(t, err)
	assert.Equal(t, model.GetBlockCount(800000), got)
	assert.Equal(t, "getblockcount", d.last().Method)
}

func TestUnsupportedDaemon(t *testing.T) {
	d := &daemon{replies: map[string]string{"getnetworkinfo": `{"version":160300}`}}
	c := newClient(t, d, 0)

	_, err := c.DetectVersion(context.Background())
	assert.ErrorIs(t, err, registry.ErrUnsupportedVersion)
}

func TestVerboseAppendsParam(t *testing.T) {
	d := &daemon{replies: map[string]string{"getrawmempool": `{}`}}
	c := newClient(t, d, 21)

	got, err := c.Convert(context.Background(), "getrawmempool_verbose")
	require.NoError(t, err)
	assert.Empty(t, got)

	req := d.last()
	assert.Equal(t, "getrawmempool", req.Method)
	require.Len(t, req.Params, 1)
	assert.JSONEq(t, `true`, string(req.Params[0]))
}

func TestMethodNotInRelease(t *testing.T) {
	d := &daemon{}
	c := newClient(t, d, 22)

	_, err := c.Convert(context.Background(), "gettxspendingprevout")
	assert.ErrorIs(t, err, registry.ErrUnsupportedVersion)
	assert.Empty(t, d.seen)
}

func TestRPCError(t *testing.T) {
	d := &daemon{replies: map[string]string{}}
	c := newClient(t, d, 28)

	_, err := c.Raw(context.Background(), "getmempoolentry", "00")
	var rpcErr *btcjson.RPCError
	require.True(t, errors.As(err, &rpcErr))
	assert.EqualValues(t, -32601, rpcErr.Code)
	assert.Contains(t, err.Error(), "getmempoolentry")
}

func TestCall(t *testing.T) {
	d := &daemon{replies: map[string]string{"getbestblockhash": `"000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"`}}
	c := newClient(t, d, 17)

	h, err := client.Call[string](context.Background(), c, "getbestblockhash")
	require.NoError(t, err)
	assert.Equal(t, "000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f", h)
}

func TestContextCanceled(t *testing.T) {
	release := make(chan struct{})
	d := &daemon{replies: map[string]string{"getblockcount": `1`}, block: release}
	c := newClient(t, d, 17)
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.Raw(ctx, "getblockcount")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConversionFailureEvent(t *testing.T) {
	d := &daemon{replies: map[string]string{"getbestblockhash": `"not a hash"`}}
	c := newClient(t, d, 26)

	got := make(chan events.ConversionFailure, 1)
	events.ConversionFailed.Subscribe(t.Name(), func(f events.ConversionFailure) { got <- f })
	defer func() { events.ConversionFailed.Unsubscribe(t.Name()).Wait() }()

	_, err := c.Convert(context.Background(), "getbestblockhash")
	require.Error(t, err)

	select {
	case f := <-got:
		assert.Equal(t, "getbestblockhash", f.Method)
		assert.Equal(t, 26, f.Version)
		assert.Equal(t, err.Error(), f.Error)
	case <-time.After(time.Second):
		t.Fatal("no conversion failure event")
	}
}

func TestNoHost(t *testing.T) {
	_, err := client.New(client.Config{}, log.NewNopLogger())
	assert.ErrorIs(t, err, client.ErrNoHost)
}
