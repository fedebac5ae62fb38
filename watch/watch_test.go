package watch_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/DOIDFoundation/corerpc/client"
	"github.com/DOIDFoundation/corerpc/events"
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/rpc"
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/DOIDFoundation/corerpc/watch"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	mu    sync.Mutex
	pool  model.GetRawMempoolVerbose
	err   error
	calls int
}

func (s *fakeSource) RawMempool(context.Context) (model.GetRawMempoolVerbose, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.pool, s.err
}

func (s *fakeSource) set(pool model.GetRawMempoolVerbose, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pool, s.err = pool, err
}

func (s *fakeSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var (
	txA = types.Txid{0xa}
	txB = types.Txid{0xb}
	txC = types.Txid{0xc}
)

func entry(height uint32) model.MempoolEntry {
	return model.MempoolEntry{Height: height}
}

func newWatcher(t *testing.T, source watch.Source) *watch.Watcher {
	config := watch.DefaultConfig
	config.Interval = 10 * time.Millisecond
	w, err := watch.NewWatcher(source, config, log.NewNopLogger())
	require.NoError(t, err)
	return w
}

func collect[T any](t *testing.T, feed *events.FeedOf[T]) func() []T {
	var (
		mu  sync.Mutex
		got []T
	)
	feed.Subscribe(t.Name(), func(v T) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
	})
	return func() []T {
		feed.Unsubscribe(t.Name()).Wait()
		mu.Lock()
		defer mu.Unlock()
		return got
	}
}

func TestPollAnnouncesDifference(t *testing.T) {
	source := &fakeSource{pool: model.GetRawMempoolVerbose{txA: entry(1), txB: entry(2)}}
	w := newWatcher(t, source)

	added := collect(t, events.NewMempoolEntry)
	removed := collect(t, events.MempoolRemoved)

	require.NoError(t, w.Poll(context.Background()))
	source.set(model.GetRawMempoolVerbose{txB: entry(3), txC: entry(4)}, nil)
	require.NoError(t, w.Poll(context.Background()))

	ids := map[types.Txid]uint32{}
	for _, e := range added() {
		ids[e.Txid] = e.Entry.Height
	}
	assert.Equal(t, map[types.Txid]uint32{txA: 1, txB: 2, txC: 4}, ids)
	assert.Equal(t, []types.Txid{txA}, removed())

	got, ok := w.Entry(txB)
	require.True(t, ok)
	assert.Equal(t, uint32(3), got.Height)
	_, ok = w.Entry(txA)
	assert.False(t, ok)

	entries, rounds, failures := w.Stats()
	assert.Equal(t, 2, entries)
	assert.Equal(t, uint64(2), rounds)
	assert.Zero(t, failures)
}

func TestPollFailure(t *testing.T) {
	boom := errors.New("daemon unreachable")
	source := &fakeSource{err: boom}
	w := newWatcher(t, source)

	assert.ErrorIs(t, w.Poll(context.Background()), boom)
	entries, rounds, failures := w.Stats()
	assert.Zero(t, entries)
	assert.Equal(t, uint64(1), rounds)
	assert.Equal(t, uint64(1), failures)
}

func TestServicePolls(t *testing.T) {
	source := &fakeSource{pool: model.GetRawMempoolVerbose{}}
	w := newWatcher(t, source)

	require.NoError(t, w.Start())
	assert.Eventually(t, func() bool { return source.count() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, w.Stop())
}

func TestAPI(t *testing.T) {
	source := &fakeSource{pool: model.GetRawMempoolVerbose{txA: entry(800000)}}
	w := newWatcher(t, source)
	require.NoError(t, w.Poll(context.Background()))

	config := rpc.DefaultConfig
	config.ListenAddress = "127.0.0.1:0"
	r := rpc.NewRPC(config, log.NewNopLogger())
	w.RegisterAPI(r)
	require.NoError(t, r.Start())
	defer r.Stop()

	c, err := ethrpc.DialContext(context.Background(), "http://"+r.Addr())
	require.NoError(t, err)
	defer c.Close()

	var status map[string]hexutil.Uint64
	require.NoError(t, c.Call(&status, "watch_status"))
	assert.Equal(t, hexutil.Uint64(1), status["entries"])
	assert.Equal(t, hexutil.Uint64(1), status["rounds"])

	var got map[string]any
	require.NoError(t, c.Call(&got, "watch_entry", txA.String()))
	assert.EqualValues(t, 800000, got["height"])

	err = c.Call(&got, "watch_entry", txB.String())
	assert.ErrorContains(t, err, watch.ErrNotWatched.Error())
}

const mempoolReply = `{"0a00000000000000000000000000000000000000000000000000000000000000": {
  "vsize": 141,
  "weight": 561,
  "time": 1700000000,
  "height": 800000,
  "descendantcount": 1,
  "descendantsize": 141,
  "ancestorcount": 1,
  "ancestorsize": 141,
  "wtxid": "1f00000000000000000000000000000000000000000000000000000000000000",
  "fees": {"base": 0.00000141, "modified": 0.00000141, "ancestor": 0.00000141, "descendant": 0.00000141},
  "depends": [],
  "spentby": [],
  "bip125-replaceable": false,
  "unbroadcast": false
}}`

func TestClientSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":` + mempoolReply + `,"error":null,"id":1}`))
	}))
	defer srv.Close()

	c, err := client.New(client.Config{Host: srv.URL, Version: 21}, log.NewNopLogger())
	require.NoError(t, err)
	defer c.Shutdown()

	pool, err := watch.ClientSource{Client: c}.RawMempool(context.Background())
	require.NoError(t, err)
	require.Len(t, pool, 1)
	for txid, e := range pool {
		assert.Equal(t, "0a00000000000000000000000000000000000000000000000000000000000000", txid.String())
		require.NotNil(t, e.Unbroadcast)
		assert.False(t, *e.Unbroadcast)
	}
}
