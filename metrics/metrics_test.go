package metrics_test

import (
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/DOIDFoundation/corerpc/metrics"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveConversion(t *testing.T) {
	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry())

	m.ObserveConversion("getblockcount", 17, time.Millisecond, nil)
	m.ObserveConversion("getblockcount", 17, time.Millisecond, nil)
	m.ObserveConversion("getblockcount", 17, time.Millisecond, errors.New("bad"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Conversions.WithLabelValues("getblockcount", "17", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("getblockcount", "17", "error")))
}

func TestObserveRound(t *testing.T) {
	m := metrics.NewMetricsWithRegistry(prometheus.NewRegistry())

	m.ObserveRound(12, nil)
	m.ObserveRound(0, errors.New("daemon down"))

	assert.Equal(t, 12.0, testutil.ToFloat64(m.WatchedEntries))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WatchRounds.WithLabelValues("error")))
}

func TestServer(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := metrics.NewMetricsWithRegistry(registry)
	m.ObserveCall("getnetworkinfo", nil)

	s := metrics.NewServerWithGatherer(log.NewNopLogger(), "127.0.0.1:0", registry)
	require.NoError(t, s.Start())
	defer s.Stop()

	resp, err := http.Get("http://" + s.Addr() + metrics.Endpoint)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `corerpc_daemon_calls_total{method="getnetworkinfo",status="ok"} 1`)
}
