package node_test

import (
	"context"
	"testing"
	"time"

	"github.com/DOIDFoundation/corerpc/config"
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/node"
	"github.com/DOIDFoundation/corerpc/version"
	"github.com/cometbft/cometbft/libs/log"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type emptyPool struct{}

func (emptyPool) RawMempool(context.Context) (model.GetRawMempoolVerbose, error) {
	return model.GetRawMempoolVerbose{}, nil
}

func newConfig(t *testing.T) *config.Config {
	v := viper.New()
	config.SetDefaults(v)
	c, err := config.Load(v)
	require.NoError(t, err)
	c.RPC.Addr = "127.0.0.1:0"
	c.Daemon.Version = 28
	c.Watch.Enabled = true
	c.Watch.Interval = 20 * time.Millisecond
	return c
}

func TestNode(t *testing.T) {
	n, err := node.NewNode(newConfig(t), log.NewNopLogger(), node.WithSource(emptyPool{}))
	require.NoError(t, err)
	require.NotNil(t, n.Watcher())

	require.NoError(t, n.Start())
	defer n.Stop()

	c, err := ethrpc.DialContext(context.Background(), "http://"+n.RPC().Addr())
	require.NoError(t, err)
	defer c.Close()

	var status map[string]bool
	require.NoError(t, c.Call(&status, "node_status"))
	assert.True(t, status["is_running"])
	assert.True(t, status["watching"])
	assert.False(t, status["metrics"])

	var v string
	require.NoError(t, c.Call(&v, "node_version"))
	assert.Equal(t, version.VersionWithMeta, v)

	assert.Eventually(t, func() bool {
		_, rounds, _ := n.Watcher().Stats()
		return rounds > 0
	}, time.Second, 10*time.Millisecond)

	var count int
	require.NoError(t, c.Call(&count, "core_daemonVersion"))
	assert.Equal(t, 28, count)
}

func TestNodeWithoutWatcher(t *testing.T) {
	cfg := newConfig(t)
	cfg.Watch.Enabled = false

	n, err := node.NewNode(cfg, log.NewNopLogger())
	require.NoError(t, err)
	assert.Nil(t, n.Watcher())

	require.NoError(t, n.Start())
	require.NoError(t, n.Stop())
}
