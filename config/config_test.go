package config_test

import (
	"testing"
	"time"

	"github.com/DOIDFoundation/corerpc/config"
	"github.com/DOIDFoundation/corerpc/flags"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper() *viper.Viper {
	v := viper.New()
	config.SetDefaults(v)
	return v
}

func TestDefaults(t *testing.T) {
	c, err := config.Load(newViper())
	require.NoError(t, err)

	assert.Equal(t, "json", c.Output)
	assert.Equal(t, "127.0.0.1:8332", c.Daemon.Host)
	assert.Zero(t, c.Daemon.Version)
	assert.False(t, c.Watch.Enabled)
	assert.Equal(t, 10*time.Second, c.Watcher().Interval)
	assert.Equal(t, "/ws", c.RPCServer().WebsocketPath)
}

func TestOverrides(t *testing.T) {
	v := newViper()
	v.Set(flags.Daemon_Version, 24)
	v.Set(flags.Daemon_User, "alice")
	v.Set(flags.Watch_Enabled, true)
	v.Set(flags.Watch_Interval, "2s")
	v.Set(flags.Output, "yaml")

	c, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 24, c.Client().Version)
	assert.Equal(t, "alice", c.Client().User)
	assert.Equal(t, 2*time.Second, c.Watcher().Interval)
	assert.Equal(t, "yaml", c.Output)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"version too old", flags.Daemon_Version, 16},
		{"version too new", flags.Daemon_Version, 29},
		{"no host", flags.Daemon_Host, ""},
		{"bad output", flags.Output, "xml"},
		{"bad rpc addr", flags.RPC_Addr, "localhost"},
		{"bad ws path", flags.RPC_WSPath, "ws"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newViper()
			v.Set(tt.key, tt.value)
			_, err := config.Load(v)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestWatchNeedsInterval(t *testing.T) {
	v := newViper()
	v.Set(flags.Watch_Enabled, true)
	v.Set(flags.Watch_Interval, 0)
	_, err := config.Load(v)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	v.Set(flags.Watch_Enabled, false)
	_, err = config.Load(v)
	assert.NoError(t, err)
}
