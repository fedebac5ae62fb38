// Package config assembles the process configuration from viper and
// validates it.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/DOIDFoundation/corerpc/client"
	"github.com/DOIDFoundation/corerpc/flags"
	"github.com/DOIDFoundation/corerpc/rpc"
	"github.com/DOIDFoundation/corerpc/watch"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

const DefaultMetricsAddr = "127.0.0.1:9340"

type Config struct {
	Daemon  DaemonConfig  `mapstructure:"daemon"`
	RPC     RPCConfig     `mapstructure:"rpc"`
	Watch   WatchConfig   `mapstructure:"watch"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Output  string        `mapstructure:"output" validate:"oneof=json yaml"`
}

type DaemonConfig struct {
	Host    string `mapstructure:"host" validate:"required"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Version int    `mapstructure:"version" validate:"eq=0|min=17,max=28"`
}

type RPCConfig struct {
	Addr   string `mapstructure:"addr" validate:"required,hostname_port"`
	WSPath string `mapstructure:"ws_path" validate:"required,startswith=/"`
}

type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval" validate:"required_if=Enabled true,omitempty,min=100ms"`
	Cache    int           `mapstructure:"cache" validate:"required_if=Enabled true,omitempty,min=1"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr" validate:"required_if=Enabled true,omitempty,hostname_port"`
}

// SetDefaults registers the default of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(flags.Output, "json")
	v.SetDefault(flags.Daemon_Host, "127.0.0.1:8332")
	v.SetDefault(flags.Daemon_Version, 0)
	v.SetDefault(flags.RPC_Addr, rpc.DefaultConfig.ListenAddress)
	v.SetDefault(flags.RPC_WSPath, rpc.DefaultConfig.WebsocketPath)
	v.SetDefault(flags.Watch_Enabled, false)
	v.SetDefault(flags.Watch_Interval, watch.DefaultConfig.Interval)
	v.SetDefault(flags.Watch_Cache, watch.DefaultConfig.CacheSize)
	v.SetDefault(flags.Metrics_Enabled, false)
	v.SetDefault(flags.Metrics_Addr, DefaultMetricsAddr)
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

var validate = validator.New()

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c *Config) Client() client.Config {
	return client.Config{
		Host:    c.Daemon.Host,
		User:    c.Daemon.User,
		Pass:    c.Daemon.Pass,
		Version: c.Daemon.Version,
	}
}

func (c *Config) RPCServer() rpc.Config {
	config := rpc.DefaultConfig
	config.ListenAddress = c.RPC.Addr
	config.WebsocketPath = c.RPC.WSPath
	return config
}

func (c *Config) Watcher() watch.Config {
	return watch.Config{Interval: c.Watch.Interval, CacheSize: c.Watch.Cache}
}
