// Package client calls a daemon over its JSON-RPC interface and converts the
// replies into model types for the daemon's release.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/DOIDFoundation/corerpc/events"
	"github.com/DOIDFoundation/corerpc/metrics"
	"github.com/DOIDFoundation/corerpc/registry"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cometbft/cometbft/libs/log"
)

// Config describes how to reach the daemon.
type Config struct {
	Host string `mapstructure:"host"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	// Version is the daemon release, zero to detect it on first use.
	Version int `mapstructure:"version"`
}

type Client struct {
	logger log.Logger
	rpc    *rpcclient.Client

	mu      sync.Mutex
	version int
}

// New creates a client. No connection is made until the first call.
func New(cfg Config, logger log.Logger) (*Client, error) {
	if cfg.Host == "" {
		return nil, ErrNoHost
	}
	host := strings.TrimPrefix(strings.TrimPrefix(cfg.Host, "http://"), "https://")
	rpc, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         host,
		User:         cfg.User,
		Pass:         cfg.Pass,
		HTTPPostMode: true,
		DisableTLS:   !strings.HasPrefix(cfg.Host, "https://"),
	}, nil)
	if err != nil {
		return nil, err
	}
	return &Client{logger: logger.With("module", "client"), rpc: rpc, version: cfg.Version}, nil
}

// Raw calls method with params and returns the undecoded result.
func (c *Client) Raw(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	raws := make([]json.RawMessage, 0, len(params))
	for _, p := range params {
		b, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("%s: encode params: %w", method, err)
		}
		raws = append(raws, b)
	}

	type result struct {
		raw json.RawMessage
		err error
	}
	future := c.rpc.RawRequestAsync(method, raws)
	done := make(chan result, 1)
	go func() {
		raw, err := future.Receive()
		done <- result{raw, err}
	}()

	c.logger.Debug("daemon call", "method", method, "params", len(raws))
	select {
	case <-ctx.Done():
		metrics.ObserveCall(method, ctx.Err())
		return nil, ctx.Err()
	case r := <-done:
		metrics.ObserveCall(method, r.err)
		if r.err != nil {
			return nil, fmt.Errorf("%s: %w", method, r.err)
		}
		return r.raw, nil
	}
}

// Call calls method and decodes its result into the wire type W.
func Call[W any](ctx context.Context, c *Client, method string, params ...any) (W, error) {
	var w W
	raw, err := c.Raw(ctx, method, params...)
	if err != nil {
		return w, err
	}
	if err := json.Unmarshal(raw, &w); err != nil {
		return w, fmt.Errorf("%s: decode reply: %w", method, err)
	}
	return w, nil
}

// Version returns the daemon release, detecting it when not configured.
func (c *Client) Version(ctx context.Context) (int, error) {
	c.mu.Lock()
	v := c.version
	c.mu.Unlock()
	if v != 0 {
		return v, nil
	}
	return c.DetectVersion(ctx)
}

type networkVersion struct {
	Version int64 `json:"version"`
}

// DetectVersion asks the daemon for its release and remembers it.
func (c *Client) DetectVersion(ctx context.Context) (int, error) {
	info, err := Call[networkVersion](ctx, c, "getnetworkinfo")
	if err != nil {
		return 0, err
	}
	v := int(info.Version / 10000)
	if v < registry.MinVersion || v > registry.MaxVersion {
		return 0, fmt.Errorf("%w: daemon reports %d", registry.ErrUnsupportedVersion, info.Version)
	}
	c.mu.Lock()
	c.version = v
	c.mu.Unlock()
	c.logger.Info("detected daemon version", "version", v)
	return v, nil
}

// Convert calls the registered method name and converts the reply into its
// model type. Verbose methods get their trailing true parameter appended.
func (c *Client) Convert(ctx context.Context, name string, params ...any) (any, error) {
	m, err := registry.Get(name)
	if err != nil {
		return nil, err
	}
	version, err := c.Version(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := m.Bucket(version); err != nil {
		return nil, err
	}
	if m.Verbose {
		params = append(params, true)
	}
	raw, err := c.Raw(ctx, m.RPC, params...)
	if err != nil {
		return nil, err
	}
	v, err := registry.Convert(name, version, raw)
	if err != nil {
		c.logger.Error("conversion failed", "method", name, "version", version, "err", err)
		events.ConversionFailed.Send(events.ConversionFailure{Method: name, Version: version, Error: err.Error()})
		return nil, err
	}
	return v, nil
}

// Shutdown stops the underlying transport.
func (c *Client) Shutdown() {
	c.rpc.Shutdown()
	c.rpc.WaitForShutdown()
}
