package rpc

import ethrpc "github.com/ethereum/go-ethereum/rpc"

// Defines the configuration options for the RPC server
type Config struct {
	// TCP address for the RPC server to listen on
	ListenAddress string `mapstructure:"addr" validate:"required,hostname_port"`
	// WebsocketPath is where websocket clients connect for subscriptions.
	WebsocketPath string `mapstructure:"ws_path" validate:"required,startswith=/"`
	// HTTPTimeouts allows for customization of the timeout values used by the HTTP RPC
	// interface.
	HTTPTimeouts ethrpc.HTTPTimeouts `mapstructure:"-"`
}

// DefaultConfig returns a default configuration for the RPC server
var DefaultConfig = Config{
	ListenAddress: "127.0.0.1:8340",
	WebsocketPath: "/ws",
	HTTPTimeouts:  ethrpc.DefaultHTTPTimeouts,
}
