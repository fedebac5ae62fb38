package node

import (
	"github.com/DOIDFoundation/corerpc/client"
	"github.com/DOIDFoundation/corerpc/config"
	"github.com/DOIDFoundation/corerpc/metrics"
	"github.com/DOIDFoundation/corerpc/rpc"
	"github.com/DOIDFoundation/corerpc/watch"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
)

//------------------------------------------------------------------------------

// Node is the long running corerpc process.
// It includes all configuration information and running services.
type Node struct {
	service.BaseService
	config *config.Config
	client *client.Client
	rpc    *rpc.RPC

	source  watch.Source
	watcher *watch.Watcher  // nil unless watching is enabled
	metrics *metrics.Server // nil unless metrics are enabled
}

// Option sets a parameter for the node.
type Option func(*Node)

// WithSource makes the watcher read the mempool from source instead of the
// daemon client.
func WithSource(source watch.Source) Option {
	return func(n *Node) {
		n.source = source
	}
}

// NewNode returns a new, ready to go node.
func NewNode(cfg *config.Config, logger log.Logger, options ...Option) (*Node, error) {
	c, err := client.New(cfg.Client(), logger)
	if err != nil {
		return nil, err
	}

	node := &Node{
		config: cfg,
		client: c,
		rpc:    rpc.NewRPC(cfg.RPCServer(), logger),
	}
	node.BaseService = *service.NewBaseService(logger.With("module", "node"), "Node", node)

	for _, option := range options {
		option(node)
	}

	if cfg.Watch.Enabled {
		if node.source == nil {
			node.source = watch.ClientSource{Client: c}
		}
		node.watcher, err = watch.NewWatcher(node.source, cfg.Watcher(), logger)
		if err != nil {
			c.Shutdown()
			return nil, err
		}
	}
	if cfg.Metrics.Enabled {
		node.metrics = metrics.NewServer(logger, cfg.Metrics.Addr)
	}

	RegisterAPI(node)
	node.rpc.RegisterAPI(c)
	if node.watcher != nil {
		node.watcher.RegisterAPI(node.rpc)
	}

	return node, nil
}

// OnStart starts the Node. It implements service.Service.
func (n *Node) OnStart() error {
	if n.metrics != nil {
		if err := n.metrics.Start(); err != nil {
			return err
		}
	}
	if err := n.rpc.Start(); err != nil {
		return err
	}
	if n.watcher != nil {
		if err := n.watcher.Start(); err != nil {
			return err
		}
	}
	return nil
}

// OnStop stops the Node. It implements service.Service.
func (n *Node) OnStop() {
	if n.watcher != nil && n.watcher.IsRunning() {
		n.watcher.Stop()
	}
	if n.rpc.IsRunning() {
		n.rpc.Stop()
	}
	if n.metrics != nil && n.metrics.IsRunning() {
		n.metrics.Stop()
	}
	n.client.Shutdown()
}

func (n *Node) RPC() *rpc.RPC {
	return n.rpc
}

func (n *Node) Watcher() *watch.Watcher {
	return n.watcher
}
