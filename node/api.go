package node

import (
	"github.com/DOIDFoundation/corerpc/version"
)

type API struct {
	node *Node
}

func (api *API) Status() map[string]bool {
	return map[string]bool{
		"is_running": api.node.IsRunning(),
		"watching":   api.node.watcher != nil && api.node.watcher.IsRunning(),
		"metrics":    api.node.metrics != nil && api.node.metrics.IsRunning(),
	}
}

// Version returns the version of the running binary.
func (api *API) Version() string {
	return version.VersionWithMeta
}

func RegisterAPI(node *Node) {
	node.rpc.RegisterName("node", &API{node: node})
}
