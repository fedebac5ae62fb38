package rpc

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DOIDFoundation/corerpc/client"
	"github.com/DOIDFoundation/corerpc/events"
	"github.com/DOIDFoundation/corerpc/registry"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

var ErrNoDaemon = errors.New("no daemon configured")

// API converts daemon replies into model types. Without a client only offline
// conversion is available.
type API struct {
	client *client.Client
}

type SubAPI struct{}

// RegisterAPI exposes the conversion engine under the "core" namespace.
func (r *RPC) RegisterAPI(c *client.Client) {
	r.RegisterName("core", &API{client: c})
	r.RegisterName("core", &SubAPI{})
}

// Methods lists the supported methods and the releases that changed them.
func (api *API) Methods() []registry.Method {
	return registry.Methods()
}

// Convert converts a captured reply of method from daemon release version.
func (api *API) Convert(method string, version int, reply json.RawMessage) (any, error) {
	return registry.Convert(method, version, reply)
}

// Call calls method on the daemon and returns the converted reply.
func (api *API) Call(ctx context.Context, method string, params []any) (any, error) {
	if api.client == nil {
		return nil, ErrNoDaemon
	}
	return api.client.Convert(ctx, method, params...)
}

// DaemonVersion returns the release of the daemon.
func (api *API) DaemonVersion(ctx context.Context) (int, error) {
	if api.client == nil {
		return 0, ErrNoDaemon
	}
	return api.client.Version(ctx)
}

// ConversionFailures sends a notification each time a daemon reply could not
// be converted.
func (api *SubAPI) ConversionFailures(ctx context.Context) (*ethrpc.Subscription, error) {
	return Subscribe(ctx, events.ConversionFailed)
}
