package watch

import (
	"context"
	"errors"

	"github.com/DOIDFoundation/corerpc/events"
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/rpc"
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethrpc "github.com/ethereum/go-ethereum/rpc"
)

var ErrNotWatched = errors.New("transaction not in watched mempool")

type API struct {
	watcher *Watcher
}

type SubAPI struct{}

// Status returns the number of watched entries, polls and failed polls.
func (api *API) Status() map[string]hexutil.Uint64 {
	entries, rounds, failures := api.watcher.Stats()
	return map[string]hexutil.Uint64{
		"entries":  hexutil.Uint64(entries),
		"rounds":   hexutil.Uint64(rounds),
		"failures": hexutil.Uint64(failures),
	}
}

// Entry returns the converted mempool entry of txid.
func (api *API) Entry(txid string) (*model.MempoolEntry, error) {
	id, err := types.ParseTxid(txid)
	if err != nil {
		return nil, err
	}
	entry, ok := api.watcher.Entry(id)
	if !ok {
		return nil, ErrNotWatched
	}
	return &entry, nil
}

// NewEntries sends a notification each time a transaction enters the mempool.
func (api *SubAPI) NewEntries(ctx context.Context) (*ethrpc.Subscription, error) {
	return rpc.Subscribe(ctx, events.NewMempoolEntry)
}

// RemovedEntries sends a notification each time a transaction leaves the
// mempool.
func (api *SubAPI) RemovedEntries(ctx context.Context) (*ethrpc.Subscription, error) {
	return rpc.Subscribe(ctx, events.MempoolRemoved)
}

func (w *Watcher) RegisterAPI(r *rpc.RPC) {
	r.RegisterName("watch", &API{watcher: w})
	r.RegisterName("watch", &SubAPI{})
}
