// Package watch polls the daemon mempool, converting every entry for the
// daemon's release and announcing arrivals and departures on the event feeds.
package watch

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/DOIDFoundation/corerpc/client"
	"github.com/DOIDFoundation/corerpc/events"
	"github.com/DOIDFoundation/corerpc/metrics"
	"github.com/DOIDFoundation/corerpc/model"
	"github.com/DOIDFoundation/corerpc/types"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/libs/service"
	lru "github.com/hashicorp/golang-lru"
)

var ErrUnexpectedReply = errors.New("unexpected reply type")

// Source supplies the converted verbose mempool.
type Source interface {
	RawMempool(ctx context.Context) (model.GetRawMempoolVerbose, error)
}

// ClientSource reads the mempool through a daemon client.
type ClientSource struct {
	Client *client.Client
}

func (s ClientSource) RawMempool(ctx context.Context) (model.GetRawMempoolVerbose, error) {
	v, err := s.Client.Convert(ctx, "getrawmempool_verbose")
	if err != nil {
		return nil, err
	}
	m, ok := v.(model.GetRawMempoolVerbose)
	if !ok {
		return nil, ErrUnexpectedReply
	}
	return m, nil
}

type Config struct {
	// Interval between two polls of the daemon
	Interval time.Duration `mapstructure:"interval"`
	// CacheSize bounds the number of entries remembered between polls.
	// Entries evicted from a full cache are announced again.
	CacheSize int `mapstructure:"cache"`
}

var DefaultConfig = Config{
	Interval:  10 * time.Second,
	CacheSize: 8192,
}

type Watcher struct {
	service.BaseService
	config Config
	source Source

	mu       sync.RWMutex
	known    *lru.Cache // types.Txid -> model.MempoolEntry
	rounds   uint64
	failures uint64

	quit chan struct{}
	wg   sync.WaitGroup
}

func NewWatcher(source Source, config Config, logger log.Logger) (*Watcher, error) {
	known, err := lru.New(config.CacheSize)
	if err != nil {
		return nil, err
	}
	w := &Watcher{config: config, source: source, known: known}
	w.BaseService = *service.NewBaseService(logger.With("module", "watch"), "Watcher", w)
	return w, nil
}

func (w *Watcher) OnStart() error {
	w.quit = make(chan struct{})
	w.wg.Add(1)
	go w.loop()
	return nil
}

func (w *Watcher) OnStop() {
	close(w.quit)
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-w.quit
		cancel()
	}()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		if err := w.Poll(ctx); err != nil && ctx.Err() == nil {
			w.Logger.Error("mempool poll failed", "err", err)
		}
		select {
		case <-ticker.C:
		case <-w.quit:
			return
		}
	}
}

// Poll fetches the mempool once and announces the difference to the previous
// poll.
func (w *Watcher) Poll(ctx context.Context) error {
	pool, err := w.source.RawMempool(ctx)

	w.mu.Lock()
	w.rounds++
	if err != nil {
		w.failures++
		w.mu.Unlock()
		metrics.ObserveRound(0, err)
		return err
	}

	var added []events.MempoolEntry
	for txid, entry := range pool {
		if !w.known.Contains(txid) {
			added = append(added, events.MempoolEntry{Txid: txid, Entry: entry})
		}
		w.known.Add(txid, entry)
	}
	var removed []types.Txid
	for _, key := range w.known.Keys() {
		txid := key.(types.Txid)
		if _, ok := pool[txid]; !ok {
			w.known.Remove(txid)
			removed = append(removed, txid)
		}
	}
	size := w.known.Len()
	w.mu.Unlock()

	metrics.ObserveRound(size, nil)
	w.Logger.Debug("mempool polled", "entries", size, "added", len(added), "removed", len(removed))

	for _, e := range added {
		events.NewMempoolEntry.Send(e)
	}
	for _, txid := range removed {
		events.MempoolRemoved.Send(txid)
	}
	return nil
}

// Entry returns the last converted entry of txid.
func (w *Watcher) Entry(txid types.Txid) (model.MempoolEntry, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	v, ok := w.known.Get(txid)
	if !ok {
		return model.MempoolEntry{}, false
	}
	return v.(model.MempoolEntry), true
}

// Stats returns the number of known entries, polls and failed polls.
func (w *Watcher) Stats() (entries int, rounds, failures uint64) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.known.Len(), w.rounds, w.failures
}
