package rpc

import (
	"context"
	"log/slog"

	"github.com/cometbft/cometbft/libs/log"
	ethlog "github.com/ethereum/go-ethereum/log"
)

// logHandler forwards go-ethereum log records to a cometbft logger.
type logHandler struct {
	logger log.Logger
	attrs  []any
	group  string
}

// NewLogHandler returns a slog handler writing to logger. Trace and debug
// records go to Debug, warnings to Info and anything above to Error.
func NewLogHandler(logger log.Logger) slog.Handler {
	return &logHandler{logger: logger}
}

func (h *logHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *logHandler) Handle(_ context.Context, r slog.Record) error {
	kv := make([]any, 0, len(h.attrs)+2*r.NumAttrs())
	kv = append(kv, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		kv = append(kv, h.key(a.Key), a.Value.Resolve().Any())
		return true
	})

	switch {
	case r.Level < slog.LevelInfo:
		h.logger.Debug(r.Message, kv...)
	case r.Level < slog.LevelError:
		h.logger.Info(r.Message, kv...)
	default:
		h.logger.Error(r.Message, kv...)
	}
	return nil
}

func (h *logHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	kv := make([]any, 0, len(h.attrs)+2*len(attrs))
	kv = append(kv, h.attrs...)
	for _, a := range attrs {
		kv = append(kv, h.key(a.Key), a.Value.Resolve().Any())
	}
	return &logHandler{logger: h.logger, attrs: kv, group: h.group}
}

func (h *logHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &logHandler{logger: h.logger, attrs: h.attrs, group: h.key(name)}
}

func (h *logHandler) key(k string) string {
	if h.group == "" {
		return k
	}
	return h.group + "." + k
}

// bridgeLogs routes the go-ethereum root logger into logger.
func bridgeLogs(logger log.Logger) {
	ethlog.SetDefault(ethlog.NewLogger(NewLogHandler(logger)))
}
