package rpc_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/DOIDFoundation/corerpc/rpc"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/assert"
)

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(rpc.NewLogHandler(log.NewTMLogger(log.NewSyncWriter(&buf))))

	logger.Info("served", "method", "core_convert")
	assert.Contains(t, buf.String(), "served")
	assert.Contains(t, buf.String(), "method=core_convert")

	buf.Reset()
	logger.With("conn", 7).WithGroup("req").Debug("handled", "id", 1)
	assert.Contains(t, buf.String(), "D[")
	assert.Contains(t, buf.String(), "conn=7")
	assert.Contains(t, buf.String(), "req.id=1")

	buf.Reset()
	logger.Warn("slow")
	assert.Contains(t, buf.String(), "I[")

	buf.Reset()
	logger.Error("failed")
	assert.Contains(t, buf.String(), "E[")
}
