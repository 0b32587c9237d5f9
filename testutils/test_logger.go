package testutils

import (
	"bytes"
	"io"
	"sync"

	"github.com/gocircum/dynproxy/pkg/logging"

	"go.uber.org/zap/zapcore"
)

// NewTestLogger creates a new logger for testing that discards output.
func NewTestLogger() logging.Logger {
	logger, err := logging.New("debug", "console", zapcore.AddSync(io.Discard))
	if err != nil {
		panic(err)
	}
	return logger
}

// NewBufferLogger creates a JSON debug logger whose output can be inspected.
func NewBufferLogger() (logging.Logger, *SyncBuffer) {
	buf := &SyncBuffer{}
	logger, err := logging.New("debug", "json", zapcore.AddSync(buf))
	if err != nil {
		panic(err)
	}
	return logger, buf
}

// SyncBuffer is a bytes.Buffer safe for concurrent writers.
type SyncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *SyncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *SyncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
