package logging

import (
	"io"
	"os"
	"sync"
)

// redirectWriter forwards writes to a target that can be replaced while
// loggers hold a reference to the redirectWriter itself.
type redirectWriter struct {
	mu     sync.RWMutex
	target io.Writer
}

// Write forwards p to the current target.
func (r *redirectWriter) Write(p []byte) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.target.Write(p)
}

// redirect replaces the target. A nil w discards output.
func (r *redirectWriter) redirect(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.target = w
}

var consoleOutput = &redirectWriter{target: os.Stderr}

// SetGlobalOutput sends every logger's stderr sink, and pretty output with
// no writer of its own, to w. Tests pass io.Discard or a buffer.
func SetGlobalOutput(w io.Writer) {
	consoleOutput.redirect(w)
}

// GetGlobalOutput returns the shared console writer. It stays valid across
// SetGlobalOutput calls.
func GetGlobalOutput() io.Writer {
	return consoleOutput
}
