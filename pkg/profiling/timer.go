// Package profiling records nested timing spans for a single command run.
package profiling

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Stopper ends a timed span.
type Stopper interface {
	Stop()
}

type span struct {
	name     string
	start    time.Time
	duration time.Duration
	children []*span
	timer    *Timer
}

func (s *span) Stop() {
	s.duration = s.timer.since(s.start)
	s.timer.pop(s)
}

// Timer collects a tree of spans. The zero value is disabled.
type Timer struct {
	mu      sync.Mutex
	enabled bool
	root    *span
	stack   []*span
	now     func() time.Time
}

// NewTimer returns an enabled timer whose clock is now. A nil now uses
// time.Now.
func NewTimer(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}
	t := &Timer{enabled: true, now: now}
	t.root = &span{name: "total", start: now(), timer: t}
	t.stack = []*span{t.root}
	return t
}

var (
	globalMu sync.Mutex
	global   = &Timer{}
)

// Enable installs a fresh enabled timer as the process-wide timer.
func Enable() *Timer {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = NewTimer(nil)
	return global
}

// Disable replaces the process-wide timer with a disabled one.
func Disable() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = &Timer{}
}

// Start opens a span on the process-wide timer. Call Stop on the result,
// usually via defer.
func Start(name string) Stopper {
	globalMu.Lock()
	t := global
	globalMu.Unlock()
	return t.Start(name)
}

// Summarize writes the process-wide timer's span tree to w.
func Summarize(w io.Writer) {
	globalMu.Lock()
	t := global
	globalMu.Unlock()
	t.Summarize(w)
}

// Start opens a span nested under the innermost open span.
func (t *Timer) Start(name string) Stopper {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return noopStopper{}
	}

	parent := t.stack[len(t.stack)-1]
	s := &span{name: name, start: t.now(), timer: t}
	parent.children = append(parent.children, s)
	t.stack = append(t.stack, s)
	return s
}

func (t *Timer) since(start time.Time) time.Duration {
	return t.now().Sub(start)
}

func (t *Timer) pop(s *span) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.stack) - 1; i > 0; i-- {
		if t.stack[i] == s {
			t.stack = t.stack[:i]
			return
		}
	}
}

// Summarize writes the span tree with each span's share of the total.
// A disabled timer writes nothing.
func (t *Timer) Summarize(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.enabled {
		return
	}

	total := t.now().Sub(t.root.start)
	t.root.duration = total
	fmt.Fprintf(w, "timing: %v\n", total.Round(100*time.Microsecond))
	for _, child := range t.root.children {
		writeSpan(w, child, 1, total)
	}
}

func writeSpan(w io.Writer, s *span, depth int, total time.Duration) {
	pct := 0.0
	if total > 0 {
		pct = float64(s.duration) / float64(total) * 100
	}
	fmt.Fprintf(w, "%s%s %v (%.1f%%)\n", strings.Repeat("  ", depth), s.name, s.duration.Round(100*time.Microsecond), pct)
	for _, child := range s.children {
		writeSpan(w, child, depth+1, total)
	}
}

type noopStopper struct{}

func (noopStopper) Stop() {}
