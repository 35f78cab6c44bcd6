package perf

import (
	"io"
	"os"
	"sync"
)

// Sink serializes diagnostic text output to a single destination. Each Print
// holds the lock for the duration of one write, so text from concurrent
// callers never interleaves within a call. There is no ordering guarantee
// between calls from different goroutines.
type Sink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewSink returns a sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Print writes text to the sink's destination. Diagnostics are best-effort:
// write errors are discarded, never surfaced.
func (s *Sink) Print(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.w == nil {
		return
	}
	_, _ = io.WriteString(s.w, text)
}

// SetWriter swaps the sink's destination. Useful for tests and for embedding
// applications that redirect diagnostics.
func (s *Sink) SetWriter(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

var (
	timerSinkOnce sync.Once
	timerSink     *Sink

	ioSinkOnce sync.Once
	ioSink     *Sink
)

// TimerSink returns the process-wide sink for timer lines. It is lazily
// initialized to stdout.
func TimerSink() *Sink {
	timerSinkOnce.Do(func() {
		timerSink = NewSink(os.Stdout)
	})
	return timerSink
}

// IOSink returns the process-wide sink for IO scope reports. It is lazily
// initialized to stderr.
func IOSink() *Sink {
	ioSinkOnce.Do(func() {
		ioSink = NewSink(os.Stderr)
	})
	return ioSink
}
