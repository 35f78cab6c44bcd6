package perf

import "fmt"

// Reader computes the current value of an aggregated byte counter on demand.
// It must be side-effect-free and safe to call from the owning goroutine at
// any time.
type Reader func() uint64

// MultiIOScope observes a computed byte count across a scope's lifetime, for
// example the sum of several per-worker counters, without owning or knowing
// about the individual counters:
//
//	total := perf.NewMultiIOScope(func() uint64 {
//	    var sum uint64
//	    for _, c := range counters {
//	        sum += c.Load()
//	    }
//	    return sum
//	}, "all workers")
//	defer total.Close()
//
// The contract is identical to IOScope with "counter is non-nil" replaced by
// "reader is non-nil". The reader is invoked exactly twice: once at
// construction and once at finalization.
type MultiIOScope struct {
	reader   Reader
	label    string
	begin    uint64
	finished bool
	last     ByteDelta
	enabled  bool
}

// NewMultiIOScope captures reader() as the begin reading. A nil reader is
// treated as "no observation" and finalizes to a zero delta.
func NewMultiIOScope(reader Reader, label string) *MultiIOScope {
	return newMultiIOScope(reader, label, Enabled)
}

func newMultiIOScope(reader Reader, label string, enabled bool) *MultiIOScope {
	s := &MultiIOScope{reader: reader, label: label, enabled: enabled}
	if enabled && reader != nil {
		s.begin = reader()
	}
	return s
}

// Label returns the scope's display label.
func (s *MultiIOScope) Label() string {
	return s.label
}

// Finish invokes the reader and returns the delta since construction. The
// first call caches its result permanently; later calls return the cached
// delta without re-invoking the reader. Finish never prints. When
// instrumentation is disabled it returns a zero delta.
func (s *MultiIOScope) Finish() ByteDelta {
	if !s.enabled {
		s.finished = true
		return ByteDelta{}
	}
	if s.finished {
		return s.last
	}
	end := s.begin
	if s.reader != nil {
		end = s.reader()
	}
	s.last = ByteDelta{Begin: s.begin, End: end}
	s.finished = true
	return s.last
}

// Close finalizes the scope; pair it with defer. If the scope has not been
// finished and has both a reader and a non-empty label, Close prints the
// delta to IOSink. An explicitly finished scope closes silently.
func (s *MultiIOScope) Close() {
	if !s.enabled || s.finished {
		return
	}
	report := s.reader != nil && s.label != ""
	d := s.Finish()
	if report {
		IOSink().Print(fmt.Sprintf("[io] %s: %d B (%g MiB)\n", s.label, d.Bytes(), d.Mebibytes()))
	}
}
