package perf

import "fmt"

// IOScope observes a single externally-owned byte counter across a scope's
// lifetime. The counter must outlive the scope; it is read, never written.
//
// Typical use pairs construction with a deferred Close, which reports the
// delta to IOSink when the scope had both a counter and a label:
//
//	scope := perf.NewIOScope(&bytesRead, "compaction")
//	defer scope.Close()
//
// Callers that want the delta programmatically call Finish instead; an
// explicitly finished scope closes silently.
type IOScope struct {
	counter  *uint64
	label    string
	begin    uint64
	finished bool
	last     ByteDelta
	enabled  bool
}

// NewIOScope captures the counter's current value as the begin reading. A
// nil counter is treated as "no observation" and finalizes to a zero delta.
func NewIOScope(counter *uint64, label string) *IOScope {
	return newIOScope(counter, label, Enabled)
}

func newIOScope(counter *uint64, label string, enabled bool) *IOScope {
	s := &IOScope{counter: counter, label: label, enabled: enabled}
	if enabled && counter != nil {
		s.begin = *counter
	}
	return s
}

// Label returns the scope's display label.
func (s *IOScope) Label() string {
	return s.label
}

// Finish reads the counter's current value and returns the delta since
// construction. The first call caches its result permanently; later calls
// return the cached delta even if the counter has advanced since. Finish
// never prints. When instrumentation is disabled it returns a zero delta.
func (s *IOScope) Finish() ByteDelta {
	if !s.enabled {
		s.finished = true
		return ByteDelta{}
	}
	if s.finished {
		return s.last
	}
	end := s.begin
	if s.counter != nil {
		end = *s.counter
	}
	s.last = ByteDelta{Begin: s.begin, End: end}
	s.finished = true
	return s.last
}

// Close finalizes the scope; pair it with defer so every exit path releases
// the measurement window. If the scope has not been finished and has both a
// counter and a non-empty label, Close prints the delta to IOSink. A scope
// already finished by an explicit Finish closes silently: once the caller
// has the value, reporting is the caller's job.
func (s *IOScope) Close() {
	if !s.enabled || s.finished {
		return
	}
	report := s.counter != nil && s.label != ""
	d := s.Finish()
	if report {
		IOSink().Print(fmt.Sprintf("[io] %s: %d B (%g MiB)\n", s.label, d.Bytes(), d.Mebibytes()))
	}
}
