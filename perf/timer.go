package perf

import (
	"fmt"
	"time"
)

// timeLineFormat pads the label to a fixed column so elapsed values line up
// when several timers print in sequence.
const timeLineFormat = "  [time] %-28s%g ms\n"

// ScopedTimer measures elapsed time for a single labeled region and reports
// it unconditionally when stopped. There is no programmatic accessor; the
// printed line is the result. Pair construction with a deferred Stop so the
// region is reported on every exit path:
//
//	t := perf.StartTimer("load index")
//	defer t.Stop()
type ScopedTimer struct {
	label   string
	start   time.Time
	enabled bool
}

// StartTimer starts timing a region.
func StartTimer(label string) *ScopedTimer {
	return startTimer(label, Enabled)
}

func startTimer(label string, enabled bool) *ScopedTimer {
	t := &ScopedTimer{label: label, enabled: enabled}
	if enabled {
		t.start = time.Now()
	}
	return t
}

// Stop prints the elapsed time to TimerSink. When instrumentation is
// disabled it does nothing.
func (t *ScopedTimer) Stop() {
	if !t.enabled {
		return
	}
	TimerSink().Print(fmt.Sprintf(timeLineFormat, t.label, elapsedMS(t.start, true)))
}
