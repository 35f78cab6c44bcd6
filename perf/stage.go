package perf

import (
	"fmt"
	"time"
)

// StageTimer frames a named phase of work: it prints a header line at
// construction and a TOTAL line when Done is called. Nothing prints at scope
// exit, so a stage can emit its header up front, let sub-timers print their
// own lines in between, and report the total at a caller-chosen point:
//
//	stage := perf.StartStage("Parse", "[Phase]")
//	... // ScopedTimers, IOScopes
//	stage.Done()
//
// StageTimer does not track IO.
type StageTimer struct {
	name    string
	prefix  string
	start   time.Time
	enabled bool
}

// StartStage starts a stage and immediately prints its header to TimerSink.
// The header is "\n<prefix> <name>\n", with the space inserted only when
// prefix is non-empty.
func StartStage(name, prefix string) *StageTimer {
	return startStage(name, prefix, Enabled)
}

func startStage(name, prefix string, enabled bool) *StageTimer {
	st := &StageTimer{name: name, prefix: prefix, enabled: enabled}
	if !enabled {
		return st
	}
	st.start = time.Now()
	sep := ""
	if prefix != "" {
		sep = " "
	}
	TimerSink().Print(fmt.Sprintf("\n%s%s%s\n", prefix, sep, name))
	return st
}

// Done prints the stage's TOTAL line with the time elapsed since StartStage.
// It may be called any number of times; each call prints a fresh reading.
func (st *StageTimer) Done() {
	if !st.enabled {
		return
	}
	TimerSink().Print(fmt.Sprintf(timeLineFormat, "TOTAL", elapsedMS(st.start, true)))
}
