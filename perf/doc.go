// Package perf provides lightweight, optionally-compiled instrumentation for
// measuring elapsed wall-clock time and byte throughput across caller-delimited
// code regions.
//
// The package is a developer diagnostics aid, not a telemetry pipeline: it
// keeps nothing, exports nothing, and prints human-readable lines only. Four
// scoped types cover the common cases:
//
//   - ScopedTimer: times a region and prints the elapsed time when stopped
//   - StageTimer: prints a header up front and a TOTAL line on Done
//   - IOScope: snapshots one byte counter and reports the delta on Close
//   - MultiIOScope: same, but the value comes from a reader callback
//
// # Quick Start
//
//	func parseFiles(files []string) error {
//	    stage := perf.StartStage("Parse", "[Phase]")
//
//	    scope := perf.NewIOScope(&bytesRead, "parse input")
//	    defer scope.Close()
//
//	    for _, f := range files {
//	        t := perf.StartTimer(f)
//	        parse(f)
//	        t.Stop()
//	    }
//
//	    stage.Done()
//	    return nil
//	}
//
// Timer lines go to stdout, IO scope reports to stderr, each through a
// process-wide mutex-guarded Sink so lines from concurrent scopes never
// interleave mid-line. No ordering is guaranteed between lines from
// different goroutines.
//
// # Disabling at Build Time
//
// Building with the perfoff tag turns every operation into a no-op: no
// output, no clock reads, and zero values from Finish and ElapsedMS. See
// Enabled.
//
// # Counter Ownership
//
// Observed counters are owned and synchronized entirely by the caller. The
// package reads them and never writes; a counter mutated concurrently from
// another goroutine must be read through the caller's own synchronization
// (for example by handing MultiIOScope a reader that does atomic loads).
package perf
