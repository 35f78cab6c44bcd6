//go:build !perfoff

package perf

// Enabled reports whether instrumentation is compiled in. Build with
// -tags perfoff to turn every measurement into a no-op: constructors still
// return usable values, but nothing reads the clock and nothing prints.
const Enabled = true
