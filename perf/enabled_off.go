//go:build perfoff

package perf

// Enabled reports whether instrumentation is compiled in. This build has the
// perfoff tag set, so every measurement is a no-op.
const Enabled = false
