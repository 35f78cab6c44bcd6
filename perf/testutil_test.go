package perf

import (
	"bytes"
	"os"
	"testing"
)

// captureTimerSink redirects the process-wide timer sink into a buffer for
// the duration of the test.
func captureTimerSink(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	TimerSink().SetWriter(&buf)
	t.Cleanup(func() {
		TimerSink().SetWriter(os.Stdout)
	})
	return &buf
}

// captureIOSink redirects the process-wide IO sink into a buffer for the
// duration of the test.
func captureIOSink(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	IOSink().SetWriter(&buf)
	t.Cleanup(func() {
		IOSink().SetWriter(os.Stderr)
	})
	return &buf
}
