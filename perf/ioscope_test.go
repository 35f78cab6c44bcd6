//go:build !perfoff

package perf

import (
	"strings"
	"testing"
)

func TestIOScopeFinish(t *testing.T) {
	counter := uint64(4096)
	scope := NewIOScope(&counter, "read")

	counter = 5120
	d := scope.Finish()

	if d.Begin != 4096 || d.End != 5120 {
		t.Errorf("Finish() = %+v, want {4096 5120}", d)
	}
	if d.Bytes() != 1024 {
		t.Errorf("Bytes() = %d, want 1024", d.Bytes())
	}
	if d.Mebibytes() != 0.0009765625 {
		t.Errorf("Mebibytes() = %v, want 0.0009765625", d.Mebibytes())
	}
}

func TestIOScopeFinishIdempotent(t *testing.T) {
	counter := uint64(100)
	scope := NewIOScope(&counter, "read")

	counter = 300
	first := scope.Finish()

	// The counter keeps advancing; a second Finish must return the cached
	// delta, not re-read the source.
	counter = 900
	second := scope.Finish()

	if first != second {
		t.Errorf("second Finish() = %+v, want cached %+v", second, first)
	}
	if second.Bytes() != 200 {
		t.Errorf("Bytes() = %d, want 200", second.Bytes())
	}
}

func TestIOScopeNilCounter(t *testing.T) {
	buf := captureIOSink(t)

	scope := NewIOScope(nil, "orphan")
	d := scope.Finish()
	if d != (ByteDelta{}) {
		t.Errorf("Finish() with nil counter = %+v, want zero delta", d)
	}

	scope2 := NewIOScope(nil, "orphan")
	scope2.Close()
	if buf.Len() != 0 {
		t.Errorf("Close() with nil counter printed %q, want nothing", buf.String())
	}
}

func TestIOScopeCloseReports(t *testing.T) {
	buf := captureIOSink(t)

	counter := uint64(0)
	scope := NewIOScope(&counter, "read chunks")
	counter += 1024
	scope.Close()

	want := "[io] read chunks: 1024 B (0.0009765625 MiB)\n"
	if buf.String() != want {
		t.Errorf("Close() printed %q, want %q", buf.String(), want)
	}
}

func TestIOScopeEmptyLabelSilent(t *testing.T) {
	buf := captureIOSink(t)

	counter := uint64(10)
	scope := NewIOScope(&counter, "")
	counter = 50
	scope.Close()

	if buf.Len() != 0 {
		t.Errorf("Close() with empty label printed %q, want nothing", buf.String())
	}
}

func TestIOScopeExplicitFinishSilencesClose(t *testing.T) {
	buf := captureIOSink(t)

	counter := uint64(0)
	scope := NewIOScope(&counter, "read")
	counter = 77
	d := scope.Finish()
	if d.Bytes() != 77 {
		t.Errorf("Bytes() = %d, want 77", d.Bytes())
	}

	scope.Close()
	if buf.Len() != 0 {
		t.Errorf("Close() after Finish() printed %q, want nothing", buf.String())
	}
}

func TestIOScopeCloseIdempotent(t *testing.T) {
	buf := captureIOSink(t)

	counter := uint64(0)
	scope := NewIOScope(&counter, "read")
	counter = 512
	scope.Close()
	scope.Close()

	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Errorf("two Close() calls printed %d lines, want 1", got)
	}
}

func TestIOScopeLabel(t *testing.T) {
	counter := uint64(0)
	scope := NewIOScope(&counter, "segment flush")
	if scope.Label() != "segment flush" {
		t.Errorf("Label() = %q, want %q", scope.Label(), "segment flush")
	}
}
