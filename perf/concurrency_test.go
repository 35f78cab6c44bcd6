//go:build !perfoff

package perf

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Two goroutines each destroy 1,000 auto-reporting IO scopes; every emitted
// line must be complete, never mixing one goroutine's label with another's
// byte count.
func TestConcurrentIOScopeReportsStayIntact(t *testing.T) {
	buf := captureIOSink(t)

	const perWorker = 1000

	var wg sync.WaitGroup
	for _, w := range []struct {
		label string
		step  uint64
	}{
		{"alpha", 512},
		{"beta", 2048},
	} {
		wg.Add(1)
		go func(label string, step uint64) {
			defer wg.Done()
			var counter uint64
			for n := 0; n < perWorker; n++ {
				scope := NewIOScope(&counter, label)
				counter += step
				scope.Close()
			}
		}(w.label, w.step)
	}
	wg.Wait()

	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"), "output must end with a newline")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2*perWorker)

	wantAlpha := "[io] alpha: 512 B (0.00048828125 MiB)"
	wantBeta := "[io] beta: 2048 B (0.001953125 MiB)"

	var alpha, beta int
	for _, line := range lines {
		switch line {
		case wantAlpha:
			alpha++
		case wantBeta:
			beta++
		default:
			t.Fatalf("corrupt line %q", line)
		}
	}
	assert.Equal(t, perWorker, alpha, "alpha line count")
	assert.Equal(t, perWorker, beta, "beta line count")
}
