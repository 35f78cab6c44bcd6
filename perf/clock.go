package perf

import "time"

// Now returns a timestamp for use with ElapsedMS. Go's time.Now carries a
// monotonic clock reading, so the result is safe against wall-clock jumps.
// When instrumentation is disabled Now returns the zero time without reading
// the clock.
func Now() time.Time {
	if !Enabled {
		return time.Time{}
	}
	return time.Now()
}

// ElapsedMS returns the number of milliseconds elapsed since start, as a
// float. When instrumentation is disabled it returns 0.0 without reading
// the clock.
func ElapsedMS(start time.Time) float64 {
	return elapsedMS(start, Enabled)
}

func elapsedMS(start time.Time, enabled bool) float64 {
	if !enabled {
		return 0.0
	}
	return float64(time.Since(start)) / float64(time.Millisecond)
}
