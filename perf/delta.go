package perf

// ByteDelta is a pair of byte-counter readings bounding a scope. A fresh
// value is produced each time an IO scope finalizes; it is never mutated
// afterwards.
type ByteDelta struct {
	Begin uint64
	End   uint64
}

// Bytes returns End - Begin. Callers must ensure End >= Begin: a counter
// that moved backward mid-scope (for example a reset) wraps around as plain
// unsigned subtraction. It is not clamped.
func (d ByteDelta) Bytes() uint64 {
	return d.End - d.Begin
}

// Mebibytes returns the byte count scaled to MiB.
func (d ByteDelta) Mebibytes() float64 {
	return float64(d.Bytes()) / 1024.0 / 1024.0
}
