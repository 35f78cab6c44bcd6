package config

import (
	"fmt"
	"strconv"
	"time"
)

// Workload is the top-level demo workload description.
type Workload struct {
	// Name is the workload name, used in the completion summary
	Name string `yaml:"name"`

	// Stages are executed in order; each one is framed by a stage timer
	Stages []StageConfig `yaml:"stages"`
}

// StageConfig describes one named stage of synthetic work.
type StageConfig struct {
	// Name is the stage name printed in the stage header
	Name string `yaml:"name"`

	// Prefix is prepended to the stage header (e.g. "[Phase]")
	Prefix string `yaml:"prefix,omitempty"`

	// Workers is the number of concurrent worker goroutines (default: 4)
	Workers int `yaml:"workers,omitempty"`

	// Iterations is the number of iterations per worker (default: 100)
	Iterations int `yaml:"iterations,omitempty"`

	// BytesPerOp is the number of bytes counted per iteration (default: 4096)
	BytesPerOp int `yaml:"bytesPerOp,omitempty"`

	// Pause is an optional per-iteration pause, e.g. "1ms" or "5" (seconds)
	Pause string `yaml:"pause,omitempty"`
}

// Validate checks the workload for values the demo cannot run with.
func (w *Workload) Validate() error {
	if len(w.Stages) == 0 {
		return fmt.Errorf("workload %q has no stages", w.Name)
	}
	for i, sc := range w.Stages {
		if sc.Name == "" {
			return fmt.Errorf("stage %d has no name", i+1)
		}
		if sc.Workers < 0 {
			return fmt.Errorf("stage %q: workers must not be negative", sc.Name)
		}
		if sc.Iterations < 0 {
			return fmt.Errorf("stage %q: iterations must not be negative", sc.Name)
		}
		if sc.BytesPerOp < 0 {
			return fmt.Errorf("stage %q: bytesPerOp must not be negative", sc.Name)
		}
		if _, err := sc.PauseDuration(); err != nil {
			return fmt.Errorf("stage %q: %w", sc.Name, err)
		}
	}
	return nil
}

// PauseDuration parses the stage's pause string.
//
// Supported formats:
//   - Standard Go duration: "30s", "2m", "500ms"
//   - Seconds as integer: "30" (treated as 30 seconds)
func (s *StageConfig) PauseDuration() (time.Duration, error) {
	if s.Pause == "" {
		return 0, nil
	}

	// Try standard Go duration parsing first
	d, err := time.ParseDuration(s.Pause)
	if err == nil {
		return d, nil
	}

	// Try parsing as integer seconds; the whole string must be the number
	if seconds, err := strconv.Atoi(s.Pause); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	return 0, fmt.Errorf("invalid pause format: %s", s.Pause)
}

// ApplyDefaults applies default values to a Workload.
func ApplyDefaults(w *Workload) {
	if w.Name == "" {
		w.Name = "demo"
	}
	for i := range w.Stages {
		applyStageDefaults(&w.Stages[i])
	}
}

// applyStageDefaults applies default values to a stage.
func applyStageDefaults(sc *StageConfig) {
	if sc.Workers == 0 {
		sc.Workers = 4
	}
	if sc.Iterations == 0 {
		sc.Iterations = 100
	}
	if sc.BytesPerOp == 0 {
		sc.BytesPerOp = 4096
	}
}
