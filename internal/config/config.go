package config

import (
	"github.com/dshills/logarray/internal/engine/logarray"
	"github.com/dshills/logarray/internal/logging"
)

// Config is the complete tooling configuration.
type Config struct {
	Array    ArrayConfig    `toml:"array" yaml:"array"`
	Workload WorkloadConfig `toml:"workload" yaml:"workload"`
	Logging  LoggingConfig  `toml:"logging" yaml:"logging"`
}

// ArrayConfig configures the array under test.
type ArrayConfig struct {
	// ChunkSize is the maximum number of elements per node.
	ChunkSize int `toml:"chunk_size" yaml:"chunk_size"`
}

// WorkloadConfig configures a randomized workload run.
type WorkloadConfig struct {
	// Operations is the number of operations to run.
	Operations int `toml:"operations" yaml:"operations"`
	// InitialSize is the number of elements loaded before the run starts.
	InitialSize int `toml:"initial_size" yaml:"initial_size"`
	// Seed seeds the operation generator. Zero picks a time-based seed.
	Seed int64 `toml:"seed" yaml:"seed"`
	// CheckEvery runs a full invariant check every N operations.
	// Zero disables periodic checks; a final check always runs.
	CheckEvery int `toml:"check_every" yaml:"check_every"`
	// Mix holds the relative weight of each operation kind.
	Mix Mix `toml:"mix" yaml:"mix"`
}

// Mix holds relative operation weights. Only the ratios matter.
type Mix struct {
	Insert  int `toml:"insert" yaml:"insert"`
	Remove  int `toml:"remove" yaml:"remove"`
	Delete  int `toml:"delete" yaml:"delete"`
	Get     int `toml:"get" yaml:"get"`
	Set     int `toml:"set" yaml:"set"`
	Push    int `toml:"push" yaml:"push"`
	Pop     int `toml:"pop" yaml:"pop"`
	Shift   int `toml:"shift" yaml:"shift"`
	Unshift int `toml:"unshift" yaml:"unshift"`
}

// Total returns the sum of all weights.
func (m Mix) Total() int {
	return m.Insert + m.Remove + m.Delete + m.Get + m.Set + m.Push + m.Pop + m.Shift + m.Unshift
}

// LoggingConfig configures tooling log output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Array: ArrayConfig{
			ChunkSize: logarray.DefaultChunkSize,
		},
		Workload: WorkloadConfig{
			Operations:  100_000,
			InitialSize: 1_000,
			CheckEvery:  1_000,
			Mix: Mix{
				Insert:  20,
				Remove:  10,
				Delete:  5,
				Get:     30,
				Set:     10,
				Push:    10,
				Pop:     5,
				Shift:   5,
				Unshift: 5,
			},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks every setting and returns the first problem found as a
// *ValidationError.
func (c Config) Validate() error {
	if c.Array.ChunkSize < logarray.MinChunkSize {
		return &ValidationError{
			Field:   "array.chunk_size",
			Value:   c.Array.ChunkSize,
			Message: "must be at least 4",
		}
	}

	counts := []struct {
		field string
		value int
	}{
		{"workload.operations", c.Workload.Operations},
		{"workload.initial_size", c.Workload.InitialSize},
		{"workload.check_every", c.Workload.CheckEvery},
		{"workload.mix.insert", c.Workload.Mix.Insert},
		{"workload.mix.remove", c.Workload.Mix.Remove},
		{"workload.mix.delete", c.Workload.Mix.Delete},
		{"workload.mix.get", c.Workload.Mix.Get},
		{"workload.mix.set", c.Workload.Mix.Set},
		{"workload.mix.push", c.Workload.Mix.Push},
		{"workload.mix.pop", c.Workload.Mix.Pop},
		{"workload.mix.shift", c.Workload.Mix.Shift},
		{"workload.mix.unshift", c.Workload.Mix.Unshift},
	}
	for _, cnt := range counts {
		if cnt.value < 0 {
			return &ValidationError{Field: cnt.field, Value: cnt.value, Message: "must not be negative"}
		}
	}

	if c.Workload.Mix.Total() == 0 {
		return &ValidationError{Field: "workload.mix", Value: 0, Message: "at least one weight must be positive"}
	}

	if _, ok := logging.ParseLevel(c.Logging.Level); !ok {
		return &ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be debug, info, warn, or error",
		}
	}
	return nil
}

// LogLevel returns the parsed logging level.
func (c Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Logging.Level)
	return level
}
