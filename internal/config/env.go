package config

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix shared by every recognized environment variable.
const EnvPrefix = "LOGARRAY_"

// LookupFunc reports the value of an environment variable and whether it
// is set. os.LookupEnv is the usual implementation.
type LookupFunc func(key string) (string, bool)

// envSetters maps environment variables to the setting they override.
var envSetters = map[string]func(c *Config, val string) error{
	"LOGARRAY_CHUNK_SIZE": func(c *Config, val string) error {
		return setInt(&c.Array.ChunkSize, val)
	},
	"LOGARRAY_OPERATIONS": func(c *Config, val string) error {
		return setInt(&c.Workload.Operations, val)
	},
	"LOGARRAY_INITIAL_SIZE": func(c *Config, val string) error {
		return setInt(&c.Workload.InitialSize, val)
	},
	"LOGARRAY_CHECK_EVERY": func(c *Config, val string) error {
		return setInt(&c.Workload.CheckEvery, val)
	},
	"LOGARRAY_SEED": func(c *Config, val string) error {
		seed, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
		if err != nil {
			return err
		}
		c.Workload.Seed = seed
		return nil
	},
	"LOGARRAY_LOG_LEVEL": func(c *Config, val string) error {
		c.Logging.Level = strings.ToLower(strings.TrimSpace(val))
		return nil
	},
}

// EnvVars returns the recognized environment variable names, sorted.
func EnvVars() []string {
	names := make([]string, 0, len(envSetters))
	for name := range envSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyEnv overrides settings in cfg from environment variables found by
// lookup. A nil lookup uses os.LookupEnv. Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	for _, name := range EnvVars() {
		val, ok := lookup(name)
		if !ok {
			continue
		}
		if err := envSetters[name](cfg, val); err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidEnv, name, val, err)
		}
	}
	return nil
}

func setInt(dst *int, val string) error {
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return err
	}
	*dst = n
	return nil
}
