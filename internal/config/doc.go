// Package config provides workload configuration for the logarray tooling.
//
// Settings are resolved in order of increasing precedence:
//
//  1. Built-in defaults (Default)
//  2. A TOML or YAML file (Load)
//  3. LOGARRAY_* environment variables (ApplyEnv)
//  4. Command-line flags, applied by the caller
//
// A missing configuration file is not an error; the defaults are used.
package config
