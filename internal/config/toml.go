package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// FileSystem is an abstraction for reading configuration files.
// testing/fstest.MapFS satisfies it, which keeps tests off the disk.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// DefaultPath is the configuration file looked for when none is named.
const DefaultPath = "logarray.toml"

// Load returns the defaults overlaid with the file at path. Files ending in
// .yaml or .yml are read as YAML, anything else as TOML. An empty path or a
// missing file yields the defaults; use LoadRequired for a file the user
// named explicitly.
func Load(fsys FileSystem, path string) (Config, error) {
	return load(fsys, path, false)
}

// LoadRequired is Load for a file the user asked for by name. A missing file
// is an error matching ErrNotFound.
func LoadRequired(fsys FileSystem, path string) (Config, error) {
	return load(fsys, path, true)
}

func load(fsys FileSystem, path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		if required {
			return cfg, fmt.Errorf("%w: empty path", ErrNotFound)
		}
		return cfg, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if required {
				return cfg, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
			return cfg, nil // File doesn't exist, not an error
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	decodeFn := decode
	if isYAML(path) {
		decodeFn = decodeYAML
	}
	if err := decodeFn(path, data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// LoadFile is Load against the OS file system.
func LoadFile(path string) (Config, error) {
	return Load(OSFS{}, path)
}

// LoadFileRequired is LoadRequired against the OS file system.
func LoadFileRequired(path string) (Config, error) {
	return LoadRequired(OSFS{}, path)
}

// LoadFromReader returns the defaults overlaid with TOML read from r.
func LoadFromReader(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Default(), fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := decode("<reader>", data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// decode overlays the TOML document in data onto cfg. Keys absent from the
// document keep their current values; unknown keys are rejected.
func decode(source string, data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	if err := dec.Decode(cfg); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			perr.Line, perr.Column = decodeErr.Position()
		}
		return perr
	}
	return nil
}

// Encode writes cfg as TOML.
func Encode(w io.Writer, cfg Config) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}
