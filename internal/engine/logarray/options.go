package logarray

// Chunk size limits.
const (
	// DefaultChunkSize is the chunk capacity used when no option overrides it.
	DefaultChunkSize = 64

	// MinChunkSize is the smallest accepted chunk capacity.
	MinChunkSize = 4
)

// options collects construction settings before they are validated.
type options struct {
	chunkSize int
}

// Option is a functional option for configuring an Array.
type Option func(*options)

// WithChunkSize sets the maximum number of elements stored in one node.
// Values below MinChunkSize make New return a *ConfigError.
func WithChunkSize(size int) Option {
	return func(o *options) {
		o.chunkSize = size
	}
}

func buildOptions(opts []Option) (options, error) {
	o := options{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.chunkSize < MinChunkSize {
		return o, &ConfigError{Field: "chunk size", Value: o.chunkSize, Min: MinChunkSize}
	}
	return o, nil
}
