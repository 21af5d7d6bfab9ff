package alpha

import "github.com/cwbudde/algo-resize/imaging/simd"

// Config holds the settings New starts from.
type Config struct {
	Extension simd.Extension
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the best extension supported by the running CPU.
func DefaultConfig() Config {
	return Config{Extension: simd.Detect()}
}

// WithCPUExtension selects the kernels of ext. Extensions the CPU does not
// support are ignored.
func WithCPUExtension(ext simd.Extension) Option {
	return func(cfg *Config) {
		if ext.Supported() {
			cfg.Extension = ext
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
