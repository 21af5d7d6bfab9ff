package resize

import "github.com/cwbudde/algo-resize/imaging/simd"

// Config holds the settings New starts from.
type Config struct {
	Algorithm Algorithm
	Extension simd.Extension
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns Lanczos3 convolution on the best extension
// supported by the running CPU.
func DefaultConfig() Config {
	return Config{
		Algorithm: Default(),
		Extension: simd.Detect(),
	}
}

// WithAlgorithm sets the resampling algorithm.
func WithAlgorithm(alg Algorithm) Option {
	return func(cfg *Config) {
		if alg.filter.Weight != nil {
			cfg.Algorithm = alg
		}
	}
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
