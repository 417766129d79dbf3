package core

import "go.uber.org/zap"

// Config defines settings shared by the processing operations.
type Config struct {
	// Logger receives non-fatal warnings such as non-positive intensities.
	Logger *zap.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a Config that logs to the process-global zap logger.
func DefaultConfig() Config {
	return Config{
		Logger: zap.L(),
	}
}

// WithLogger sets the logger used for warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *Config) {
		if logger != nil {
			cfg.Logger = logger
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
