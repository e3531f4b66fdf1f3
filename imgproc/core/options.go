package core

import (
	"runtime"

	"github.com/rs/zerolog"
)

// ProcessorConfig defines common image processing settings.
type ProcessorConfig struct {
	// Workers is the number of goroutines a processor may fan out to.
	Workers int
	// Logger receives debug diagnostics. The zero config logs nothing.
	Logger zerolog.Logger
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns one worker per CPU and a disabled logger.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		Workers: runtime.NumCPU(),
		Logger:  zerolog.Nop(),
	}
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger zerolog.Logger) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.Logger = logger
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
