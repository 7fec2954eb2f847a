package jsonsafe

import "log/slog"

// Default configuration values
const (
	DefaultMaxDocumentSize int64 = 64 * 1024 * 1024 // 64MB
	DefaultMaxNestingDepth       = 128
)

// Config controls parse-time limits and optional structured logging
type Config struct {
	// MaxDocumentSize limits the size in bytes of text accepted by Parse
	MaxDocumentSize int64

	// MaxNestingDepth limits the nesting depth of parsed documents
	MaxNestingDepth int

	// Logger receives structured records for failed operations when set.
	// A nil Logger disables logging.
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxDocumentSize: DefaultMaxDocumentSize,
		MaxNestingDepth: DefaultMaxNestingDepth,
	}
}

// ValidateConfig validates configuration values and applies corrections
func ValidateConfig(config *Config) error {
	if config == nil {
		return newOperationError("validate_config", "config cannot be nil", ErrOperationFailed)
	}
	if config.MaxDocumentSize <= 0 {
		config.MaxDocumentSize = DefaultMaxDocumentSize
	}
	if config.MaxNestingDepth <= 0 {
		config.MaxNestingDepth = DefaultMaxNestingDepth
	}
	return nil
}

// logError logs a failed operation with structured logging
func (c *Config) logError(operation string, err error) {
	if c == nil || c.Logger == nil {
		return
	}
	c.Logger.Error("jsonsafe operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
