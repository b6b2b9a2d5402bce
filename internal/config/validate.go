package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Convert.OutputSuffix) == "" {
		return fmt.Errorf("convert.output_suffix must not be empty")
	}
	if _, err := c.Log.level(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format)
	}
	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
}
